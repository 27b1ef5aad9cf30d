package main

import (
	"io"

	"github.com/jcorbin/smorth/internal/flushio"
	"github.com/jcorbin/smorth/internal/runeio"
)

// VMOption customizes a VM created by New.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withInput(nil),
	withOutput(nil),
	withMaxDepth(defaultMaxDepth),
)

// VMOptions combines any number of options into one, dropping nils.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type sourceOption struct{ io.Reader }
type maxDepthOption int
type flatConditionalsOption bool

func withInput(r io.Reader) inputOption            { return inputOption{r} }
func withOutput(w io.Writer) outputOption          { return outputOption{w} }
func withTee(w io.Writer) teeOption                { return teeOption{w} }
func withSource(r io.Reader) sourceOption          { return sourceOption{r} }
func withMaxDepth(depth int) maxDepthOption        { return maxDepthOption(depth) }
func withFlatConditionals() flatConditionalsOption { return true }

func (i inputOption) apply(vm *VM) {
	vm.in = runeio.NewReader(i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (src sourceOption) apply(vm *VM) {
	vm.sources.Queue = append(vm.sources.Queue, src.Reader)
}

func (depth maxDepthOption) apply(vm *VM) {
	vm.maxDepth = int(depth)
}

func (flat flatConditionalsOption) apply(vm *VM) {
	vm.flatConditionals = bool(flat)
}

// NamedReader attaches a name to r, used to label its source in errors.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
