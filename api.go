package main

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// New creates a VM with the given options applied over defaults: no input,
// discarded output, and a frame limit of 65536.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Eval evaluates code against the VM's state, returning the first error
// encountered. The stack and dictionary retain any changes made before it.
func (vm *VM) Eval(ctx context.Context, code string) error {
	return vm.eval(ctx, "eval", Tokenize(code))
}

// Run evaluates every source given by WithSource or WithNamedSource in order,
// stopping at the first error, which is prefixed with the source name.
func (vm *VM) Run(ctx context.Context) error {
	for {
		src, err := vm.sources.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return IOError{err}
		}
		vm.logf("load", "%v", src)
		if err := vm.eval(ctx, src.Name, Tokenize(src.Text)); err != nil {
			return fmt.Errorf("%v: %w", src.Name, err)
		}
	}
}

// Stack returns a copy of the operand stack, top last.
func (vm *VM) Stack() []int64 {
	return append([]int64(nil), vm.stack...)
}

// Lookup returns a copy of the body of a defined word.
func (vm *VM) Lookup(name string) (body []string, defined bool) {
	body, defined = vm.dict.lookup(name)
	return append([]string(nil), body...), defined
}

// Words returns the names of all defined words in order.
func (vm *VM) Words() []string {
	names := make([]string, 0, vm.dict.len())
	vm.dict.each(func(name string, _ []string) bool {
		names = append(names, name)
		return true
	})
	return names
}

// WithInput sets the stream read by "key" and "read".
func WithInput(r io.Reader) VMOption { return withInput(r) }

// WithOutput sets the stream written by ".", "emit", "cr" and `."`.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee copies all output to w as well; w is closed by Close if it can be.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithSource queues a program source for Run.
func WithSource(r io.Reader) VMOption { return withSource(r) }

// WithNamedSource queues a program source for Run under the given name.
func WithNamedSource(name string, r io.Reader) VMOption {
	return withSource(NamedReader(name, r))
}

// WithMaxDepth limits the frame stack, 0 for no limit.
func WithMaxDepth(depth int) VMOption { return withMaxDepth(depth) }

// WithFlatConditionals makes each conditional branch end at the first "else"
// or "then" word, even within a nested conditional.
func WithFlatConditionals() VMOption { return withFlatConditionals() }

// WithLogf enables trace logging through logfn.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
