package main

import (
	"context"
	"strconv"

	"github.com/jcorbin/smorth/internal/fileinput"
	"github.com/jcorbin/smorth/internal/panicerr"
)

const defaultMaxDepth = 65536

// VM holds the state of a session: the operand stack and the dictionary
// persist across every evaluation, while the frame stack only lives as long as
// one.
type VM struct {
	core

	stack  stack
	dict   dictionary
	frames []frame

	// maxDepth limits len(frames), unless 0
	maxDepth         int
	flatConditionals bool

	sources fileinput.Input
}

// frame is a word sequence under evaluation, along with a label for logs and
// dumps: the name of the called word, "if", or the source name.
type frame struct {
	label string
	toks  Tokens
}

// eval runs toks to completion, or until the first error. Output is always
// flushed; after an error the frame stack is cleared.
func (vm *VM) eval(ctx context.Context, label string, toks Tokens) error {
	err := panicerr.Recover(label, func() error {
		vm.pushFrame(label, toks)
		vm.exec(ctx)
		vm.flush()
		return nil
	})
	if err != nil {
		vm.frames = vm.frames[:0]
		if panicerr.IsPanic(err) {
			vm.out.Flush()
		}
	}
	return err
}

func (vm *VM) exec(ctx context.Context) {
	for len(vm.frames) > 0 {
		word, ok := vm.scan()
		if !ok {
			vm.frames = vm.frames[:len(vm.frames)-1]
			continue
		}
		vm.step(word)
		vm.haltif(ctx.Err())
	}
}

func (vm *VM) step(word string) {
	if vm.logfn != nil {
		vm.logf("exec", "%v stack:%v depth:%v", word, vm.stack, len(vm.frames))
	}
	if op, ok := builtins[word]; ok {
		op(vm)
	} else if n, err := strconv.ParseInt(word, 10, 64); err == nil {
		vm.stack.push(n)
	} else {
		vm.call(word)
	}
}

// call evaluates the current definition of name in a new frame; the body is
// copied, so that redefining name during the call cannot affect it.
func (vm *VM) call(name string) {
	body, defined := vm.dict.lookup(name)
	if !defined {
		vm.halt(NoSuchWordError(name))
	}
	vm.logf("call", "%v %v", name, body)
	vm.pushFrame(name, reverseTokens(body))
}

// pushFrame first drops an exhausted top frame, so that calls in tail
// position run in constant frame space.
func (vm *VM) pushFrame(label string, toks Tokens) {
	if i := len(vm.frames) - 1; i >= 0 && vm.frames[i].toks.Len() == 0 {
		vm.frames = vm.frames[:i]
	}
	if vm.maxDepth > 0 && len(vm.frames) >= vm.maxDepth {
		vm.halt(ErrCallDepth)
	}
	vm.frames = append(vm.frames, frame{label, toks})
}

// scan takes the next word from the current frame only.
func (vm *VM) scan() (string, bool) {
	if i := len(vm.frames) - 1; i >= 0 {
		return vm.frames[i].toks.next()
	}
	return "", false
}

// expect is like scan, but halts with ErrStackUnderflow when the current
// frame is exhausted.
func (vm *VM) expect() string {
	word, ok := vm.scan()
	if !ok {
		vm.halt(ErrStackUnderflow)
	}
	return word
}

func (vm *VM) pop() int64 {
	val, err := vm.stack.pop()
	vm.haltif(err)
	return val
}

func (vm *VM) pop2() (a, b int64) {
	a, b, err := vm.stack.pop2()
	vm.haltif(err)
	return a, b
}
