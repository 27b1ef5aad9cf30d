package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/smorth/internal/logio"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		if !t.Run(vmt.name, vmt.run) {
			return
		}
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type vmTestCase struct {
	name    string
	opts    []interface{}
	code    []string
	expect  []func(t *testing.T, vm *VM)
	timeout time.Duration
	wantErr error
	wantMes string

	exclusive bool
}

func (vmt vmTestCase) apply(wraps ...func(vmTestCase) vmTestCase) vmTestCase {
	for _, wrap := range wraps {
		vmt = wrap(vmt)
	}
	return vmt
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	for _, opt := range opts {
		vmt.opts = append(vmt.opts, opt)
	}
	return vmt
}

func (vmt vmTestCase) withStack(values ...int64) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.stack.push(values...)
	}))
	return vmt
}

func (vmt vmTestCase) withDefinition(name string, body ...string) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.dict.define(name, body)
	}))
	return vmt
}

func (vmt vmTestCase) withCode(code ...string) vmTestCase {
	vmt.code = append(vmt.code[:len(vmt.code):len(vmt.code)], code...)
	return vmt
}

func (vmt vmTestCase) withInput(input string) vmTestCase {
	vmt.opts = append(vmt.opts, func(t *testing.T) VMOption {
		return WithInput(NamedReader(t.Name()+"/input", strings.NewReader(input)))
	})
	return vmt
}

func (vmt vmTestCase) withNamedSource(name string, code string) vmTestCase {
	vmt.opts = append(vmt.opts, WithNamedSource(name, strings.NewReader(code)))
	return vmt
}

func (vmt vmTestCase) withMaxDepth(depth int) vmTestCase {
	vmt.opts = append(vmt.opts, WithMaxDepth(depth))
	return vmt
}

func (vmt vmTestCase) withFlatConditionals() vmTestCase {
	vmt.opts = append(vmt.opts, WithFlatConditionals())
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectErrorMessage(mess string) vmTestCase {
	vmt.wantMes = mess
	return vmt
}

func (vmt vmTestCase) expectStack(values ...int64) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		if len(values) == 0 {
			assert.Empty(t, vm.Stack(), "expected empty stack")
		} else {
			assert.Equal(t, values, vm.Stack(), "expected stack values")
		}
	})
	return vmt
}

func (vmt vmTestCase) expectWord(name string, body ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		got, defined := vm.Lookup(name)
		if assert.True(t, defined, "expected %q to be defined", name) {
			assert.Equal(t, body, got, "expected %q body", name)
		}
	})
	return vmt
}

func (vmt vmTestCase) expectNoWord(name string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		_, defined := vm.Lookup(name)
		assert.False(t, defined, "expected %q to be undefined", name)
	})
	return vmt
}

func (vmt vmTestCase) expectWords(names ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, names, vm.Words(), "expected defined words")
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithTee(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectDump(dump string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		var out strings.Builder
		vmDumper{
			vm:  vm,
			out: &out,
		}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return vmt
}

func (vmt vmTestCase) withTestOutput() vmTestCase {
	vmt.opts = append(vmt.opts, func(t *testing.T) VMOption {
		return WithTee(&logio.Writer{Logf: t.Logf, Prefix: "out: "})
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	var trace []string
	vm := vmt.buildVM(t)
	WithLogf(func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	}).apply(vm)
	defer func() {
		if t.Failed() {
			for _, line := range trace {
				t.Logf("trace: %v", line)
			}
			vmt.dumpToTest(t, vm)
		}
	}()

	vmt.runVMTest(context.Background(), t, vm)
}

func (vmt vmTestCase) runVMTest(ctx context.Context, t *testing.T, vm *VM) {
	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := vmt.runVM(ctx, vm); vmt.wantErr != nil {
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	} else if vmt.wantMes != "" {
		assert.EqualError(t, err, vmt.wantMes, "expected error message")
	} else {
		assert.NoError(t, err, "unexpected VM error")
	}
	assert.Empty(t, vm.frames, "expected no frames left after evaluation")

	if !t.Failed() {
		for _, expect := range vmt.expect {
			expect(t, vm)
		}
	}
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) (rerr error) {
	defer func() {
		if err := vm.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()
	for _, code := range vmt.code {
		if err := vm.Eval(ctx, code); err != nil {
			return err
		}
	}
	return vm.Run(ctx)
}

func (vmt vmTestCase) buildVM(t *testing.T) *VM {
	var opts []VMOption
	for _, o := range vmt.opts {
		switch impl := o.(type) {
		case func(t *testing.T) VMOption:
			opts = append(opts, impl(t))
		case VMOption:
			opts = append(opts, impl)
		default:
			t.Fatalf("unsupported vmTestCase opt type %T", o)
		}
	}
	return New(opts...)
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	lw := logio.Writer{Logf: t.Logf, Prefix: "dump: "}
	defer lw.Close()
	vmDumper{vm: vm, out: &lw}.dump()
}

//// utilities

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
