package main

import "github.com/jcorbin/smorth/internal/runeio"

// builtins is filled by init to break the initialization cycle through step.
var builtins map[string]func(vm *VM)

func init() {
	builtins = map[string]func(vm *VM){
		// ( n -- )
		".": func(vm *VM) { vm.writeInt(vm.pop()) },
		// ( c -- )
		"emit": func(vm *VM) { vm.writeRune(runeio.CodePoint(vm.pop())) },
		// ( -- )
		"cr": func(vm *VM) { vm.writeString("\n") },
		// ( -- )
		`."`: (*VM).printWords,

		// ( -- c ) pushes 0 at end of input
		"key": func(vm *VM) {
			b, _ := vm.readByte()
			vm.stack.push(int64(b))
		},
		// ( -- c1 ... cn )
		"read": func(vm *VM) {
			vm.readRunes(func(r rune) { vm.stack.push(int64(r)) })
		},

		// ( a b -- a+b ) etc
		"+":   binaryOp(func(a, b int64) int64 { return a + b }),
		"-":   binaryOp(func(a, b int64) int64 { return a - b }),
		"*":   binaryOp(func(a, b int64) int64 { return a * b }),
		"/":   (*VM).divide,
		"<":   binaryOp(func(a, b int64) int64 { return truth(a < b) }),
		">":   binaryOp(func(a, b int64) int64 { return truth(a > b) }),
		"=":   binaryOp(func(a, b int64) int64 { return truth(a == b) }),
		"and": binaryOp(func(a, b int64) int64 { return a & b }),
		"or":  binaryOp(func(a, b int64) int64 { return a | b }),

		// ( a -- ^a )
		"not":    (*VM).invert,
		"invert": (*VM).invert,

		"dup":  func(vm *VM) { vm.haltif(vm.stack.dup()) },
		"drop": func(vm *VM) { vm.haltif(vm.stack.drop()) },
		"swap": func(vm *VM) { vm.haltif(vm.stack.swap()) },
		"over": func(vm *VM) { vm.haltif(vm.stack.over()) },
		"rot":  func(vm *VM) { vm.haltif(vm.stack.rot()) },

		// ( code -- )
		"exit": func(vm *VM) { vm.halt(ExitError(int32(vm.pop()))) },

		":":  (*VM).define,
		"if": (*VM).ifThen,
	}
}

func binaryOp(op func(a, b int64) int64) func(vm *VM) {
	return func(vm *VM) {
		a, b := vm.pop2()
		vm.stack.push(op(a, b))
	}
}

// divide truncates toward zero; a zero divisor leaves both operands in place.
func (vm *VM) divide() {
	a, b := vm.pop2()
	if b == 0 {
		vm.stack.push(a, b)
		vm.halt(ErrDivisionByZero)
	}
	vm.stack.push(a / b)
}

func (vm *VM) invert() {
	vm.stack.push(^vm.pop())
}

// define handles ": name body... ;", replacing any prior definition only once
// the terminating ";" has been found.
func (vm *VM) define() {
	name := vm.expect()
	var body []string
	for word := vm.expect(); word != ";"; word = vm.expect() {
		body = append(body, word)
	}
	vm.logf("def", "%v %v", name, body)
	vm.dict.define(name, body)
}

// printWords handles `." words... "`, writing each word followed by a space.
func (vm *VM) printWords() {
	for word := vm.expect(); word != `"`; word = vm.expect() {
		vm.writeString(word)
		vm.writeString(" ")
	}
}
