package main

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned when a word needs more stack values, or
	// more following words, than are available.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrDivisionByZero is returned by "/" given a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrCallDepth is returned when the frame stack would exceed its limit.
	ErrCallDepth = errors.New("call depth exceeded")
)

// NoSuchWordError is returned when a word is neither builtin, numeric, nor
// defined.
type NoSuchWordError string

func (word NoSuchWordError) Error() string {
	return fmt.Sprintf("no such word (%v)", string(word))
}

// ExitError is returned after the "exit" word, carrying its status code.
type ExitError int

// Code returns the exit status code.
func (code ExitError) Code() int { return int(code) }

func (code ExitError) Error() string {
	return fmt.Sprintf("exited with code %d", int(code))
}

// IOError wraps any failure to read input or write output.
type IOError struct{ Err error }

func (err IOError) Error() string { return fmt.Sprintf("io error occurred: %v", err.Err) }
func (err IOError) Unwrap() error { return err.Err }
