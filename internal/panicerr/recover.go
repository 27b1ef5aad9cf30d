// Package panicerr confines panics to a goroutine, turning them back into
// error values: either ones given to Halt, or ones that describe a real
// panic along with its stack.
package panicerr

import "runtime/debug"

// Recover runs f in a new goroutine and waits for its result.
//
// A Halt(err) from within f is returned as err itself; any other panic is
// returned as an error that retains the panic value and stack trace, and a
// runtime.Goexit() as an error naming the exit.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		done := false
		defer func() {
			if !done {
				errch <- recovered(name, recover())
			}
		}()
		err := f()
		done = true
		errch <- err
	}()
	return <-errch
}

// recovered converts a recover() value; a nil value means that the goroutine
// is exiting, since a panic(nil) recovers as a *runtime.PanicNilError.
func recovered(name string, e interface{}) error {
	switch v := e.(type) {
	case nil:
		return exitError(name)
	case halt:
		return v.err
	default:
		return panicError{name, e, debug.Stack()}
	}
}
