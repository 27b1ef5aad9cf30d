package panicerr

import "fmt"

// Halt unwinds the calling goroutine back to the nearest Recover, which will
// return err as its result. A nil err halts normally, and Recover returns nil.
func Halt(err error) {
	panic(halt{err})
}

type halt struct{ err error }

func (h halt) Error() string {
	if h.err != nil {
		return fmt.Sprintf("halted: %v", h.err)
	}
	return "halted"
}

func (h halt) Unwrap() error { return h.err }
