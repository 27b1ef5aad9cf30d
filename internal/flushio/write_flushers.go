package flushio

import (
	"errors"
	"io"
)

// WriteFlushers tees any number of WriteFlusher-s into one. Nil and Discard
// values are dropped and nested tees flattened; what remains decides the
// result: Discard when empty, the sole writer itself, or a tee of them all.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			all = append(all, impl...)
		default:
			if !isDiscard(impl) {
				all = append(all, impl)
			}
		}
	}
	switch len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	}
	return all
}

// tee writes to, and flushes, every one of its writers even after one of them
// fails; failures are joined together in the returned error.
type tee []WriteFlusher

func (t tee) Write(p []byte) (int, error) {
	var errs []error
	for _, wf := range t {
		if n, err := wf.Write(p); err != nil {
			errs = append(errs, err)
		} else if n < len(p) {
			errs = append(errs, io.ErrShortWrite)
		}
	}
	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}
	return len(p), nil
}

func (t tee) Flush() error {
	var errs []error
	for _, wf := range t {
		if err := wf.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func isDiscard(wf WriteFlusher) bool {
	nf, ok := wf.(nopFlusher)
	return ok && nf.Writer == io.Discard
}
