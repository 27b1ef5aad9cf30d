package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that discards all writes, and never needs flushing.
var Discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher creates a new flushable writer around w:
// - io.Discard and nil both result in Discard
// - an existing WriteFlusher is returned as-is
// - in-memory buffers, like bytes.Buffer and strings.Builder, get a no-op Flush
// - anything else is wrapped in a bufio.Writer
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return Discard
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

// IsBuffered returns true if wf may hold written data that has not yet been
// delivered to its underlying writer.
func IsBuffered(wf WriteFlusher) bool {
	switch impl := wf.(type) {
	case nopFlusher:
		return false
	case *bufio.Writer:
		return impl.Buffered() > 0
	case tee:
		for _, one := range impl {
			if IsBuffered(one) {
				return true
			}
		}
		return false
	}
	return true
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }
