package logio

import (
	"bytes"
	"sync"
)

// Writer adapts a printf-style logging function into an io.Writer: each
// complete line written becomes one Logf call, with Prefix prepended. Writes
// are safe from multiple goroutines.
type Writer struct {
	Logf   func(string, ...interface{})
	Prefix string

	mu      sync.Mutex
	partial []byte
}

// Write logs any lines completed by p, holding back a final partial line
// until completed by a later Write, or until Sync.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n := len(p)
	for len(p) > 0 {
		line, rest, found := bytes.Cut(p, []byte{'\n'})
		if !found {
			lw.partial = append(lw.partial, line...)
			break
		}
		if len(lw.partial) > 0 {
			line = append(lw.partial, line...)
			lw.partial = lw.partial[:0]
		}
		lw.logLine(line)
		p = rest
	}
	return n, nil
}

// Sync logs any held back partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.logLine(lw.partial)
		lw.partial = lw.partial[:0]
	}
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error { return lw.Sync() }

func (lw *Writer) logLine(line []byte) {
	lw.Logf("%s%s", lw.Prefix, line)
}
