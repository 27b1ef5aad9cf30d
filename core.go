package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/smorth/internal/flushio"
	"github.com/jcorbin/smorth/internal/panicerr"
	"github.com/jcorbin/smorth/internal/runeio"
)

type core struct {
	logging
	in      runeio.Reader
	out     flushio.WriteFlusher
	closers []io.Closer

	scratch []byte
}

// Close closes any input or output streams given to the VM, most recent first.
func (c *core) Close() (err error) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if cerr := c.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	c.closers = nil
	return err
}

func (c *core) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if c.out != nil {
			if ferr := c.out.Flush(); err == nil && ferr != nil {
				err = IOError{ferr}
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		c.logf("halt", "%v", err)
	}()

	panicerr.Halt(err)
}

func (c *core) haltif(err error) {
	if err != nil {
		c.halt(err)
	}
}

func (c *core) flush() {
	if !flushio.IsBuffered(c.out) {
		return
	}
	if err := c.out.Flush(); err != nil {
		c.halt(IOError{err})
	}
}

func (c *core) writeString(s string) {
	if _, err := io.WriteString(c.out, s); err != nil {
		c.halt(IOError{err})
	}
}

// writeInt writes n in decimal followed by a single space.
func (c *core) writeInt(n int64) {
	c.scratch = append(strconv.AppendInt(c.scratch[:0], n, 10), ' ')
	if _, err := c.out.Write(c.scratch); err != nil {
		c.halt(IOError{err})
	}
}

func (c *core) writeRune(r rune) {
	if _, err := runeio.WriteRune(c.out, r); err != nil {
		c.halt(IOError{err})
	}
}

// readByte flushes output, then reads one input byte; it returns false at the
// end of input.
func (c *core) readByte() (byte, bool) {
	c.flush()
	b, err := c.in.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, false
	}
	c.haltif(wrapIOError(err))
	return b, true
}

// readRunes flushes output, then reads all remaining input runes.
func (c *core) readRunes(each func(r rune)) {
	c.flush()
	c.haltif(wrapIOError(runeio.ReadRunes(c.in, each)))
}

func wrapIOError(err error) error {
	if err != nil {
		return IOError{err}
	}
	return nil
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark += strings.Repeat(" ", n)
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
