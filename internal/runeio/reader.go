package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading single bytes and runes.
type Reader interface {
	io.Reader
	io.ByteReader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide byte and rune reading around r.
// A nil r results in a Reader that is always at EOF.
// If r implements Name() string, so will the returned Reader.
func NewReader(r io.Reader) Reader {
	if r == nil {
		return eofReader{}
	}
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := bufio.NewReader(r)
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedReader{br, impl.Name()}
	}
	return br
}

// ReadRunes reads runes from r until EOF, passing each to each.
// Any error other than io.EOF is returned.
func ReadRunes(r io.RuneReader, each func(r rune)) error {
	for {
		c, _, err := r.ReadRune()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		each(c)
	}
}

type namedReader struct {
	*bufio.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

type eofReader struct{}

func (eofReader) Read(p []byte) (int, error)   { return 0, io.EOF }
func (eofReader) ReadByte() (byte, error)      { return 0, io.EOF }
func (eofReader) ReadRune() (rune, int, error) { return 0, 0, io.EOF }
