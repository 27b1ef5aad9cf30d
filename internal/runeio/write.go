package runeio

import (
	"io"
	"unicode/utf8"
)

// CodePoint converts an integer value into a rune, substituting
// utf8.RuneError (U+FFFD) for anything that is not a valid Unicode scalar
// value: negatives, surrogate halves, and values past utf8.MaxRune.
func CodePoint(n int64) rune {
	if n < 0 || n > utf8.MaxRune {
		return utf8.RuneError
	}
	if r := rune(n); utf8.ValidRune(r) {
		return r
	}
	return utf8.RuneError
}

// WriteRune writes a rune to the given writer in UTF-8 form, using the
// cheapest method that w supports: ASCII runes are written as single bytes.
func WriteRune(w io.Writer, r rune) (n int, err error) {
	type runeWriter interface {
		WriteRune(r rune) (n int, err error)
	}
	if r < utf8.RuneSelf && r >= 0 {
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	var buf [utf8.UTFMax]byte
	return w.Write(buf[:utf8.EncodeRune(buf[:], r)])
}
