package fileinput

import (
	"fmt"
	"io"
	"strings"
)

// Source is one whole program text read from an Input stream.
type Source struct {
	Name string
	Text string
}

func (src Source) String() string { return fmt.Sprintf("%v (%v bytes)", src.Name, len(src.Text)) }

// Input implements sequential source reading through a Queue of one or more
// input streams; each stream is read whole, then closed if possible.
type Input struct {
	Queue []io.Reader
}

// Next reads and returns the next source in the queue, returning io.EOF once
// the queue has been exhausted. Any read error is annotated with the name of
// its stream, and leaves that stream dequeued.
func (in *Input) Next() (src Source, err error) {
	if len(in.Queue) == 0 {
		return src, io.EOF
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]

	src.Name = NameOf(r)
	var sb strings.Builder
	_, err = io.Copy(&sb, r)
	if cl, ok := r.(io.Closer); ok {
		if cerr := cl.Close(); err == nil {
			err = cerr
		}
	}
	src.Text = sb.String()
	if err != nil {
		err = fmt.Errorf("%v: %w", src.Name, err)
	}
	return src, err
}

// NameOf returns the Name() of any object that has one, or a placeholder
// naming its type otherwise.
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
