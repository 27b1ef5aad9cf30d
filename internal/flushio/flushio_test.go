package flushio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/smorth/internal/flushio"
)

// slowWriter is not an in-memory buffer as far as NewWriteFlusher can tell.
type slowWriter struct{ sb strings.Builder }

func (sw *slowWriter) Write(p []byte) (int, error) { return sw.sb.Write(p) }
func (sw *slowWriter) String() string              { return sw.sb.String() }

type failWriter struct{ err error }

func (fw failWriter) Write(p []byte) (int, error) { return 0, fw.err }

func Test_NewWriteFlusher(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(nil), "nil discards")
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(io.Discard), "io.Discard discards")

	var buf bytes.Buffer
	wf := flushio.NewWriteFlusher(&buf)
	_, err := io.WriteString(wf, "1 2 ")
	require.NoError(t, err)
	assert.Equal(t, "1 2 ", buf.String(), "buffers are written through")
	assert.False(t, flushio.IsBuffered(wf))

	bw := bufio.NewWriter(&buf)
	assert.Equal(t, flushio.WriteFlusher(bw), flushio.NewWriteFlusher(bw), "existing flushers are kept")

	var sw slowWriter
	wf = flushio.NewWriteFlusher(&sw)
	_, err = io.WriteString(wf, "hello")
	require.NoError(t, err)
	assert.Equal(t, "", sw.String(), "expected write to be buffered")
	assert.True(t, flushio.IsBuffered(wf))
	require.NoError(t, wf.Flush())
	assert.Equal(t, "hello", sw.String(), "expected flush to deliver")
	assert.False(t, flushio.IsBuffered(wf))
}

func Test_WriteFlushers(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.WriteFlushers(), "empty")
	assert.Equal(t, flushio.Discard, flushio.WriteFlushers(nil, flushio.Discard), "only discards")

	var a, b bytes.Buffer
	single := flushio.NewWriteFlusher(&a)
	assert.Equal(t, single, flushio.WriteFlushers(nil, single), "single passes through")

	tee := flushio.WriteFlushers(single, flushio.NewWriteFlusher(&b))
	n, err := io.WriteString(tee, "42 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, tee.Flush())
	assert.Equal(t, "42 ", a.String())
	assert.Equal(t, "42 ", b.String())

	errNope := errors.New("nope")
	broken := flushio.WriteFlushers(tee, flushio.NewWriteFlusher(failWriter{errNope}))
	_, err = io.WriteString(broken, "x")
	assert.NoError(t, err, "failWriter is buffered until flush")
	assert.True(t, errors.Is(broken.Flush(), errNope), "expected flush error")
	assert.Equal(t, "42 x", a.String(), "expected healthy writers to still be flushed")
}
