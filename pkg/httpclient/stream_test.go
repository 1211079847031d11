package httpclient_test

import (
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	// Packages
	httpclient "github.com/ragware/go-rag/pkg/httpclient"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// fakeBody yields the given chunks one per read, then returns final
// from the next read. Close calls are counted.
type fakeBody struct {
	chunks [][]byte
	final  error
	closed atomic.Int32
}

func (f *fakeBody) Read(p []byte) (int, error) {
	if len(f.chunks) == 0 {
		return 0, f.final
	}
	n := copy(p, f.chunks[0])
	f.chunks = f.chunks[1:]
	return n, nil
}

func (f *fakeBody) Close() error {
	f.closed.Add(1)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestStream_Complete(t *testing.T) {
	assert := assert.New(t)
	body := &fakeBody{
		chunks: [][]byte{[]byte("A"), []byte("B")},
		final:  io.EOF,
	}
	stream := httpclient.NewStream(body)

	var received []string
	for chunk := range stream.Chunks() {
		received = append(received, string(chunk))
	}
	assert.Equal([]string{"A", "B"}, received)
	assert.NoError(stream.Err())
	assert.Equal(int32(1), body.closed.Load())
}

func TestStream_ReadFailure(t *testing.T) {
	assert := assert.New(t)
	readErr := errors.New("connection reset")
	body := &fakeBody{
		chunks: [][]byte{[]byte("A")},
		final:  readErr,
	}
	stream := httpclient.NewStream(body)

	var received []string
	for chunk := range stream.Chunks() {
		received = append(received, string(chunk))
	}
	assert.Equal([]string{"A"}, received)
	assert.ErrorIs(stream.Err(), readErr)
	assert.Equal(int32(1), body.closed.Load())
}

func TestStream_CloseReleasesOnce(t *testing.T) {
	assert := assert.New(t)
	body := &fakeBody{
		chunks: [][]byte{[]byte("A"), []byte("B")},
		final:  io.EOF,
	}
	stream := httpclient.NewStream(body)

	// Take the first chunk then abandon
	chunk := <-stream.Chunks()
	assert.Equal("A", string(chunk))
	assert.NoError(stream.Close())
	assert.NoError(stream.Close()) // safe to call again

	// Producer exits and the channel closes
	for range stream.Chunks() {
	}
	assert.NoError(stream.Err())
	assert.Equal(int32(1), body.closed.Load())
}

func TestStream_CloseAfterComplete(t *testing.T) {
	assert := assert.New(t)
	body := &fakeBody{final: io.EOF}
	stream := httpclient.NewStream(body)

	for range stream.Chunks() {
	}
	assert.NoError(stream.Close())
	assert.Equal(int32(1), body.closed.Load())
}

func TestStream_Backpressure(t *testing.T) {
	assert := assert.New(t)
	body := &fakeBody{
		chunks: [][]byte{[]byte("A"), []byte("B")},
		final:  io.EOF,
	}
	stream := httpclient.NewStream(body)
	defer stream.Close()

	// The producer cannot run ahead of the consumer: with no receive,
	// the body is not drained and not yet released
	time.Sleep(10 * time.Millisecond)
	assert.Equal(int32(0), body.closed.Load())

	for range stream.Chunks() {
	}
	assert.Equal(int32(1), body.closed.Load())
}
