package httpclient

import (
	"io"
	"sync"

	// Packages
	rag "github.com/ragware/go-rag"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Stream is a lazy sequence of raw byte chunks read from a response
// body. Chunks are passed through unchanged, with no buffering beyond
// the chunk in flight and no framing. The producer blocks until the
// consumer receives each chunk, so consumption speed paces the reads.
//
// The underlying response body is released exactly once, whichever
// terminal state is reached: completion, read failure, or Close.
type Stream struct {
	ch   chan []byte
	done chan struct{}
	body io.ReadCloser

	closeOnce sync.Once
	doneOnce  sync.Once
	err       error
}

var _ rag.Stream = (*Stream)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	streamChunkSize = 4096
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewStream starts a producer over the given response body and returns
// the stream handle
func NewStream(body io.ReadCloser) *Stream {
	s := &Stream{
		ch:   make(chan []byte),
		done: make(chan struct{}),
		body: body,
	}
	go s.produce()
	return s
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chunks returns the channel of byte chunks, in arrival order. The
// channel is closed when the stream completes or fails; after it is
// closed, Err reports whether a read failure ended the stream.
func (s *Stream) Chunks() <-chan []byte {
	return s.ch
}

// Err returns the read failure that terminated the stream, or nil. It
// is valid only after the Chunks channel has closed.
func (s *Stream) Err() error {
	return s.err
}

// Close abandons the stream, unblocks the producer and releases the
// underlying response body. It is safe to call more than once, and
// after the stream has already completed.
func (s *Stream) Close() error {
	s.doneOnce.Do(func() { close(s.done) })
	s.release()
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// produce pulls chunks from the body and forwards them downstream until
// completion, read failure, or abandonment.
func (s *Stream) produce() {
	defer close(s.ch)
	defer s.release()

	buf := make([]byte, streamChunkSize)
	for {
		n, err := s.body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case s.ch <- chunk:
			case <-s.done:
				return
			}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			// A read failure after Close is the body being torn down,
			// not a stream error
			select {
			case <-s.done:
			default:
				s.err = err
			}
			return
		}
	}
}

// release closes the response body exactly once across all exit paths
func (s *Stream) release() {
	s.closeOnce.Do(func() { s.body.Close() })
}
