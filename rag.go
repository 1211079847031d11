/*
rag provides a client SDK for a remote document retrieval and
retrieval-augmented generation (RAG) service.
*/
package rag

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Stream is the consumer contract for a streamed generation response: a
// lazy, finite-or-error-terminated sequence of raw byte chunks. The
// channel returned by Chunks closes when the stream reaches a terminal
// state; Err is valid after that and reports a read failure, if any.
// Close abandons the stream early and may be called at any time.
type Stream interface {
	Chunks() <-chan []byte
	Err() error
	Close() error
}
