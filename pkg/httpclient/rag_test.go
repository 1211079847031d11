package httpclient_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	rag "github.com/ragware/go-rag"
	schema "github.com/ragware/go-rag/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestRAG_Buffered(t *testing.T) {
	srv, rec := newCaptureServer(t)
	c := newTestClient(t, srv.URL)

	response, err := c.RAG(context.Background(), schema.RAGRequest{
		Query:                "what is a vector",
		VectorSearchSettings: schema.DefaultVectorSearchSettings(),
		RAGGenerationConfig:  &schema.GenerationConfig{Model: "test-model"},
	})
	if err != nil {
		t.Fatal(err)
	}
	checkCall(t, rec, http.MethodPost, "/v1/rag")
	if response["results"] != "ok" {
		t.Fatalf("unexpected response %v", response)
	}

	body := decodeBody(t, rec)
	config := body["rag_generation_config"].(map[string]any)
	if _, exists := config["stream"]; exists {
		t.Fatalf("expected stream flag omitted, got %v", config["stream"])
	}
}

func TestRAG_RejectsStreamingConfig(t *testing.T) {
	srv, rec := newCaptureServer(t)
	c := newTestClient(t, srv.URL)

	_, err := c.RAG(context.Background(), schema.RAGRequest{
		Query:               "what is a vector",
		RAGGenerationConfig: &schema.GenerationConfig{Stream: true},
	})
	if !errors.Is(err, rag.ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
	// The buffered path was never entered
	if rec.calls != 0 {
		t.Fatalf("expected no HTTP call, got %d", rec.calls)
	}
}

func TestRAGStream(t *testing.T) {
	chunks := []string{`{"token": "hel"}`, `{"token": "lo"}`}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The sent body has the streaming branch selected
		var request schema.RAGRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !request.Streaming() {
			http.Error(w, "expected stream=true", http.StatusBadRequest)
			return
		}

		flusher := w.(http.Flusher)
		for _, chunk := range chunks {
			w.Write([]byte(chunk))
			flusher.Flush()
		}
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	// The streaming flag is forced even when the caller leaves it unset
	stream, err := c.RAGStream(context.Background(), schema.RAGRequest{
		Query: "what is a vector",
	})
	if err != nil {
		t.Fatal(err)
	}
	defer stream.Close()

	var received bytes.Buffer
	for chunk := range stream.Chunks() {
		received.Write(chunk)
	}
	if err := stream.Err(); err != nil {
		t.Fatal(err)
	}
	if got, want := received.String(), chunks[0]+chunks[1]; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRAGStream_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "generation failed", http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := c.RAGStream(context.Background(), schema.RAGRequest{Query: "anything"})
	if !errors.Is(err, rag.ErrServer) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
}

func TestRAGStream_AbandonEarly(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		w.Write([]byte("first chunk"))
		flusher.Flush()
		<-blocked // hold the response open
	}))
	defer srv.Close()
	defer close(blocked)
	c := newTestClient(t, srv.URL)

	stream, err := c.RAGStream(context.Background(), schema.RAGRequest{Query: "anything"})
	if err != nil {
		t.Fatal(err)
	}

	chunk, ok := <-stream.Chunks()
	if !ok || string(chunk) != "first chunk" {
		t.Fatalf("expected first chunk, got %q (ok=%v)", chunk, ok)
	}

	// Abandoning mid-stream closes the channel and is not a stream error
	if err := stream.Close(); err != nil {
		t.Fatal(err)
	}
	for range stream.Chunks() {
		// drain until the producer exits
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("expected no error after Close, got %v", err)
	}
}
