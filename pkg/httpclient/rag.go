package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-client/pkg/otel"
	rag "github.com/ragware/go-rag"
	schema "github.com/ragware/go-rag/pkg/schema"
	"go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RAG performs a retrieval-augmented generation request and returns the
// fully buffered response. A request whose generation config selects
// streaming is rejected; use RAGStream for that branch.
func (c *Client) RAG(ctx context.Context, request schema.RAGRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "RAG",
		attribute.String("query", request.Query),
	)
	defer func() { endSpan(err) }()

	if request.Streaming() {
		return nil, rag.ErrBadParameter.With("streaming generation config, use RAGStream")
	}

	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("rag")); err != nil {
		return nil, err
	}
	return response, nil
}

// RAGStream performs a retrieval-augmented generation request with the
// streaming branch of the generation config selected, and returns a
// stream of raw response bytes once the response headers arrive. The
// call succeeds as soon as the stream handle is obtained; read failures
// after that point are reported by the stream itself. The caller is
// responsible for framing whatever structure the service places inside
// the byte stream, and for closing the stream when abandoning it early.
func (c *Client) RAGStream(ctx context.Context, request schema.RAGRequest) (result *Stream, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "RAGStream",
		attribute.String("query", request.Query),
	)
	defer func() { endSpan(err) }()

	// Select the streaming branch regardless of the caller's flag
	config := schema.GenerationConfig{}
	if request.RAGGenerationConfig != nil {
		config = *request.RAGGenerationConfig
	}
	config.Stream = true
	request.RAGGenerationConfig = &config

	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	// The underlying *http.Client is used directly so the response body
	// can be handed to the stream rather than buffered
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/rag", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", client.ContentTypeJson)

	resp, err := c.Client.Client.Do(req)
	if err != nil {
		return nil, rag.ErrTransport.With(err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		log.Printf("rag stream: %s %q", resp.Status, data)
		return nil, rag.ErrServer.Withf("%s: %s", resp.Status, data)
	}

	return NewStream(resp.Body), nil
}
