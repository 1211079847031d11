package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/ragware/go-rag/pkg/schema"
	"go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// UpdateDocuments updates previously ingested documents supplied inline
func (c *Client) UpdateDocuments(ctx context.Context, request schema.UpdateDocumentsRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "UpdateDocuments",
		attribute.Int("documents", len(request.Documents)),
	)
	defer func() { endSpan(err) }()

	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("update_documents")); err != nil {
		return nil, err
	}
	return response, nil
}

// UpdateFiles replaces the stored files for existing documents. Files
// are appended in order under a shared field name; document IDs and
// optional per-file metadata are sent as JSON-stringified form values.
func (c *Client) UpdateFiles(ctx context.Context, files []schema.File, request schema.UpdateFilesRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "UpdateFiles",
		attribute.Int("files", len(files)),
	)
	defer func() { endSpan(err) }()

	return c.upload(ctx, "/update_files", files, request)
}

// DocumentsOverview returns document listings, optionally filtered by
// document or user IDs
func (c *Client) DocumentsOverview(ctx context.Context, request schema.DocumentsOverviewRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "DocumentsOverview")
	defer func() { endSpan(err) }()

	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("documents_overview")); err != nil {
		return nil, err
	}
	return response, nil
}

// DocumentChunks returns the stored chunks of a single document
func (c *Client) DocumentChunks(ctx context.Context, request schema.DocumentChunksRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "DocumentChunks",
		attribute.String("document_id", request.DocumentID),
	)
	defer func() { endSpan(err) }()

	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("document_chunks")); err != nil {
		return nil, err
	}
	return response, nil
}
