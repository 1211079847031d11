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

// IngestDocuments ingests documents supplied inline in the request
func (c *Client) IngestDocuments(ctx context.Context, request schema.IngestDocumentsRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "IngestDocuments",
		attribute.Int("documents", len(request.Documents)),
	)
	defer func() { endSpan(err) }()

	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("ingest_documents")); err != nil {
		return nil, err
	}
	return response, nil
}

// IngestFiles uploads files for ingestion as a multipart form. Files are
// appended in order under a shared field name; metadata fields are sent
// as JSON-stringified form values. Positional correspondence between
// files and metadata is server-enforced.
func (c *Client) IngestFiles(ctx context.Context, files []schema.File, request schema.IngestFilesRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "IngestFiles",
		attribute.Int("files", len(files)),
	)
	defer func() { endSpan(err) }()

	return c.upload(ctx, "/ingest_files", files, request)
}
