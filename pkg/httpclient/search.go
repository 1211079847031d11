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

// Search performs a vector/hybrid search over ingested documents
func (c *Client) Search(ctx context.Context, request schema.SearchRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "Search",
		attribute.String("query", request.Query),
	)
	defer func() { endSpan(err) }()

	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("search")); err != nil {
		return nil, err
	}
	return response, nil
}
