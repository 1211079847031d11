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

// UpdatePrompt updates a named prompt template on the service
func (c *Client) UpdatePrompt(ctx context.Context, request schema.UpdatePromptRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "UpdatePrompt",
		attribute.String("request", request.String()),
	)
	defer func() { endSpan(err) }()

	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("update_prompt")); err != nil {
		return nil, err
	}
	return response, nil
}
