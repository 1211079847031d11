package httpclient

import (
	"context"
	"net/http"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/ragware/go-rag/pkg/schema"
	"go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Applied to a logs request when max_runs_requested is unset or zero
	defaultMaxRuns = 100
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Delete removes entries matching the given parallel key and value
// arrays. The request always carries a JSON body with an explicit JSON
// content type, since a DELETE body is omitted by default otherwise.
func (c *Client) Delete(ctx context.Context, request schema.DeleteRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "Delete",
		attribute.String("request", request.String()),
	)
	defer func() { endSpan(err) }()

	req, err := client.NewJSONRequestEx(http.MethodDelete, request, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("delete")); err != nil {
		return nil, err
	}
	return response, nil
}

// Logs returns run logs. An unset log type filter is sent as an
// explicit null, and an unset or zero max_runs_requested defaults to
// 100. A caller intending "zero runs" cannot be distinguished from an
// unset value; the service contract defines both as the default.
func (c *Client) Logs(ctx context.Context, request schema.LogsRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "Logs")
	defer func() { endSpan(err) }()

	if request.MaxRunsRequested == 0 {
		request.MaxRunsRequested = defaultMaxRuns
	}

	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("logs")); err != nil {
		return nil, err
	}
	return response, nil
}

// AppSettings returns the service's application settings
func (c *Client) AppSettings(ctx context.Context) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "AppSettings")
	defer func() { endSpan(err) }()

	var response schema.Response
	if err = c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("app_settings")); err != nil {
		return nil, err
	}
	return response, nil
}

// Analytics returns aggregate analytics for the given filter criteria
// and analysis types
func (c *Client) Analytics(ctx context.Context, request schema.AnalyticsRequest) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "Analytics")
	defer func() { endSpan(err) }()

	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, req, &response, client.OptPath("analytics")); err != nil {
		return nil, err
	}
	return response, nil
}

// UsersOverview returns per-user usage listings, optionally filtered by
// user IDs passed as query parameters
func (c *Client) UsersOverview(ctx context.Context, userIDs []string) (result schema.Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "UsersOverview",
		attribute.Int("user_ids", len(userIDs)),
	)
	defer func() { endSpan(err) }()

	opts := []client.RequestOpt{client.OptPath("users_overview")}
	if len(userIDs) > 0 {
		opts = append(opts, client.OptQuery(url.Values{"user_ids": userIDs}))
	}

	var response schema.Response
	if err = c.DoWithContext(ctx, client.NewRequest(), &response, opts...); err != nil {
		return nil, err
	}
	return response, nil
}
