/*
httpclient implements the HTTP client for the retrieval service API.
Each public method wraps one endpoint: the request is shaped as JSON or
multipart form data, sent, and the decoded response returned without
interpretation.
*/
package httpclient

import (
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
	rag "github.com/ragware/go-rag"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is a retrieval service client that wraps the base HTTP client
// and provides typed methods for each service endpoint. It is immutable
// after construction and safe for concurrent use.
type Client struct {
	*client.Client
	endpoint string
	tracer   trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultPrefix is appended to the base URL unless OptPrefix is used
	DefaultPrefix = "/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given base URL and options. The base
// URL and path prefix are joined once at construction; no network
// activity occurs until the first request.
func New(base string, opts ...Opt) (*Client, error) {
	if base == "" {
		return nil, rag.ErrBadParameter.With("missing base URL")
	}

	// Apply options
	o := options{prefix: DefaultPrefix}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	// Join the base URL and prefix into the fixed request root
	endpoint := strings.TrimSuffix(base, "/") + types.NormalisePath(o.prefix)

	c := new(Client)
	c.endpoint = endpoint
	c.tracer = o.tracer
	if client, err := client.New(append(o.client, client.OptEndpoint(endpoint))...); err != nil {
		return nil, err
	} else {
		c.Client = client
	}
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Endpoint returns the fixed request root used for all requests
func (c *Client) Endpoint() string {
	return c.endpoint
}
