package httpclient

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a client construction option
type Opt func(*options) error

type options struct {
	prefix string
	tracer trace.Tracer
	client []client.ClientOpt
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OptPrefix sets the path prefix appended to the base URL
func OptPrefix(prefix string) Opt {
	return func(o *options) error {
		o.prefix = prefix
		return nil
	}
}

// OptTracer sets an OpenTelemetry tracer used to emit one span per call
func OptTracer(tracer trace.Tracer) Opt {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// OptClient appends options for the underlying HTTP client
func OptClient(opts ...client.ClientOpt) Opt {
	return func(o *options) error {
		o.client = append(o.client, opts...)
		return nil
	}
}
