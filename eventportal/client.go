package eventportal

import (
	"context"

	"github.com/aalemi-dev/eventportal/observability"
	"github.com/aalemi-dev/eventportal/tracer"
)

// Client is the default implementation of Catalog.
// It is safe for concurrent use: after construction it holds no mutable state.
type Client struct {
	transport Transport

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// logger provides optional context-aware logging capabilities
	logger Logger

	// tracer, when set, wraps every operation in a span
	tracer tracer.Tracer
}

// NewClient creates a client that talks to the Event Portal over HTTP.
// Returns ErrMissingToken when no token is configured or found in the
// environment.
//
// Example:
//
//	client, err := eventportal.NewClient(eventportal.Config{})
//	if err != nil {
//	    return err
//	}
//	domainID, err := client.CreateApplicationDomain(ctx, eventportal.ApplicationDomainRequest{Name: "Acme"})
func NewClient(cfg Config) (*Client, error) {
	transport, err := NewHTTPTransport(cfg)
	if err != nil {
		return nil, err
	}
	return NewClientWithTransport(transport), nil
}

// NewClientWithTransport creates a client over an arbitrary Transport.
func NewClientWithTransport(transport Transport) *Client {
	return &Client{transport: transport}
}

// WithObserver sets the observer for this client and returns the client for method chaining.
// The observer is notified once per public operation.
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for method chaining.
// Progress of every create, reuse and patch is logged at info level.
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// WithTracer sets the tracer for this client and returns the client for
// method chaining. When the client uses an *HTTPTransport the tracer is
// also used to propagate trace context to the API.
func (c *Client) WithTracer(tr tracer.Tracer) *Client {
	c.tracer = tr
	if t, ok := c.transport.(*HTTPTransport); ok {
		t.WithTracer(tr)
	}
	return c
}

// logInfo logs an informational message if a logger is configured
func (c *Client) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.InfoWithContext(ctx, msg, nil, fields)
	}
}

// logWarn logs a warning message if a logger is configured
func (c *Client) logWarn(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.WarnWithContext(ctx, msg, err, fields)
	}
}
