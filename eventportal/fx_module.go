package eventportal

import (
	"context"

	"github.com/aalemi-dev/eventportal/observability"
	"github.com/aalemi-dev/eventportal/tracer"
	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides the Event Portal client.
//
// The module provides:
// 1. *Client (concrete type) for direct use
// 2. Catalog interface for dependency injection
// 3. Lifecycle logging
//
// Usage:
//
//	app := fx.New(
//	    eventportal.FXModule,
//	    fx.Supply(eventportal.Config{Token: os.Getenv("SOLACE_CLOUD_TOKEN")}),
//	)
//
// Logger, Observer and Tracer are picked up from the container when present.
var FXModule = fx.Module("eventportal",
	fx.Provide(
		NewClientWithDI, // Provides *Client
		fx.Annotate(
			func(c *Client) Catalog { return c },
			fx.As(new(Catalog)),
		),
	),
	fx.Invoke(RegisterEventPortalLifecycle),
)

// EventPortalParams groups the dependencies needed to create an Event Portal client
type EventPortalParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   tracer.Tracer          `optional:"true"`
}

// NewClientWithDI creates a new Event Portal client using dependency injection.
// It fails with ErrMissingToken when no token can be resolved.
func NewClientWithDI(params EventPortalParams) (*Client, error) {
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Logger != nil {
		client.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		client.WithObserver(params.Observer)
	}
	if params.Tracer != nil {
		client.WithTracer(params.Tracer)
	}

	return client, nil
}

// EventPortalLifecycleParams groups the dependencies needed for lifecycle management
type EventPortalLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
}

// RegisterEventPortalLifecycle logs client start and stop. The client holds
// no connections of its own, so there is nothing to release.
func RegisterEventPortalLifecycle(params EventPortalLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Client.logInfo(ctx, "Event Portal client initialized", nil)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Client.logInfo(ctx, "Event Portal client shutdown", nil)
			return nil
		},
	})
}
