package minio

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/eventportal/observability"
)

// FXModule provides *MinioClient and the Client interface.
//
// Dependencies required by this module:
//   - a minio.Config instance in the container
//   - optionally a Logger and an observability.Observer
var FXModule = fx.Module("minio",
	fx.Provide(
		NewMinioClientWithDI,
		fx.Annotate(
			func(m *MinioClient) Client { return m },
			fx.As(new(Client)),
		),
	),
	fx.Invoke(RegisterLifecycle),
)

// MinioParams groups the dependencies of NewMinioClientWithDI.
type MinioParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewMinioClientWithDI builds a client from injected dependencies.
func NewMinioClientWithDI(params MinioParams) (*MinioClient, error) {
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Logger != nil {
		client.logger = params.Logger
	}
	if params.Observer != nil {
		client.observer = params.Observer
	}

	return client, nil
}

// MinioLifeCycleParams groups the dependencies of RegisterLifecycle.
type MinioLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Minio     *MinioClient
}

// RegisterLifecycle logs when the client becomes available and when the
// application stops. minio-go keeps no long-lived connections that need closing.
func RegisterLifecycle(params MinioLifeCycleParams) {
	if params.Minio == nil {
		return
	}

	fields := map[string]interface{}{"endpoint": params.Minio.cfg.Connection.Endpoint}
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Minio.logInfo(ctx, "minio client ready", fields)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Minio.logInfo(ctx, "closing minio client", fields)
			return nil
		},
	})
}
