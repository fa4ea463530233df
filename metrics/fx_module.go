package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/eventportal/logger"
)

// FXModule provides *Metrics, the MetricsCollector interface and an
// *OperationObserver, and runs the metrics server for the lifetime of the
// application.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Supply(metrics.Config{Address: metrics.Ptr(":9090"), ServiceName: "eventportal"}),
//	    fx.Invoke(func(o *metrics.OperationObserver, c *eventportal.Client) {
//	        c.WithObserver(o)
//	    }),
//	)
//
// Dependencies required by this module:
// - A metrics.Config instance must be available in the dependency injection container
// - A *logger.LoggerClient is optional and used for startup/shutdown logs
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
		NewOperationObserver,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsLifecycleParams groups the dependencies of RegisterMetricsLifecycle.
type MetricsLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    *logger.LoggerClient `optional:"true"`
}

// RegisterMetricsLifecycle starts the metrics server in the background on
// application start and shuts it down gracefully on stop. It does nothing
// when the server is disabled.
func RegisterMetricsLifecycle(params MetricsLifecycleParams) {
	m, log := params.Metrics, params.Logger
	if m.Server == nil {
		return
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if log != nil {
					log.Info("Starting metrics server", nil, map[string]interface{}{
						"address": m.Server.Addr,
					})
				}
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) && log != nil {
					log.Error("Error starting metrics server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if log != nil {
				log.Info("Shutting down metrics server", nil, nil)
			}
			return m.Server.Shutdown(ctx)
		},
	})
}
