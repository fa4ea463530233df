package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/aalemi-dev/eventportal/eventportal"
	"github.com/aalemi-dev/eventportal/logger"
	"github.com/aalemi-dev/eventportal/tracer"
)

const serviceName = "eventportal"

// coreModules wires the logger, the tracer and the Event Portal client.
// Every command builds on them.
func (o *rootOptions) coreModules() fx.Option {
	return fx.Options(
		fx.WithLogger(func(l *logger.LoggerClient) fxevent.Logger {
			if o.logLevel != logger.Debug {
				return fxevent.NopLogger
			}
			return &fxevent.ZapLogger{Logger: l.Zap}
		}),

		fx.Supply(logger.Config{
			Level:         o.logLevel,
			Encoding:      o.logFormat,
			EnableTracing: o.traceEndpoint != "",
			ServiceName:   serviceName,
		}),
		logger.FXModule,
		fx.Provide(func(l *logger.LoggerClient) eventportal.Logger { return l }),

		fx.Supply(tracer.Config{
			ServiceName:  serviceName,
			EnableExport: o.traceEndpoint != "",
			Endpoint:     o.traceEndpoint,
			Insecure:     o.traceInsecure,
		}),
		tracer.FXModule,

		fx.Supply(eventportal.Config{
			Token:     o.token,
			BaseURL:   o.baseURL,
			Timeout:   o.timeout,
			UserAgent: serviceName + "-cli/" + o.version,
		}),
		eventportal.FXModule,
	)
}

// runApp starts an fx application built from opts, runs fn, and stops the
// application again whatever fn returns.
func runApp(ctx context.Context, opts fx.Option, fn func(ctx context.Context) error) (err error) {
	app := fx.New(opts)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
		defer cancel()
		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = fmt.Errorf("failed to stop: %w", stopErr)
		}
	}()

	return fn(ctx)
}

// withCatalog runs fn with an Event Portal client assembled from the global flags.
func (o *rootOptions) withCatalog(ctx context.Context, fn func(ctx context.Context, catalog eventportal.Catalog) error) error {
	var catalog eventportal.Catalog
	return runApp(ctx, fx.Options(o.coreModules(), fx.Populate(&catalog)), func(ctx context.Context) error {
		return fn(ctx, catalog)
	})
}
