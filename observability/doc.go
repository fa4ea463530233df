// Package observability defines the single hook through which the client
// packages of this module report completed remote operations.
//
// # Overview
//
// eventportal, schema_registry and minio each accept an optional Observer.
// After every remote call they emit an OperationContext describing what was
// done, to which resource, how long it took and whether it failed. The
// packages never depend on a concrete metrics or tracing backend.
//
// # Implementing an Observer
//
//	type auditObserver struct{ log *logger.LoggerClient }
//
//	func (o *auditObserver) ObserveOperation(ctx observability.OperationContext) {
//	    if ctx.Component == "eventportal" && ctx.Error == nil {
//	        o.log.Info("catalog changed", nil, map[string]interface{}{
//	            "operation": ctx.Operation,
//	            "family":    ctx.Resource,
//	            "target":    ctx.SubResource,
//	        })
//	    }
//	}
//
// The metrics package ships a Prometheus-backed implementation,
// metrics.NewOperationObserver.
//
// # Combining observers
//
// Multi fans out to several observers:
//
//	obs := observability.Multi(metricsObserver, &auditObserver{log: log})
//	client := eventportal.NewClient(cfg)
//	client.WithObserver(obs)
//
// # FX Integration
//
// Packages declare the observer as an optional fx dependency:
//
//	type ClientParams struct {
//	    fx.In
//
//	    Config   eventportal.Config
//	    Observer observability.Observer `optional:"true"`
//	}
//
// Provide one to turn observation on:
//
//	fx.Provide(func(m *metrics.Metrics) observability.Observer {
//	    return metrics.NewOperationObserver(m)
//	})
package observability
