// Package metrics exposes Prometheus metrics for the Event Portal tooling.
//
// A Metrics instance owns one registry, wrapped so every metric carries a
// constant "service" label, and optionally an HTTP server that serves it
// on /metrics. Go runtime and process collectors are registered unless
// Config.DisableRuntimeMetrics is set.
//
// Metrics are created through the MetricsCollector interface, which hides
// the Prometheus types:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "eventportal"})
//	counter := m.CreateCounter("plans_applied_total", "Plans applied", []string{"domain"})
//	counter.WithLabelValues("Acme").Inc()
//
// # Operation metrics
//
// OperationObserver implements observability.Observer. Attached to the
// eventportal, schema_registry or minio clients it records call counts by
// status, call durations, and reconciliation outcomes of create calls:
//
//	observer := metrics.NewOperationObserver(m)
//	client := eventportal.NewClientWithTransport(t).WithObserver(observer)
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Supply(metrics.Config{Address: metrics.Ptr(":9090")}),
//	)
//
// Set Address to Ptr("") to collect metrics without starting a server.
package metrics
