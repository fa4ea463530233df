package metrics

import (
	"github.com/aalemi-dev/eventportal/observability"
)

// Metric names recorded by OperationObserver.
const (
	OperationsTotalName     = "eventportal_operations_total"
	OperationDurationName   = "eventportal_operation_duration_seconds"
	ReconciliationTotalName = "eventportal_reconciliations_total"
)

// DurationBuckets suit remote API calls: 10ms to 30s.
var DurationBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// OperationObserver records every observed operation as Prometheus metrics:
//
//	eventportal_operations_total{component,operation,resource,status}
//	eventportal_operation_duration_seconds{component,operation,resource}
//	eventportal_reconciliations_total{resource,outcome}
//
// The last one counts create calls by outcome (created, reused, patched),
// taken from the "outcome" metadata key.
type OperationObserver struct {
	operations      Counter
	duration        Histogram
	reconciliations Counter
}

var _ observability.Observer = (*OperationObserver)(nil)

// NewOperationObserver registers the operation metrics on m.
//
// Example:
//
//	m := metrics.NewMetrics(cfg)
//	client.WithObserver(metrics.NewOperationObserver(m))
func NewOperationObserver(m MetricsCollector) *OperationObserver {
	return &OperationObserver{
		operations: m.CreateCounter(OperationsTotalName,
			"Operations performed against remote systems.",
			[]string{"component", "operation", "resource", "status"}),
		duration: m.CreateHistogram(OperationDurationName,
			"Duration of operations against remote systems.",
			[]string{"component", "operation", "resource"}, DurationBuckets),
		reconciliations: m.CreateCounter(ReconciliationTotalName,
			"Create calls by reconciliation outcome.",
			[]string{"resource", "outcome"}),
	}
}

// ObserveOperation implements observability.Observer.
func (o *OperationObserver) ObserveOperation(ctx observability.OperationContext) {
	o.operations.WithLabelValues(ctx.Component, ctx.Operation, ctx.Resource, ctx.Status()).Inc()
	o.duration.WithLabelValues(ctx.Component, ctx.Operation, ctx.Resource).Observe(ctx.Duration.Seconds())

	if outcome, ok := ctx.Metadata["outcome"].(string); ok && ctx.Error == nil {
		o.reconciliations.WithLabelValues(ctx.Resource, outcome).Inc()
	}
}
