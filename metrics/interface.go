package metrics

// MetricsCollector creates metrics registered on the instance's registry.
//
// This interface is implemented by the concrete *Metrics type and does not
// expose any Prometheus-specific types.
type MetricsCollector interface {
	// CreateCounter creates and registers a counter.
	//
	// Example:
	//   counter := m.CreateCounter("eventportal_operations_total", "Operations", []string{"operation", "status"})
	//   counter.WithLabelValues("create_schema_object", "success").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram creates and registers a histogram. Nil buckets means
	// prometheus.DefBuckets.
	//
	// Example:
	//   hist := m.CreateHistogram("eventportal_operation_duration_seconds", "Duration", []string{"operation"}, nil)
	//   hist.WithLabelValues("create_schema_object").Observe(0.25)
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram
}
