package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a cumulative metric that only increases.
type Counter interface {
	// WithLabelValues returns the Counter for the given label values, in
	// the order the labels were declared.
	WithLabelValues(lvs ...string) Counter

	// Inc increments the counter by 1.
	Inc()

	// Add adds val, which must be >= 0.
	Add(val float64)
}

// Histogram samples observations into buckets.
type Histogram interface {
	// WithLabelValues returns the Observer for the given label values.
	WithLabelValues(lvs ...string) Observer

	// Observe adds a single observation.
	Observe(val float64)
}

// Observer records a single value.
type Observer interface {
	Observe(val float64)
}

// counterVec wraps prometheus.CounterVec to implement the Counter interface.
type counterVec struct {
	vec *prometheus.CounterVec
}

func (c *counterVec) WithLabelValues(lvs ...string) Counter {
	return &counter{metric: c.vec.WithLabelValues(lvs...)}
}

func (c *counterVec) Inc() {
	c.vec.WithLabelValues().Inc()
}

func (c *counterVec) Add(val float64) {
	c.vec.WithLabelValues().Add(val)
}

// counter is a counter with all label values bound.
type counter struct {
	metric prometheus.Counter
}

// WithLabelValues returns c; its labels are already bound.
func (c *counter) WithLabelValues(...string) Counter {
	return c
}

func (c *counter) Inc() {
	c.metric.Inc()
}

func (c *counter) Add(val float64) {
	c.metric.Add(val)
}

// histogramVec wraps prometheus.HistogramVec to implement the Histogram interface.
type histogramVec struct {
	vec *prometheus.HistogramVec
}

func (h *histogramVec) WithLabelValues(lvs ...string) Observer {
	return h.vec.WithLabelValues(lvs...)
}

func (h *histogramVec) Observe(val float64) {
	h.vec.WithLabelValues().Observe(val)
}
