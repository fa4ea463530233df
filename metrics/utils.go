package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates a counter and registers it. It panics if a metric
// with the same name is already registered.
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
	m.registerer.MustRegister(vec)
	return &counterVec{vec: vec}
}

// CreateHistogram creates a histogram and registers it. It panics if a
// metric with the same name is already registered.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
	m.registerer.MustRegister(vec)
	return &histogramVec{vec: vec}
}
