package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a Prometheus registry and, optionally, the HTTP server
// exposing it on /metrics.
type Metrics struct {
	// Server serves Registry on /metrics. Nil when Config.Address is "".
	Server *http.Server

	// Registry holds every metric created through this instance.
	Registry *prometheus.Registry

	// registerer adds the constant service label.
	registerer prometheus.Registerer
}

// NewMetrics creates the registry and, unless disabled, the metrics server.
// The server is started by the fx lifecycle hook, or by the caller:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "eventportal"})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if !cfg.DisableRuntimeMetrics {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m := &Metrics{
		Registry:   registry,
		registerer: registerer,
	}

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		m.Server = &http.Server{
			Addr:    addr,
			Handler: mux,
		}
	}

	return m
}

// Handler returns an http.Handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
