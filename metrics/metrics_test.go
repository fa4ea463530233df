package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aalemi-dev/eventportal/metrics"
	"github.com/aalemi-dev/eventportal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics(metrics.Config{
		Address:               metrics.Ptr(""),
		ServiceName:           "test-service",
		DisableRuntimeMetrics: true,
	})
}

func TestNewMetrics(t *testing.T) {
	t.Run("default address", func(t *testing.T) {
		m := metrics.NewMetrics(metrics.Config{ServiceName: "svc"})
		require.NotNil(t, m.Server)
		assert.Equal(t, metrics.DefaultAddress, m.Server.Addr)
		assert.NotNil(t, m.Registry)
	})

	t.Run("server disabled", func(t *testing.T) {
		m := newTestMetrics()
		assert.Nil(t, m.Server)
		assert.NotNil(t, m.Registry)
	})
}

func TestCreateMetrics(t *testing.T) {
	m := newTestMetrics()

	counter := m.CreateCounter("test_counter_total", "Test counter", []string{"label"})
	counter.WithLabelValues("a").Inc()
	counter.WithLabelValues("a").Add(2)

	hist := m.CreateHistogram("test_duration_seconds", "Test histogram", []string{"label"}, nil)
	hist.WithLabelValues("a").Observe(0.3)

	count, err := testutil.GatherAndCount(m.Registry, "test_counter_total", "test_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Panics(t, func() {
		m.CreateCounter("test_counter_total", "duplicate", []string{"label"})
	})
}

func TestHandlerServesServiceLabel(t *testing.T) {
	m := newTestMetrics()
	m.CreateCounter("served_total", "Served", nil).Inc()

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `served_total{service="test-service"} 1`)
}

func TestOperationObserver(t *testing.T) {
	m := newTestMetrics()
	observer := metrics.NewOperationObserver(m)

	observer.ObserveOperation(observability.OperationContext{
		Component: "eventportal",
		Operation: "create_schema_object",
		Resource:  "schema",
		Duration:  120 * time.Millisecond,
		Metadata:  map[string]interface{}{"outcome": "reused"},
	})
	observer.ObserveOperation(observability.OperationContext{
		Component: "eventportal",
		Operation: "create_schema_object",
		Resource:  "schema",
		Duration:  time.Second,
		Error:     errors.New("boom"),
		Metadata:  map[string]interface{}{},
	})
	observer.ObserveOperation(observability.OperationContext{
		Component: "minio",
		Operation: "get",
		Resource:  "schemas",
		Duration:  10 * time.Millisecond,
	})

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	series := map[string]int{}
	for _, family := range families {
		series[family.GetName()] = len(family.GetMetric())
	}
	assert.Equal(t, 3, series[metrics.OperationsTotalName], "success, error and minio series")
	assert.Equal(t, 2, series[metrics.OperationDurationName])
	assert.Equal(t, 1, series[metrics.ReconciliationTotalName], "failed calls have no outcome")
}
