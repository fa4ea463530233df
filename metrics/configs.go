package metrics

// DefaultAddress is where the metrics server listens when Config.Address is nil.
const DefaultAddress = ":9090"

// Config defines how Prometheus metrics are exposed.
type Config struct {
	// Address is the listen address of the /metrics HTTP server.
	//
	// Example values:
	//   - ":9090"          → all interfaces, port 9090
	//   - "127.0.0.1:9090" → localhost only
	//   - nil              → DefaultAddress
	//   - ptr to ""        → no server; metrics are still collected and can
	//     be served through Handler
	Address *string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is attached to every metric as the constant "service" label.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// DisableRuntimeMetrics skips the Go runtime and process collectors.
	// Useful for short-lived CLI runs and tests.
	DisableRuntimeMetrics bool `yaml:"disable_runtime_metrics"`
}

// Ptr returns a pointer to s, for Config.Address.
func Ptr(s string) *string {
	return &s
}
