package tracer

// Config defines the configuration for the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies this process in exported traces, e.g. "eventportal".
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv sets the "deployment.environment" and "environment" resource attributes.
	// Common values: "development", "staging", "production".
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. When false spans are still
	// created and propagated to the Event Portal API via trace-context headers,
	// they are just never sent to a collector.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint overrides the collector address ("host:port"). Empty means the
	// exporter falls back to OTEL_EXPORTER_OTLP_ENDPOINT or localhost:4318.
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" envconfig:"TRACER_INSECURE"`
}
