package logger

// Log level constants accepted by Config.Level.
const (
	// Debug emits every message, including per-request transport details.
	Debug = "debug"

	// Info emits progress messages such as "schema created" or "version patched".
	Info = "info"

	// Warning emits only warnings and errors.
	Warning = "warning"

	// Error emits only errors.
	Error = "error"
)

// Encoding values accepted by Config.Encoding.
const (
	// EncodingJSON produces one JSON document per entry. It is the default.
	EncodingJSON = "json"

	// EncodingConsole produces tab-separated, human-readable entries,
	// which is what the CLI uses when attached to a terminal.
	EncodingConsole = "console"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning" and "error".
	// Unknown or empty values fall back to "info".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable EVENTPORTAL_LOG_LEVEL
	Level string `yaml:"level" envconfig:"EVENTPORTAL_LOG_LEVEL"`

	// Encoding selects the zap encoder, "json" (default) or "console".
	Encoding string `yaml:"encoding" envconfig:"EVENTPORTAL_LOG_ENCODING"`

	// EnableTracing adds "trace_id" and "span_id" fields to entries logged
	// through the *WithContext methods when the context carries a recording span.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"EVENTPORTAL_LOG_TRACING"`

	// ServiceName populates the "service" field in every entry.
	ServiceName string `yaml:"service_name" envconfig:"EVENTPORTAL_SERVICE_NAME"`

	// CallerSkip controls the number of stack frames to skip when reporting the caller.
	//   - 1 (default): callers use LoggerClient directly
	//   - 2: callers go through one wrapper, e.g. the eventportal client's log helpers
	//
	// If not set or set to 0, defaults to 1.
	CallerSkip int `yaml:"caller_skip"`
}
