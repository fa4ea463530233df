package schema_registry

import "time"

// DefaultTimeout is used when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Config holds configuration for the schema registry client.
type Config struct {
	// URL is the schema registry endpoint (e.g., "http://localhost:8081")
	URL string `yaml:"url" envconfig:"SCHEMA_REGISTRY_URL"`

	// Username for basic auth (optional)
	Username string `yaml:"username" envconfig:"SCHEMA_REGISTRY_USERNAME"`

	// Password for basic auth (optional)
	Password string `yaml:"-" json:"-" envconfig:"SCHEMA_REGISTRY_PASSWORD"` //nolint:gosec

	// Timeout for HTTP requests
	Timeout time.Duration `yaml:"timeout"`
}
