package eventportal

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL is the Event Portal v2 architecture API root every
	// endpoint path is appended to.
	DefaultBaseURL = "https://api.solace.cloud/api/v2/architecture"

	// TokenEnvVar is consulted when Config.Token is empty.
	TokenEnvVar = "SOLACE_CLOUD_TOKEN"

	// DefaultTimeout bounds a single HTTP round-trip.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "eventportal-go"
)

// Config holds configuration for the Event Portal client.
type Config struct {
	// Token is the Solace Cloud bearer token. When empty the value of the
	// SOLACE_CLOUD_TOKEN environment variable is used; if that is empty too,
	// NewClient fails with ErrMissingToken.
	Token string `yaml:"-" json:"-"` //nolint:gosec

	// BaseURL overrides DefaultBaseURL, e.g. for a regional endpoint or a test server.
	BaseURL string `yaml:"base_url" envconfig:"EVENTPORTAL_BASE_URL"`

	// Timeout for each HTTP request. Zero means DefaultTimeout.
	Timeout time.Duration `yaml:"timeout" envconfig:"EVENTPORTAL_TIMEOUT"`

	// UserAgent overrides DefaultUserAgent.
	UserAgent string `yaml:"user_agent"`
}

// withDefaults fills unset fields, including the token fallback.
func (c Config) withDefaults() Config {
	if c.Token == "" {
		c.Token = os.Getenv(TokenEnvVar)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}
