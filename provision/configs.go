package provision

const (
	// DomainEnvVar names the environment variable the CLI reads when no
	// domain name is given on the command line.
	DomainEnvVar = "SOLACE_APPLICATION_DOMAIN"

	// DefaultConcurrency bounds the number of objects created in parallel
	// within one phase.
	DefaultConcurrency = 4
)

// Config controls a provisioning run.
type Config struct {
	// DomainName overrides the domain name in the plan when set.
	DomainName string `yaml:"domain_name" envconfig:"SOLACE_APPLICATION_DOMAIN"`

	// Overwrite patches versions that already exist in DRAFT state instead of
	// failing with a version conflict.
	Overwrite bool `yaml:"overwrite"`

	// Concurrency is the maximum number of items created at once within a
	// phase. Zero or negative means DefaultConcurrency.
	Concurrency int `yaml:"concurrency"`
}

func (c Config) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}
