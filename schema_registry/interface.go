package schema_registry

import "context"

// Registry reads schemas from a Confluent Schema Registry.
type Registry interface {
	// GetSchemaByID retrieves a schema by its global id.
	GetSchemaByID(ctx context.Context, id int) (string, error)

	// GetLatestSchema retrieves the latest version registered for a subject.
	GetLatestSchema(ctx context.Context, subject string) (*Metadata, error)

	// GetSchemaVersion retrieves one version of a subject.
	GetSchemaVersion(ctx context.Context, subject string, version int) (*Metadata, error)
}

// Metadata describes a registered schema.
type Metadata struct {
	ID      int    `json:"id"`
	Version int    `json:"version"`
	Schema  string `json:"schema"`
	Subject string `json:"subject"`
	Type    string `json:"schemaType,omitempty"`
}

// Logger is an interface that matches the logger.Logger interface.
// It provides context-aware structured logging with optional error and field parameters.
type Logger interface {
	// InfoWithContext logs an informational message with trace context.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs a warning message with trace context.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs an error message with trace context.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
