package observability

import "time"

// Observer receives a notification every time a client package finishes an
// operation against a remote system (the Event Portal API, a schema registry,
// object storage). Packages work without an observer; it is always optional.
type Observer interface {
	// ObserveOperation is called when an operation completes, successfully or not.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component identifies the package that performed the operation.
	// Examples: "eventportal", "schema_registry", "minio"
	Component string

	// Operation names what was done.
	// Examples:
	//   eventportal:     "create_object", "create_version", "patch_version", "get_versions"
	//   schema_registry: "get_latest_schema", "get_schema_by_id"
	//   minio:           "get", "put"
	Operation string

	// Resource identifies the primary resource family or container.
	// Examples:
	//   eventportal:     "applicationDomain", "schema", "event", "application"
	//   schema_registry: subject name
	//   minio:           bucket name
	Resource string

	// SubResource narrows Resource (optional).
	// Examples:
	//   eventportal: object name, version string or id
	//   minio:       object key
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error returned by the operation; nil means success.
	Error error

	// Size is the payload size in bytes, when meaningful (optional).
	Size int64

	// Metadata carries operation-specific details (optional).
	// Examples:
	//   eventportal: {"outcome": "reused"}, {"status_code": 409}
	Metadata map[string]interface{}
}

// Status returns "error" when the operation failed and "success" otherwise.
// It is the value used for status labels by metric observers.
func (c OperationContext) Status() string {
	if c.Error != nil {
		return "error"
	}
	return "success"
}
