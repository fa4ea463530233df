package schema_registry

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingURL is returned by NewClient when Config.URL is empty.
	ErrMissingURL = errors.New("schema registry URL is required")

	// ErrNotFound matches a *StatusError for an unknown subject, version or id.
	ErrNotFound = errors.New("schema not found")
)

// StatusError is a non-200 answer from the registry.
type StatusError struct {
	StatusCode int

	// ErrorCode is the registry's own code, e.g. 40401 for an unknown subject.
	ErrorCode int
	Message   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("schema registry returned status %d: %s", e.StatusCode, e.Message)
}

// Is reports ErrNotFound for 404 answers.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}
