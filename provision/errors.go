package provision

import "errors"

var (
	// ErrInvalidPlan is returned when a plan fails validation. The wrapped
	// message names the offending entry.
	ErrInvalidPlan = errors.New("invalid provisioning plan")

	// ErrContentSource is returned when a schema's content source is missing,
	// ambiguous, or needs a client that was not configured.
	ErrContentSource = errors.New("invalid schema content source")
)
