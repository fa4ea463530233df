package eventportal

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind is a machine-readable classification of a failed API call.
// The reconciler switches on kinds and never inspects message text.
type ErrorKind string

const (
	// KindUnknown is used when a failure matches no other kind.
	KindUnknown ErrorKind = "UNKNOWN"

	// KindDuplicateName means an object or domain with the same name already exists.
	KindDuplicateName ErrorKind = "DUPLICATE_NAME"

	// KindVersionConflict means the version string is already used under the parent object.
	KindVersionConflict ErrorKind = "VERSION_CONFLICT"

	// KindConflict is a 409 that matched no known conflict signature.
	KindConflict ErrorKind = "CONFLICT"

	// KindNotFound means the addressed resource does not exist.
	KindNotFound ErrorKind = "NOT_FOUND"

	// KindUnauthorized means the token is missing, invalid or expired.
	KindUnauthorized ErrorKind = "UNAUTHORIZED"

	// KindForbidden means the token lacks permission for the operation.
	KindForbidden ErrorKind = "FORBIDDEN"

	// KindInvalidInput means the service rejected the request body or parameters.
	KindInvalidInput ErrorKind = "INVALID_INPUT"

	// KindRateLimit means the service throttled the request.
	KindRateLimit ErrorKind = "RATE_LIMIT_EXCEEDED"

	// KindServer is any 5xx response.
	KindServer ErrorKind = "SERVER_ERROR"

	// KindNetwork means no HTTP response was received or it could not be read.
	KindNetwork ErrorKind = "NETWORK_ERROR"
)

var (
	// ErrMissingToken is returned by NewClient when neither Config.Token nor
	// SOLACE_CLOUD_TOKEN is set.
	ErrMissingToken = errors.New("eventportal: you must define the Solace Cloud token")

	// ErrInvalidRequest is returned before any network call when a request is
	// incomplete or malformed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound matches any *APIError of kind KindNotFound.
	ErrNotFound = errors.New("not found")

	// ErrImmutableVersion matches *ImmutableVersionError.
	ErrImmutableVersion = errors.New("version is immutable")

	// ErrAmbiguousMatch matches *AmbiguousMatchError.
	ErrAmbiguousMatch = errors.New("ambiguous name match")
)

// APIError is a failed call to the Event Portal API.
type APIError struct {
	Method   string
	Endpoint string

	// StatusCode is zero when no response was received.
	StatusCode int

	// Kind classifies the failure.
	Kind ErrorKind

	// ErrorKey and Message are copied from the service's error envelope.
	// Message holds the service's literal text.
	ErrorKey string
	Message  string

	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("event portal %s %s failed: %v", e.Method, e.Endpoint, e.Err)
	}
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("event portal %s %s: status %d: %v", e.Method, e.Endpoint, e.StatusCode, e.Err)
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("event portal returned status %d for %s %s: %s", e.StatusCode, e.Method, e.Endpoint, msg)
}

func (e *APIError) Unwrap() error { return e.Err }

// Is reports ErrNotFound for not-found responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// KindOf returns the kind of the first *APIError in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// ImmutableVersionError is returned when overwrite was requested for a
// version that is no longer in DRAFT.
type ImmutableVersionError struct {
	Family      string
	DisplayName string
	Version     string
	State       State
}

func (e *ImmutableVersionError) Error() string {
	return fmt.Sprintf("%s %q version %s is %s", e.Family, e.DisplayName, e.Version, e.State)
}

func (e *ImmutableVersionError) Is(target error) bool { return target == ErrImmutableVersion }

// AmbiguousMatchError is returned when a name lookup performed to reuse an
// existing object finds more than one candidate.
type AmbiguousMatchError struct {
	Family string
	Name   string
	IDs    []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("found %d %s objects named %q: %s", len(e.IDs), e.Family, e.Name, strings.Join(e.IDs, ", "))
}

func (e *AmbiguousMatchError) Is(target error) bool { return target == ErrAmbiguousMatch }

// conflictSignatures maps fragments of the service's error text to kinds.
// This table is the only place message wording is interpreted; matching is
// case-insensitive. Version signatures are checked first.
var conflictSignatures = []struct {
	kind     ErrorKind
	fragment string
}{
	{KindVersionConflict, "already in use"},
	{KindVersionConflict, "version has been passed in an invalid format"},
	{KindDuplicateName, "must be unique within application domain"},
	{KindDuplicateName, "already exists"},
}

// classify derives an ErrorKind from a non-2xx response.
func classify(statusCode int, message string) ErrorKind {
	lower := strings.ToLower(message)
	for _, sig := range conflictSignatures {
		if strings.Contains(lower, sig.fragment) {
			return sig.kind
		}
	}

	switch {
	case statusCode == http.StatusBadRequest:
		return KindInvalidInput
	case statusCode == http.StatusUnauthorized:
		return KindUnauthorized
	case statusCode == http.StatusForbidden:
		return KindForbidden
	case statusCode == http.StatusNotFound:
		return KindNotFound
	case statusCode == http.StatusConflict:
		return KindConflict
	case statusCode == http.StatusTooManyRequests:
		return KindRateLimit
	case statusCode >= 500:
		return KindServer
	}
	return KindUnknown
}
