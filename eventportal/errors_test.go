package eventportal

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status  int
		message string
		want    ErrorKind
	}{
		{http.StatusBadRequest, "Application domain with name Acme already exists", KindDuplicateName},
		{http.StatusBadRequest, "The schema name \"S\" must be unique within application domain", KindDuplicateName},
		{http.StatusBadRequest, "Version '1.0.0' is already in use", KindVersionConflict},
		{http.StatusBadRequest, "eventVersion has been passed in an invalid format", KindVersionConflict},
		{http.StatusBadRequest, "applicationVersion has been passed in an invalid format", KindVersionConflict},
		{http.StatusConflict, "APPLICATIONVERSION HAS BEEN PASSED IN AN INVALID FORMAT", KindVersionConflict},
		{http.StatusConflict, "conflict", KindConflict},
		{http.StatusBadRequest, "name is required", KindInvalidInput},
		{http.StatusUnauthorized, "", KindUnauthorized},
		{http.StatusForbidden, "", KindForbidden},
		{http.StatusNotFound, "", KindNotFound},
		{http.StatusTooManyRequests, "", KindRateLimit},
		{http.StatusServiceUnavailable, "", KindServer},
		{http.StatusTeapot, "", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d %s", tt.status, tt.message), func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.status, tt.message))
		})
	}
}

func TestErrorMatching(t *testing.T) {
	notFound := fmt.Errorf("wrapped: %w", &APIError{Method: "GET", Endpoint: "schemas/x", StatusCode: 404, Kind: KindNotFound})
	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.Equal(t, KindNotFound, KindOf(notFound))

	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))

	immutable := &ImmutableVersionError{Family: "Schema", DisplayName: "Orders", Version: "1.0.0", State: StateReleased}
	assert.ErrorIs(t, immutable, ErrImmutableVersion)
	assert.Equal(t, `Schema "Orders" version 1.0.0 is RELEASED`, immutable.Error())

	ambiguous := &AmbiguousMatchError{Family: "event", Name: "E", IDs: []string{"a", "b"}}
	assert.ErrorIs(t, ambiguous, ErrAmbiguousMatch)
	assert.Equal(t, `found 2 event objects named "E": a, b`, ambiguous.Error())

	network := &APIError{Method: "GET", Endpoint: "events", Kind: KindNetwork, Err: errors.New("dial tcp: refused")}
	assert.Equal(t, "event portal GET events failed: dial tcp: refused", network.Error())

	bare := &APIError{Method: "GET", Endpoint: "events", StatusCode: 502, Kind: KindServer}
	assert.Contains(t, bare.Error(), "Bad Gateway")
}
