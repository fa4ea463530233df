package minio

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Storage errors returned by this package instead of raw MinIO responses.
var (
	// ErrMissingEndpoint is returned by NewClient when Config.Connection.Endpoint is empty.
	ErrMissingEndpoint = errors.New("minio endpoint cannot be empty")

	// ErrObjectNotFound is returned when an object doesn't exist in the bucket.
	ErrObjectNotFound = errors.New("object not found")

	// ErrBucketNotFound is returned when a bucket doesn't exist.
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrInvalidBucketName is returned when a bucket name is empty or rejected by the server.
	ErrInvalidBucketName = errors.New("invalid bucket name")

	// ErrInvalidObjectName is returned when an object key is empty or rejected by the server.
	ErrInvalidObjectName = errors.New("invalid object name")

	// ErrAccessDenied is returned when access is denied to a bucket or object.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidCredentials is returned when the access key or signature is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrObjectTooLarge is returned when an object exceeds Config.MaxObjectSize.
	ErrObjectTooLarge = errors.New("object too large")

	// ErrConnectionFailed is returned when the server cannot be reached.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrTimeout is returned when an operation exceeds its deadline.
	ErrTimeout = errors.New("operation timeout")

	// ErrServerError is returned for 5xx responses.
	ErrServerError = errors.New("server error")
)

// TranslateError converts MinIO-specific errors into the errors declared above.
// Errors it does not recognise are returned unchanged, so callers can always
// wrap the result with %w.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		if translated := translateMinIOError(minioErr); translated != nil {
			return translated
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return ErrTimeout
		}
		return ErrConnectionFailed
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"):
		return ErrConnectionFailed
	case strings.Contains(msg, "timeout"):
		return ErrTimeout
	}
	return err
}

func translateMinIOError(minioErr minio.ErrorResponse) error {
	switch minioErr.Code {
	case "NoSuchBucket":
		return ErrBucketNotFound
	case "NoSuchKey", "NoSuchVersion":
		return ErrObjectNotFound
	case "InvalidBucketName":
		return ErrInvalidBucketName
	case "InvalidObjectName", "XMinioInvalidObjectName":
		return ErrInvalidObjectName
	case "AccessDenied":
		return ErrAccessDenied
	case "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return ErrInvalidCredentials
	case "EntityTooLarge":
		return ErrObjectTooLarge
	}

	switch {
	case minioErr.StatusCode == 404:
		return ErrObjectNotFound
	case minioErr.StatusCode == 403:
		return ErrAccessDenied
	case minioErr.StatusCode >= 500:
		return ErrServerError
	}
	return nil
}
