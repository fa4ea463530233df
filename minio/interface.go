package minio

import (
	"context"
)

// Client is the object storage surface used to source schema documents.
// Provisioning only reads; objects are uploaded by whatever publishes the
// schemas.
//
// This interface is implemented by the concrete *MinioClient type.
type Client interface {
	// Get reads a whole object into memory.
	Get(ctx context.Context, bucket, objectKey string, opts ...GetOption) ([]byte, error)
}

// Logger is the subset of logging the MinIO client needs.
//
// It is satisfied by *logger.LoggerClient.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// GetOption configures a download.
type GetOption func(*GetOptions)

// GetOptions holds the settings collected from GetOption values.
type GetOptions struct {
	VersionID string
}
