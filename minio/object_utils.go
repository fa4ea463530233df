package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// Get reads an object into memory. Objects larger than Config.MaxObjectSize
// are rejected with ErrObjectTooLarge before any data is read.
//
// Example:
//
//	doc, err := client.Get(ctx, "schemas", "orders/order-created.json")
//	if errors.Is(err, minio.ErrObjectNotFound) {
//	    // wrong key
//	}
func (m *MinioClient) Get(ctx context.Context, bucket, objectKey string, opts ...GetOption) ([]byte, error) {
	start := time.Now()
	data, err := m.get(ctx, bucket, objectKey, opts...)
	m.observeOperation("get", bucket, objectKey, time.Since(start), err, int64(len(data)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", bucket, objectKey, err)
	}
	return data, nil
}

func (m *MinioClient) get(ctx context.Context, bucket, objectKey string, opts ...GetOption) ([]byte, error) {
	if err := validateLocation(bucket, objectKey); err != nil {
		return nil, err
	}

	options := &GetOptions{}
	for _, opt := range opts {
		opt(options)
	}

	reader, err := m.client.GetObject(ctx, bucket, objectKey, minio.GetObjectOptions{VersionID: options.VersionID})
	if err != nil {
		return nil, TranslateError(err)
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			m.logError(ctx, "Failed to close object reader", cerr, map[string]interface{}{
				"bucket": bucket,
				"key":    objectKey,
			})
		}
	}()

	// GetObject is lazy; Stat is the first call that reaches the server.
	info, err := reader.Stat()
	if err != nil {
		return nil, TranslateError(err)
	}
	if info.Size > m.cfg.maxObjectSize() {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrObjectTooLarge, info.Size, m.cfg.maxObjectSize())
	}

	data := make([]byte, info.Size)
	if _, err := io.ReadFull(reader, data); err != nil {
		return nil, TranslateError(err)
	}
	return data, nil
}

func validateLocation(bucket, objectKey string) error {
	if bucket == "" {
		return ErrInvalidBucketName
	}
	if objectKey == "" {
		return ErrInvalidObjectName
	}
	return nil
}
