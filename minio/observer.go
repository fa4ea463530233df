package minio

import (
	"time"

	"github.com/aalemi-dev/eventportal/observability"
)

// observeOperation notifies the observer, if any, about a finished Get.
// The bucket is reported as Resource and the object key as SubResource.
func (m *MinioClient) observeOperation(operation, bucket, objectKey string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if m == nil || m.observer == nil {
		return
	}

	m.observer.ObserveOperation(observability.OperationContext{
		Component:   "minio",
		Operation:   operation,
		Resource:    bucket,
		SubResource: objectKey,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
