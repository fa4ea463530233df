package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aalemi-dev/eventportal/observability"
)

// MinioClient is a small MinIO/S3 client used by provisioning to read
// schema documents stored as objects. It is safe for concurrent use.
type MinioClient struct {
	cfg      Config
	client   *minio.Client
	observer observability.Observer
	logger   Logger
}

// NewClient connects to the MinIO server described by config and verifies
// the credentials by listing buckets.
//
// Example:
//
//	client, err := minio.NewClient(minio.Config{
//	    Connection: minio.ConnectionConfig{
//	        Endpoint:        "localhost:9000",
//	        AccessKeyID:     "minioadmin",
//	        SecretAccessKey: "minioadmin",
//	    },
//	})
//	if err != nil {
//	    return fmt.Errorf("failed to initialize MinIO client: %w", err)
//	}
//	doc, err := client.Get(ctx, "schemas", "orders/order-created.json")
func NewClient(config Config) (*MinioClient, error) {
	client, err := connectToMinio(config)
	if err != nil {
		return nil, err
	}

	m := &MinioClient{cfg: config, client: client}

	ctx, cancel := context.WithTimeout(context.Background(), config.connectTimeout())
	defer cancel()
	if err := m.validateConnection(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to minio at %s: %w", config.Connection.Endpoint, err)
	}

	return m, nil
}

func connectToMinio(cfg Config) (*minio.Client, error) {
	if cfg.Connection.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}

	return minio.New(cfg.Connection.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Connection.AccessKeyID, cfg.Connection.SecretAccessKey, ""),
		Secure: cfg.Connection.UseSSL,
		Region: cfg.Connection.Region,
	})
}

// validateConnection lists buckets, which needs valid credentials but no
// particular bucket.
func (m *MinioClient) validateConnection(ctx context.Context) error {
	_, err := m.client.ListBuckets(ctx)
	return TranslateError(err)
}

// WithObserver attaches an observer that is notified after every Get.
func (m *MinioClient) WithObserver(observer observability.Observer) *MinioClient {
	m.observer = observer
	return m
}

// WithLogger attaches a logger for lifecycle messages.
func (m *MinioClient) WithLogger(logger Logger) *MinioClient {
	m.logger = logger
	return m
}

func (m *MinioClient) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if m.logger != nil {
		m.logger.InfoWithContext(ctx, msg, nil, fields)
	}
}

func (m *MinioClient) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if m.logger != nil {
		m.logger.ErrorWithContext(ctx, msg, err, fields)
	}
}
