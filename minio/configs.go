package minio

import "time"

const (
	// DefaultMaxObjectSize bounds Get. Schema documents are small; anything
	// above 4 MiB is almost certainly the wrong key.
	DefaultMaxObjectSize int64 = 4 * 1024 * 1024

	// DefaultConnectTimeout bounds the ListBuckets probe run by NewClient.
	DefaultConnectTimeout = 10 * time.Second
)

// Config defines the configuration for the MinIO client.
type Config struct {
	// Connection contains the server address and credentials.
	Connection ConnectionConfig `yaml:"connection"`

	// MaxObjectSize is the largest object Get will read into memory.
	// Zero means DefaultMaxObjectSize.
	MaxObjectSize int64 `yaml:"max_object_size"`

	// ConnectTimeout bounds the connectivity check performed by NewClient.
	// Zero means DefaultConnectTimeout.
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// ConnectionConfig contains MinIO server connection details.
type ConnectionConfig struct {
	// Endpoint is the server address without scheme, e.g. "minio.example.com:9000".
	Endpoint string `yaml:"endpoint" envconfig:"MINIO_ENDPOINT"`

	// AccessKeyID is the access key (similar to a username).
	AccessKeyID string `yaml:"access_key_id" envconfig:"MINIO_ACCESS_KEY_ID"`

	// SecretAccessKey is the secret key (similar to a password).
	SecretAccessKey string `yaml:"secret_access_key" envconfig:"MINIO_SECRET_ACCESS_KEY"`

	// UseSSL selects HTTPS (true) or HTTP (false).
	UseSSL bool `yaml:"use_ssl" envconfig:"MINIO_USE_SSL"`

	// Region is the S3 region, e.g. "us-east-1".
	Region string `yaml:"region" envconfig:"MINIO_REGION"`
}

func (c Config) maxObjectSize() int64 {
	if c.MaxObjectSize > 0 {
		return c.MaxObjectSize
	}
	return DefaultMaxObjectSize
}

func (c Config) connectTimeout() time.Duration {
	if c.ConnectTimeout > 0 {
		return c.ConnectTimeout
	}
	return DefaultConnectTimeout
}
