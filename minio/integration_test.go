package minio

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/eventportal/observability"
)

type minioContainerInstance struct {
	testcontainers.Container
	Host   string
	Port   string
	Config Config
}

func setupMinioContainer(ctx context.Context) (_ *minioContainerInstance, err error) {
	const (
		rootUser     = "minioadmin"
		rootPassword = "minioadmin"
	)

	// testcontainers-go may panic when Docker is not available.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker not available: %v", r)
		}
	}()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd: []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/ready").
			WithPort("9000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	mappedPort, err := container.MappedPort(ctx, "9000/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &minioContainerInstance{
		Container: container,
		Host:      host,
		Port:      mappedPort.Port(),
		Config: Config{
			Connection: ConnectionConfig{
				Endpoint:        host + ":" + mappedPort.Port(),
				AccessKeyID:     rootUser,
				SecretAccessKey: rootPassword,
				Region:          "us-east-1",
			},
			MaxObjectSize: 1024,
		},
	}, nil
}

func TestMinioWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupMinioContainer(ctx)
	if err != nil {
		t.Skipf("Skipping MinIO integration test: %v", err)
	}
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	obs := &TestObserver{}
	var client Client
	app := fxtest.New(t,
		fx.Supply(containerInstance.Config),
		fx.Provide(func() observability.Observer { return obs }),
		FXModule,
		fx.Populate(&client),
	)
	app.RequireStart()
	defer app.RequireStop()

	const bucket = "schemas"
	doc := []byte(`{"type":"object","properties":{"orderId":{"type":"string"}}}`)
	big := bytes.Repeat([]byte("x"), 2048)
	seed(ctx, t, containerInstance.Config, bucket, map[string][]byte{
		"orders/order-created.json": doc,
		"big.json":                  big,
	})

	t.Run("get", func(t *testing.T) {
		got, err := client.Get(ctx, bucket, "orders/order-created.json")
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("missing object", func(t *testing.T) {
		_, err := client.Get(ctx, bucket, "orders/missing.json")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("missing bucket", func(t *testing.T) {
		_, err := client.Get(ctx, "no-such-bucket", "order.json")
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("object above the size limit", func(t *testing.T) {
		_, err := client.Get(ctx, bucket, "big.json")
		assert.ErrorIs(t, err, ErrObjectTooLarge)
	})

	assert.NotEmpty(t, obs.GetOperations())
}

// seed uploads objects with a plain minio-go client, the way schemas get
// published outside this package.
func seed(ctx context.Context, t *testing.T, cfg Config, bucket string, objects map[string][]byte) {
	t.Helper()

	raw, err := connectToMinio(cfg)
	require.NoError(t, err)
	require.NoError(t, raw.MakeBucket(ctx, bucket, miniogo.MakeBucketOptions{Region: cfg.Connection.Region}))

	for key, data := range objects {
		_, err := raw.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)),
			miniogo.PutObjectOptions{ContentType: "application/json"})
		require.NoError(t, err)
	}
}
