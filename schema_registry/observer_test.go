package schema_registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aalemi-dev/eventportal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// TestObserver is a mock observer for testing.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) GetOperations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

func TestObserveOperationNilObserverNoPanic(t *testing.T) {
	c := &Client{}
	c.observeOperation("get_schema_by_id", "registry", "123", 10*time.Millisecond, nil, nil)
}

func TestObserverReceivesLookups(t *testing.T) {
	var hits int32
	server := newRegistryServer(t, &hits)

	obs := &TestObserver{}
	client, err := NewClient(Config{URL: server.URL})
	require.NoError(t, err)
	client.WithObserver(obs)

	_, err = client.GetLatestSchema(context.Background(), "orders-value")
	require.NoError(t, err)
	_, err = client.GetSchemaByID(context.Background(), 7)
	require.NoError(t, err)

	ops := obs.GetOperations()
	require.Len(t, ops, 2)

	assert.Equal(t, "schema_registry", ops[0].Component)
	assert.Equal(t, "get_latest_schema", ops[0].Operation)
	assert.Equal(t, "orders-value", ops[0].Resource)
	assert.Equal(t, "latest", ops[0].SubResource)
	assert.Equal(t, 7, ops[0].Metadata["schema_id"])

	assert.Equal(t, "get_schema_by_id", ops[1].Operation)
	assert.Equal(t, "registry", ops[1].Resource)
	assert.Equal(t, true, ops[1].Metadata["cache_hit"])
}

func TestFXModule(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	var registry Registry
	obs := &TestObserver{}

	app := fxtest.New(t,
		fx.Supply(Config{URL: server.URL}),
		fx.Provide(func() observability.Observer { return obs }),
		FXModule,
		fx.Populate(&registry),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, registry)
	_, err := registry.GetSchemaByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, obs.GetOperations(), 1, "observer injected by fx")
}
