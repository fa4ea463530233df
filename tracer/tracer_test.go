package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func newTestClient(t *testing.T) *TracerClient {
	t.Helper()
	client, err := NewClient(Config{ServiceName: "test", AppEnv: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Shutdown(context.Background()) })
	return client
}

func TestNewClientWithExport(t *testing.T) {
	// The OTLP HTTP exporter connects lazily, so construction succeeds without a collector.
	client, err := NewClient(Config{
		ServiceName:  "test",
		AppEnv:       "test",
		EnableExport: true,
		Endpoint:     "127.0.0.1:4318",
		Insecure:     true,
	})
	require.NoError(t, err)
	require.NotNil(t, client)

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	_ = client.Shutdown(ctx)
}

func TestStartSpanChildInheritsParent(t *testing.T) {
	client := newTestClient(t)

	parentCtx, parent := client.StartSpan(context.Background(), "eventportal.provision")
	defer parent.End()
	childCtx, child := client.StartSpan(parentCtx, "eventportal.create_object")
	defer child.End()

	assert.True(t, trace.SpanFromContext(childCtx).IsRecording())
	assert.Equal(t,
		trace.SpanFromContext(parentCtx).SpanContext().TraceID(),
		trace.SpanFromContext(childCtx).SpanContext().TraceID(),
	)
}

func TestSpanAttributesAndErrors(t *testing.T) {
	client := newTestClient(t)
	_, span := client.StartSpan(context.Background(), "attrs")
	defer span.End()

	assert.NotPanics(t, func() {
		span.SetAttributes(nil)
		span.SetAttributes(map[string]interface{}{
			"family":    "schema",
			"attempt":   1,
			"size":      int64(10),
			"ratio":     0.5,
			"overwrite": true,
			"levels":    []string{"orders", "{region}"},
		})
		span.RecordError(nil)
		span.RecordError(errors.New("conflict"))
	})
}

func TestCarrierRoundTrip(t *testing.T) {
	client := newTestClient(t)

	ctx, span := client.StartSpan(context.Background(), "outbound")
	defer span.End()

	carrier := client.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")

	restored := client.SetCarrierOnContext(context.Background(), carrier)
	assert.Equal(t,
		trace.SpanFromContext(ctx).SpanContext().TraceID(),
		trace.SpanContextFromContext(restored).TraceID(),
	)
}

func TestCarrierEmptyWithoutSpan(t *testing.T) {
	client := newTestClient(t)
	assert.Empty(t, client.GetCarrier(context.Background()))
}

func TestFXModule(t *testing.T) {
	var (
		client *TracerClient
		tr     Tracer
	)
	app := fxtest.New(t,
		fx.Supply(Config{ServiceName: "fx-test", AppEnv: "test"}),
		FXModule,
		fx.Populate(&client, &tr),
	)
	app.RequireStart()
	app.RequireStop()

	assert.NotNil(t, client)
	assert.NotNil(t, tr)
}
