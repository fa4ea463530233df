package observability_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aalemi-dev/eventportal/observability"
	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	ops []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx observability.OperationContext) {
	r.ops = append(r.ops, ctx)
}

func TestStatus(t *testing.T) {
	ok := observability.OperationContext{Component: "eventportal", Operation: "create_object"}
	failed := observability.OperationContext{Component: "eventportal", Error: errors.New("boom")}

	assert.Equal(t, "success", ok.Status())
	assert.Equal(t, "error", failed.Status())
}

func TestNoOpObserver(t *testing.T) {
	observer := observability.NewNoOpObserver()
	observer.ObserveOperation(observability.OperationContext{Component: "test"})
}

func TestMulti(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := observability.Multi(a, nil, b)

	obs.ObserveOperation(observability.OperationContext{
		Component:   "eventportal",
		Operation:   "create_version",
		Resource:    "schema",
		SubResource: "1.0.0",
		Duration:    12 * time.Millisecond,
	})

	assert.Len(t, a.ops, 1)
	assert.Len(t, b.ops, 1)
	assert.Equal(t, "1.0.0", b.ops[0].SubResource)
}

func TestMultiCollapses(t *testing.T) {
	a := &recordingObserver{}
	assert.Same(t, a, observability.Multi(nil, a))
	assert.IsType(t, &observability.NoOpObserver{}, observability.Multi())
	assert.IsType(t, &observability.NoOpObserver{}, observability.Multi(nil))
}
