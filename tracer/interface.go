package tracer

import (
	"context"
)

// Tracer creates spans and moves trace context across process boundaries.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	// StartSpan creates a span named name, child of any span already in ctx.
	// Always call span.End() when the operation completes.
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// GetCarrier returns the trace context of ctx as header key/values, ready
	// to be set on an outgoing HTTP request.
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext continues a trace received as header key/values.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Span is a unit of traced work.
type Span interface {
	// End completes the span.
	End()

	// SetAttributes adds attributes to the span. Strings, ints, int64s,
	// float64s and bools keep their type; anything else is stored via fmt.Sprint.
	SetAttributes(attrs map[string]interface{})

	// RecordError records err on the span and marks its status as Error.
	RecordError(err error)
}
