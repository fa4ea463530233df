package eventportal

import (
	"context"
	"errors"
	"time"

	"github.com/aalemi-dev/eventportal/observability"
	"github.com/aalemi-dev/eventportal/tracer"
)

// component is the observability component name of this package.
const component = "eventportal"

// operation describes one public call while it runs. The call may add
// Metadata, e.g. the reconciliation outcome, before it returns.
type operation struct {
	Name        string
	Resource    string
	SubResource string
	Metadata    map[string]interface{}
}

// run executes fn as the named operation: inside a span when a tracer is
// configured, reported to the observer when it completes.
func (c *Client) run(ctx context.Context, op *operation, fn func(ctx context.Context) error) error {
	start := time.Now()
	if op.Metadata == nil {
		op.Metadata = map[string]interface{}{}
	}

	var span tracer.Span
	if c.tracer != nil {
		ctx, span = c.tracer.StartSpan(ctx, component+"."+op.Name)
		defer span.End()
	}

	err := fn(ctx)

	if span != nil {
		annotateSpan(span, op, err)
	}
	c.observeOperation(op, time.Since(start), err)
	return err
}

func annotateSpan(span tracer.Span, op *operation, err error) {
	attrs := map[string]interface{}{
		"eventportal.resource": op.Resource,
	}
	if op.SubResource != "" {
		attrs["eventportal.sub_resource"] = op.SubResource
	}
	if outcome, ok := op.Metadata["outcome"]; ok {
		attrs["eventportal.outcome"] = outcome
	}
	if err != nil {
		attrs["eventportal.error_kind"] = string(KindOf(err))
	}
	span.SetAttributes(attrs)
	span.RecordError(err)
}

// observeOperation notifies the observer about an operation if one is configured.
//
// Notes:
//   - resource: the family ("applicationDomain", "schema", "event", "application")
//   - subResource: the object name, version string or id the call addressed
func (c *Client) observeOperation(op *operation, duration time.Duration, err error) {
	if c == nil || c.observer == nil {
		return
	}

	metadata := op.Metadata
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		metadata["error_kind"] = string(apiErr.Kind)
		if apiErr.StatusCode != 0 {
			metadata["status_code"] = apiErr.StatusCode
		}
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   component,
		Operation:   op.Name,
		Resource:    op.Resource,
		SubResource: op.SubResource,
		Duration:    duration,
		Error:       err,
		Metadata:    metadata,
	})
}
