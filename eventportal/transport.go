package eventportal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aalemi-dev/eventportal/tracer"
	"github.com/google/uuid"
)

// Transport sends one authenticated call to the Event Portal API.
//
// endpoint is relative to the API base URL and may carry a query string.
// body, when non-nil, is encoded as JSON. out, when non-nil, receives the
// decoded response body. Failures are returned as *APIError with a
// classified Kind, or wrap ErrInvalidRequest when method or endpoint is empty.
type Transport interface {
	Send(ctx context.Context, method, endpoint string, body, out any) error
}

// HTTPTransport is the net/http implementation of Transport.
// It is safe for concurrent use; its only state is the immutable credential.
type HTTPTransport struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client

	// tracer, when set, injects the trace context of each call's ctx into
	// the outgoing headers
	tracer tracer.Tracer
}

// NewHTTPTransport creates a transport from cfg. The token falls back to
// the SOLACE_CLOUD_TOKEN environment variable; if neither is set it
// returns ErrMissingToken.
func NewHTTPTransport(cfg Config) (*HTTPTransport, error) {
	cfg = cfg.withDefaults()
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	return &HTTPTransport{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.Token,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// WithTracer enables trace-context propagation on outgoing requests.
func (t *HTTPTransport) WithTracer(tr tracer.Tracer) *HTTPTransport {
	t.tracer = tr
	return t
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, method, endpoint string, body, out any) error {
	if method == "" || endpoint == "" {
		return fmt.Errorf("%w: method and endpoint are required", ErrInvalidRequest)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrInvalidRequest, err)
		}
		reader = bytes.NewReader(payload)
	}

	url := t.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInvalidRequest, err)
	}

	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.tracer != nil {
		for k, v := range t.tracer.GetCarrier(ctx) {
			req.Header.Set(k, v)
		}
	}

	resp, err := t.httpClient.Do(req) //nolint:gosec
	if err != nil {
		return &APIError{Method: method, Endpoint: endpoint, Kind: KindNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Method: method, Endpoint: endpoint, Kind: KindNetwork, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(method, endpoint, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Kind:       KindUnknown,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return nil
}

// newAPIError builds an *APIError from a non-2xx response. Message is the
// envelope's message field or, when the body is not an envelope, the raw body.
func newAPIError(method, endpoint string, statusCode int, body []byte) *APIError {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Message == "" {
		envelope.Message = strings.TrimSpace(string(body))
	}

	return &APIError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Kind:       classify(statusCode, envelope.Message),
		ErrorKey:   envelope.ErrorKey,
		Message:    envelope.Message,
	}
}
