package schema_registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/aalemi-dev/eventportal/observability"
)

// Client is the default implementation of Registry
// that communicates with Confluent Schema Registry over HTTP.
type Client struct {
	url        string
	httpClient *http.Client

	// Cache for schemas by ID; ids are immutable in the registry
	schemaCache      map[int]string
	schemaCacheMutex sync.RWMutex

	// fetches collapses concurrent lookups of one id into a single request
	fetches singleflight.Group

	// Authentication
	username string
	password string

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// logger provides optional context-aware logging capabilities
	logger Logger
}

// NewClient creates a new schema registry client
// Returns the concrete *Client type.
func NewClient(config Config) (*Client, error) {
	if config.URL == "" {
		return nil, ErrMissingURL
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		url: strings.TrimRight(config.URL, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		schemaCache: make(map[int]string),
		username:    config.Username,
		password:    config.Password,
	}, nil
}

// GetSchemaByID retrieves a schema from the registry by its ID
func (c *Client) GetSchemaByID(ctx context.Context, id int) (string, error) {
	start := time.Now()
	subResource := strconv.Itoa(id)

	c.schemaCacheMutex.RLock()
	if schema, ok := c.schemaCache[id]; ok {
		c.schemaCacheMutex.RUnlock()
		c.observeOperation("get_schema_by_id", "registry", subResource, time.Since(start), nil, map[string]interface{}{
			"cache_hit": true,
		})
		return schema, nil
	}
	c.schemaCacheMutex.RUnlock()

	v, err, shared := c.fetches.Do(subResource, func() (interface{}, error) {
		var result struct {
			Schema string `json:"schema"`
		}
		if err := c.get(ctx, fmt.Sprintf("/schemas/ids/%d", id), &result); err != nil {
			return "", err
		}

		c.schemaCacheMutex.Lock()
		c.schemaCache[id] = result.Schema
		c.schemaCacheMutex.Unlock()
		return result.Schema, nil
	})
	metadata := map[string]interface{}{
		"cache_hit": false,
		"shared":    shared,
	}
	if err != nil {
		c.observeOperation("get_schema_by_id", "registry", subResource, time.Since(start), err, metadata)
		c.logError(ctx, "Failed to fetch schema by id", err, map[string]interface{}{"schema_id": id})
		return "", err
	}

	c.observeOperation("get_schema_by_id", "registry", subResource, time.Since(start), nil, metadata)
	return v.(string), nil
}

// GetLatestSchema retrieves the latest version of a schema for a subject
func (c *Client) GetLatestSchema(ctx context.Context, subject string) (*Metadata, error) {
	return c.getSubjectVersion(ctx, "get_latest_schema", subject, "latest")
}

// GetSchemaVersion retrieves a specific version of a schema for a subject
func (c *Client) GetSchemaVersion(ctx context.Context, subject string, version int) (*Metadata, error) {
	return c.getSubjectVersion(ctx, "get_schema_version", subject, strconv.Itoa(version))
}

func (c *Client) getSubjectVersion(ctx context.Context, operation, subject, version string) (*Metadata, error) {
	start := time.Now()

	var metadata Metadata
	path := fmt.Sprintf("/subjects/%s/versions/%s", url.PathEscape(subject), version)
	if err := c.get(ctx, path, &metadata); err != nil {
		c.observeOperation(operation, subject, version, time.Since(start), err, nil)
		c.logError(ctx, "Failed to fetch schema", err, map[string]interface{}{"subject": subject, "version": version})
		return nil, err
	}
	metadata.Subject = subject

	c.schemaCacheMutex.Lock()
	c.schemaCache[metadata.ID] = metadata.Schema
	c.schemaCacheMutex.Unlock()

	c.observeOperation(operation, subject, version, time.Since(start), nil, map[string]interface{}{
		"schema_id":   metadata.ID,
		"version":     metadata.Version,
		"schema_type": metadata.Type,
	})
	c.logInfo(ctx, "Fetched schema", map[string]interface{}{
		"subject":   subject,
		"version":   metadata.Version,
		"schema_id": metadata.ID,
	})
	return &metadata, nil
}

// get performs a GET against the registry and decodes the JSON answer into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	req.Header.Set("Accept", "application/vnd.schemaregistry.v1+json")

	resp, err := c.httpClient.Do(req) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to fetch schema: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		var envelope struct {
			ErrorCode int    `json:"error_code"`
			Message   string `json:"message"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
			statusErr.ErrorCode = envelope.ErrorCode
			statusErr.Message = envelope.Message
		}
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// WithObserver sets the observer for this client and returns the client for method chaining.
// The observer receives events about schema registry operations.
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for method chaining.
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// logInfo logs an informational message if a logger is configured
func (c *Client) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.InfoWithContext(ctx, msg, nil, fields)
	}
}

// logError logs an error message if a logger is configured
func (c *Client) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.ErrorWithContext(ctx, msg, err, fields)
	}
}
