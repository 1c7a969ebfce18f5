package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for a PostgREST-style tabular backend. Every
// table operation goes through Do: the resource string carries the table
// name and the filter/order query parameters.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new backend client
func NewClient(baseURL, anonKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// RequestError represents a non-2xx response from the backend
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("backend request failed: HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("backend request failed: HTTP %d", e.Status)
}

// Do performs a request against the given resource. The resource is a table
// name plus optional query string (e.g. "pesanan?status=eq.pending&select=*").
// Fixed credential headers are attached to every request; extra headers merge
// in without displacing them. On a 2xx response the body, if any, is decoded
// into result; on anything else a *RequestError carrying the status is
// returned and the body is never decoded.
func (c *Client) Do(ctx context.Context, method, resource string, body, result any, headers ...http.Header) error {
	url := c.baseURL + "/rest/v1/" + resource

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	for _, h := range headers {
		for key, values := range h {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("backend request",
		slog.String("method", method),
		slog.String("resource", resource),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Status: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a collection read
func (c *Client) Get(ctx context.Context, resource string, result any, headers ...http.Header) error {
	return c.Do(ctx, http.MethodGet, resource, nil, result, headers...)
}

// Post inserts a record
func (c *Client) Post(ctx context.Context, resource string, body, result any, headers ...http.Header) error {
	return c.Do(ctx, http.MethodPost, resource, body, result, headers...)
}

// Patch updates the records selected by the resource's filter
func (c *Client) Patch(ctx context.Context, resource string, body, result any, headers ...http.Header) error {
	return c.Do(ctx, http.MethodPatch, resource, body, result, headers...)
}

// Delete removes the records selected by the resource's filter; an
// unfiltered resource deletes the whole table.
func (c *Client) Delete(ctx context.Context, resource string, headers ...http.Header) error {
	return c.Do(ctx, http.MethodDelete, resource, nil, nil, headers...)
}
