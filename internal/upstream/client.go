// Package upstream wraps the inventory backend REST API. Record identifiers
// are opaque strings; non-2xx responses are treated uniformly as failures
// regardless of body content.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Recorder counts backend requests for observability. May be nil.
type Recorder interface {
	RecordUpstream(method, outcome string)
}

// Client issues JSON requests against the backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	recorder   Recorder
}

// NewClient constructs a new client. baseURL points at the API root,
// e.g. http://inventory.internal/api.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, recorder Recorder) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:   logger,
		recorder: recorder,
	}
}

// ResponseError reports a non-2xx backend response.
type ResponseError struct {
	StatusCode int
	Method     string
	Path       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("upstream %s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// Is maps response errors onto the shared sentinels: every response error is
// an upstream failure, and a 404 additionally matches ErrNotFound so detail
// fetches can surface an explicit not-found state.
func (e *ResponseError) Is(target error) bool {
	if target == httpx.ErrUpstream {
		return true
	}
	return target == httpx.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Do sends one request. body, when non-nil, is JSON-encoded; out, when
// non-nil, receives the decoded response body.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(method, "network_error")
		if c.logger != nil {
			c.logger.Error("upstream request failed", slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		}
		return fmt.Errorf("%w: %v", httpx.ErrUpstream, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.record(method, strconv.Itoa(resp.StatusCode))
		if c.logger != nil {
			c.logger.Warn("upstream returned non-2xx",
				slog.String("method", method),
				slog.String("path", path),
				slog.Int("status", resp.StatusCode))
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		return &ResponseError{StatusCode: resp.StatusCode, Method: method, Path: path}
	}

	c.record(method, "ok")
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", httpx.ErrUpstream, err)
	}
	return nil
}

func (c *Client) record(method, outcome string) {
	if c.recorder != nil {
		c.recorder.RecordUpstream(method, outcome)
	}
}

func escapeID(id string) string {
	return url.PathEscape(id)
}
