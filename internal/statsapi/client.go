// Package statsapi is a thin HTTP client for the public MLB Stats API.
// It performs single GET requests and hands the raw JSON body back to the
// caller; it does not retry, cache, or reshape responses.
package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/statgrove/mlb-mcp/internal/common"
)

// DefaultBaseURL is the public, unauthenticated MLB Stats API endpoint.
const DefaultBaseURL = "https://statsapi.mlb.com/api/v1"

// maxResponseSize caps the response body read to prevent OOM from
// unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

// Client issues GET requests against the MLB Stats API. One Client is shared
// by all concurrent tool dispatches; it is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client for the given base URL with an explicit request
// timeout. An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, logger *common.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs one GET request to baseURL+path with the given query string.
// The request carries the context, so cancelling the enclosing MCP request
// aborts the in-flight upstream call. Returns the raw JSON body on success,
// *StatusError on a non-2xx response, and *DecodeError when a success
// response is not valid JSON.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	c.logger.Debug().Str("method", "GET").Str("path", path).Str("query", query.Encode()).Msg("statsapi request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Warn().Str("method", "GET").Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("statsapi request failed")
		return nil, fmt.Errorf("statsapi request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Int("bytes", len(body)).Msg("statsapi response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: body}
	}

	if !json.Valid(body) {
		return nil, &DecodeError{Path: path, Err: errors.New("body is not valid JSON")}
	}

	return body, nil
}

// Close releases the client's idle connections. Called once at shutdown.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
