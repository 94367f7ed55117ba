package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const maxErrorBody = 4 << 10

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
}

// NewHTTPClient builds a client for baseURL (e.g. "https://bell.example.com").
// tokens supplies the bearer token for authenticated calls.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q must be absolute", baseURL)
	}

	return &HTTPClient{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: http.DefaultTransport, tokens: tokens},
		},
	}, nil
}

// do sends one JSON request and decodes the JSON response into out (if
// non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return NewStatusError(resp.StatusCode, string(bytes.TrimSpace(b)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrServer, err)
	}
	return nil
}

// Ping reports whether the backend answers HTTP at all. Any response,
// whatever its status, counts as reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	resp.Body.Close()
	return nil
}
