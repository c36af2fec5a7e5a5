// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch is the HTTP transport used for every remote interaction
// with NCBI. It owns pacing and 429 backoff; callers hand it a URL and
// get body bytes back.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultUserAgent = "citegraph/0.1"

// Client is a pacing-aware HTTP client for the NCBI endpoints.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxRetries int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithDelay spaces consecutive requests at least d apart. A zero or
// negative d disables pacing.
func WithDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		} else {
			c.limiter = nil
		}
	}
}

// WithMaxRetries sets the retry budget for HTTP 429 responses.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// New creates a transport client. By default there is no pacing and a
// 30 second request timeout.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches url and returns the response body. It waits on the pacing
// limiter first, retries 429 responses with exponential backoff, and
// returns an error for any other non-2xx status. Network errors are
// wrapped with %w so callers can unwrap the original cause.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := doWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, nil
}
