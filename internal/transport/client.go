// Package transport wraps a shared HTTP session used by every node in
// the mirror tree, so connections are pooled across the whole traversal.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Roneo412/httpsync/internal/domain"
)

const defaultUserAgent = "httpsync/1.0"

// StatusError reports a non-success HTTP status
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.Code, e.URL)
}

// Client is the shared HTTP session
type Client struct {
	http      *http.Client
	userAgent string
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero keeps the
// net/http default of no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a Client with connection pooling enabled
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentLength issues a HEAD request and returns the declared content
// length. Returns domain.ErrMissingLength when the response carries no
// Content-Length header.
func (c *Client) ContentLength(ctx context.Context, rawURL string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.ContentLength < 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrMissingLength, rawURL)
	}
	return resp.ContentLength, nil
}

// Fetch issues a GET request and returns the full response body.
// A non-200 status yields a *StatusError and no body.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: rawURL, Code: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}
