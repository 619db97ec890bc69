package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// Defaults applied when no option overrides them
const (
	DefaultUserAgent = "create-rss-feed/1.0 (+https://github.com/clemthi/create-rss-feed)"
	DefaultTimeout   = 30 * time.Second
)

// Client wraps an http.Client with the request policy shared by every fetch of
// a run: a stable User-Agent, a per-request timeout and optional pacing
type Client struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Client
type Option func(*Client)

// WithUserAgent overrides the User-Agent header. An empty value keeps the default
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout overrides the per-request timeout. Non-positive values keep the default
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// WithRequestsPerSecond paces outgoing requests with a token bucket so a run
// does not hammer the scraped site. Zero or negative disables pacing
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a new HTTP client for scraping
func NewClient(opts ...Option) *Client {
	c := &Client{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches the page at url and returns its body decoded to UTF-8. The
// charset declared in the Content-Type header or in the document itself is
// honored, so pages served as ISO-8859-1 or Windows-1252 come back as valid
// UTF-8 strings
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("failed to wait for request slot: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to detect charset: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
