// Package ingest builds the legislation corpus: it fetches law XML from
// the e-Gov Laws API (or reads it from disk), walks the XML tree into
// provision records, and loads them into the law store.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the e-Gov Laws API v1 base URL.
	BaseURL = "https://laws.e-gov.go.jp/api/1"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// DefaultRateLimit keeps fetches well under the e-Gov fair-use
	// guidance (requests per second).
	DefaultRateLimit = 2.0
)

// Client is a rate-limited HTTP client for the e-Gov Laws API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit overrides the requests-per-second cap.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates an e-Gov Laws API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LawData fetches the full XML of one law by its e-Gov law ID or law
// number (the API accepts both).
func (c *Client) LawData(ctx context.Context, lawID string) ([]byte, error) {
	if lawID == "" {
		return nil, fmt.Errorf("ingest: law id is required")
	}
	return c.get(ctx, c.baseURL+"/lawdata/"+lawID)
}

// LawList fetches the law name list for a category (1 = all laws,
// 2 = constitution and acts, 3 = cabinet orders, 4 = ministerial
// ordinances).
func (c *Client) LawList(ctx context.Context, category string) ([]byte, error) {
	if category == "" {
		category = "1"
	}
	return c.get(ctx, c.baseURL+"/lawlists/"+category)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("ingest: rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ingest: build request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ingest: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ingest: fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ingest: read response: %w", err)
	}
	return body, nil
}
