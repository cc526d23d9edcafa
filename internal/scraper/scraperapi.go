package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lvnb04/cloudtrack/internal/metrics"
	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

const defaultEndpoint = "https://api.scraperapi.com"

// APIClient implements Provider using a scraping proxy API. The API key and
// the target URL travel as query parameters; the response body is the raw
// product page HTML.
type APIClient struct {
	apiKey      string
	endpoint    string
	client      *http.Client
	rateLimiter *RateLimiter
}

// APIOption configures the APIClient.
type APIOption func(*APIClient)

// WithEndpoint overrides the default scraping API endpoint.
func WithEndpoint(u string) APIOption {
	return func(c *APIClient) {
		c.endpoint = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) APIOption {
	return func(c *APIClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// scrape limits. When set, every Fetch() call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) APIOption {
	return func(c *APIClient) {
		c.rateLimiter = r
	}
}

// NewAPIClient creates a new scraping API client.
func NewAPIClient(apiKey string, opts ...APIOption) *APIClient {
	c := &APIClient{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 25 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch implements Provider.Fetch by proxying the product page through the
// scraping API and parsing the returned HTML.
func (c *APIClient) Fetch(ctx context.Context, productURL string) (*domain.Snapshot, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.ScrapeDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.ScrapeCallsTotal.Inc()
		metrics.ScrapeDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("url", productURL)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.endpoint+"?"+q.Encode(),
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ScrapeFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ScrapeFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: scraping API returned %d", ErrFetchFailed, resp.StatusCode)
	}

	snap, err := parseSnapshot(resp.Body)
	if err != nil {
		metrics.ScrapeFailuresTotal.Inc()
		return nil, err
	}
	return snap, nil
}
