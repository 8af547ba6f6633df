// Package nhl fetches schedule, standings, team and player statistics
// from the public NHL APIs. It is the system's stat adapter: every
// fetcher returns well-formed records or an error, and contains no
// prediction logic.
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/puckcast/internal/config"
	"github.com/yourusername/puckcast/internal/metrics"
)

// Client is a typed client for the NHL web, stats and search APIs.
type Client struct {
	httpClient    *RateLimitedHTTPClient
	webBaseURL    string
	statsBaseURL  string
	searchBaseURL string
	apiKey        string
	// club season schedules are fetched once per team per run
	scheduleCache *gocache.Cache
	log           *logrus.Logger
}

// NewClient creates an NHL API client from configuration.
func NewClient(cfg config.NHLConfig, log *logrus.Logger) *Client {
	httpCfg := DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.MaxRetries
	httpCfg.RateLimit = cfg.RateLimitPerSecond

	return &Client{
		httpClient:    NewRateLimitedHTTPClient(httpCfg, log),
		webBaseURL:    cfg.WebBaseURL,
		statsBaseURL:  cfg.StatsBaseURL,
		searchBaseURL: cfg.SearchBaseURL,
		apiKey:        cfg.APIKey,
		scheduleCache: gocache.New(30*time.Minute, 10*time.Minute),
		log:           log,
	}
}

// Close releases the underlying HTTP resources.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// getJSON fetches a URL and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, url string, out interface{}) (err error) {
	defer func() { metrics.RecordUpstreamFetch(endpoint, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewAPIError(endpoint, ErrCodeNetworkError, "failed to create request", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "puckcast/1.0")
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return NewAPIError(endpoint, ErrCodeNetworkError, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return NewAPIError(endpoint, ErrCodeNotFound, "resource not found", ErrNotFound)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewAPIError(endpoint, ErrCodeRateLimitExceeded, "rate limit exceeded", ErrRateLimitExceeded)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return NewAPIError(endpoint, ErrCodeServerError, fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewAPIError(endpoint, ErrCodeInvalidData, "failed to parse response", err)
	}
	return nil
}

// CurrentSeasonID returns the NHL season identifier for the given time,
// formatted as startYear followed by endYear (e.g. 20252026). The
// season rolls over in July.
func CurrentSeasonID(now time.Time) int64 {
	start := now.Year()
	if int(now.Month()) < 7 {
		start--
	}
	return int64(start)*10000 + int64(start+1)
}
