// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

var (
	// ErrDisabled is returned by Lookup when no API key is configured.
	ErrDisabled = errors.New("poster lookups disabled")

	// ErrNotFound means OMDb has no poster for the title.
	ErrNotFound = errors.New("poster not found")
)

// maxErrorBodySize limits how much of an error response is read.
const maxErrorBodySize = 4 * 1024

// omdbResponse holds the fields of an OMDb title lookup we use.
type omdbResponse struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Poster   string `json:"Poster"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Client looks up poster URLs on OMDb by title and release year.
//
// Lookups go through a TTL cache, then a token bucket limiting outbound
// requests, then a circuit breaker. Misses are cached as empty strings so
// unknown titles are not requested again until they expire.
//
// Thread Safety: Safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[string]
	cache      *cache.Cache[string]
}

// NewClient creates an OMDb client from cfg. A client built without an API
// key answers every lookup with ErrDisabled.
func NewClient(cfg *config.PosterConfig) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + "/",
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1)),
		breaker: newBreaker(max(cfg.BreakerFailures, 1), cfg.BreakerTimeout),
		cache:   cache.New[string]("poster", cfg.CacheTTL),
	}
	if !cfg.Enabled() {
		logging.Info().Msg("OMDb API key not set, poster lookups disabled")
	}
	return c
}

// Enabled reports whether lookups reach OMDb.
func (c *Client) Enabled() bool { return c.apiKey != "" }

// Close stops the cache sweeper.
func (c *Client) Close() { c.cache.Close() }

// Lookup returns the poster URL of the movie. A movie OMDb does not know,
// or knows without a poster, yields "" and a nil error.
func (c *Client) Lookup(ctx context.Context, title string, year int) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	key := cacheKey(title, year)
	if poster, ok := c.cache.Get(key); ok {
		metrics.RecordPosterLookup("cache_hit", 0)
		return poster, nil
	}

	start := time.Now()
	poster, err := c.breaker.Execute(func() (string, error) {
		return c.fetch(ctx, title, year)
	})
	recordBreakerResult(err)

	switch {
	case err == nil:
		metrics.RecordPosterLookup("found", time.Since(start))
		c.cache.Set(key, poster)
		return poster, nil
	case errors.Is(err, ErrNotFound):
		metrics.RecordPosterLookup("not_found", time.Since(start))
		c.cache.Set(key, "")
		return "", nil
	case isRejected(err):
		metrics.RecordPosterLookup("error", 0)
		return "", fmt.Errorf("omdb lookup %q: %w", title, err)
	default:
		metrics.RecordPosterLookup("error", time.Since(start))
		return "", fmt.Errorf("omdb lookup %q: %w", title, err)
	}
}

// fetch performs one rate-limited OMDb request.
func (c *Client) fetch(ctx context.Context, title string, year int) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("t", title)
	if year > 0 {
		params.Set("y", strconv.Itoa(year))
	}
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Failed to close OMDb response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if !strings.EqualFold(result.Response, "True") {
		if strings.Contains(strings.ToLower(result.Error), "not found") {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("omdb error: %s", result.Error)
	}
	if result.Poster == "" || result.Poster == "N/A" {
		return "", ErrNotFound
	}
	return result.Poster, nil
}

func cacheKey(title string, year int) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strconv.Itoa(year)
}
