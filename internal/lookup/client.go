// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

/*
Package lookup asks the Star Wars API (SWAPI) how many films a planet
appeared in.

A lookup is a single GET of <base>?search=<name>. The count is the length of
the films list of the first search result; an empty result list counts as
zero. The client never retries. Each call is bounded by the configured
timeout, paced by a token-bucket limiter and guarded by a circuit breaker so
a failing upstream is not hammered by every create request.

Callers are expected to treat any returned error as zero appearances.
*/
package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/planetary/internal/config"
	"github.com/tomtom215/planetary/internal/metrics"
)

const (
	// maxErrorBodySize limits the response body read for error reporting
	maxErrorBodySize = 64 * 1024

	// maxResponseSize limits the search response body that is decoded
	maxResponseSize = 4 * 1024 * 1024

	userAgent = "planetary/1.0"
)

// searchResponse is the subset of a SWAPI planet search that is used.
// Films are kept raw since only their number matters.
type searchResponse struct {
	Count   int `json:"count"`
	Results []struct {
		Name  string            `json:"name"`
		Films []json.RawMessage `json:"films"`
	} `json:"results"`
}

// Client is a SWAPI planet search client. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	breaker *circuitBreaker
	timeout time.Duration
}

// NewClient creates a lookup client from cfg. The base URL must already be
// validated by the config package.
func NewClient(cfg *config.LookupConfig) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse lookup base URL: %w", err)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
		breaker: newCircuitBreaker("swapi", cfg),
		timeout: cfg.Timeout,
	}, nil
}

// Appearances returns the number of films the first planet matching name
// appears in. A search with no results returns 0 and a nil error.
func (c *Client) Appearances(ctx context.Context, name string) (int, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			metrics.RecordLookup(metrics.LookupRejected, time.Since(start))
			return 0, fmt.Errorf("lookup rate limit: %w", err)
		}
	}

	n, err := c.breaker.execute(func() (int, error) {
		return c.search(ctx, name)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordLookup(metrics.LookupRejected, time.Since(start))
	case err != nil:
		metrics.RecordLookup(metrics.LookupFailure, time.Since(start))
	case n == 0:
		metrics.RecordLookup(metrics.LookupEmpty, time.Since(start))
	default:
		metrics.RecordLookup(metrics.LookupSuccess, time.Since(start))
	}

	return n, err
}

// search performs one search request.
func (c *Client) search(ctx context.Context, name string) (int, error) {
	u := *c.baseURL
	u.RawQuery = url.Values{"search": []string{name}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("lookup returned status %d: %s", resp.StatusCode, readBodyForError(resp.Body))
	}

	var body searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	if len(body.Results) == 0 {
		return 0, nil
	}
	return len(body.Results[0].Films), nil
}

// readBodyForError reads at most maxErrorBodySize bytes of r for an error message.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
