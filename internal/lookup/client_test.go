// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/planetary/internal/config"
)

func testConfig(baseURL string) *config.LookupConfig {
	return &config.LookupConfig{
		BaseURL:             baseURL,
		Timeout:             2 * time.Second,
		BreakerMaxRequests:  1,
		BreakerInterval:     time.Minute,
		BreakerTimeout:      time.Minute,
		BreakerMinRequests:  3,
		BreakerFailureRatio: 0.6,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(testConfig(srv.URL + "/api/planets/"))
	require.NoError(t, err)
	return c
}

func TestAppearances_CountsFilmsOfFirstResult(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/planets/", r.URL.Path)
		assert.Equal(t, "Tatooine", r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":2,"results":[
			{"name":"Tatooine","films":["f1","f2","f3","f4","f5"]},
			{"name":"Other","films":["f1"]}
		]}`))
	})

	n, err := c.Appearances(context.Background(), "Tatooine")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestAppearances_EmptyResults(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
	})

	n, err := c.Appearances(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAppearances_SendsRawName(t *testing.T) {
	t.Parallel()

	var got atomic.Value
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	_, err := c.Appearances(context.Background(), "yavin IV & co")
	require.NoError(t, err)
	assert.Equal(t, "yavin IV & co", got.Load())
}

func TestAppearances_MalformedBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	n, err := c.Appearances(context.Background(), "Hoth")
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, err.Error(), "decode")
}

func TestAppearances_ServerError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})

	n, err := c.Appearances(context.Background(), "Hoth")
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestAppearances_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	c, err := NewClient(cfg)
	require.NoError(t, err)

	n, err := c.Appearances(context.Background(), "Dagobah")
	require.Error(t, err)
	assert.Equal(t, 0, n)
}

func TestAppearances_BreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < 3; i++ {
		_, err := c.Appearances(context.Background(), "Endor")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, c.breaker.State())

	_, err := c.Appearances(context.Background(), "Endor")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(3), calls.Load(), "open breaker must not reach the upstream")
}

func TestAppearances_RateLimiterHonorsContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	c, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = c.Appearances(context.Background(), "Naboo")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Appearances(ctx, "Naboo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestReadBodyForError_Truncates(t *testing.T) {
	t.Parallel()

	body := readBodyForError(strings.NewReader(strings.Repeat("x", maxErrorBodySize+10)))
	assert.True(t, strings.HasSuffix(string(body), "(truncated)"))

	short := readBodyForError(strings.NewReader("short"))
	assert.Equal(t, "short", string(short))
}
