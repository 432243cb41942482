// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/planetary/internal/config"
	"github.com/tomtom215/planetary/internal/lookup"
	"github.com/tomtom215/planetary/internal/models"
	"github.com/tomtom215/planetary/internal/planets"
	"github.com/tomtom215/planetary/internal/store"
	"github.com/tomtom215/planetary/internal/store/badgerstore"
	"github.com/tomtom215/planetary/internal/testinfra"
)

// testEnv is a full HTTP stack over an in-memory badger store and a mock SWAPI.
type testEnv struct {
	handler http.Handler
	store   *badgerstore.Store
	swapi   *testinfra.MockSWAPIServer
}

func newTestEnv(t *testing.T, mw *ChiMiddleware) *testEnv {
	t.Helper()

	bs, err := badgerstore.Open("", true)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = bs.Close(context.Background()) })

	swapi := testinfra.NewMockSWAPIServer(t)
	swapi.AddPlanet("Tatooine", 5)
	swapi.AddPlanet("Alderaan", 2)
	swapi.AddPlanet("Hoth", 1)

	client, err := lookup.NewClient(&config.LookupConfig{
		BaseURL:             swapi.URL(),
		Timeout:             2 * time.Second,
		BreakerMaxRequests:  1,
		BreakerInterval:     time.Minute,
		BreakerTimeout:      time.Minute,
		BreakerMinRequests:  100,
		BreakerFailureRatio: 1,
	})
	if err != nil {
		t.Fatalf("lookup client: %v", err)
	}

	if mw == nil {
		cfg := DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
		mw = NewChiMiddleware(cfg)
	}

	service := planets.NewService(store.Instrument(bs), client)
	router := NewRouter(NewHandler(service, "test"), mw)

	return &testEnv{handler: router.SetupChi(), store: bs, swapi: swapi}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

// create posts a planet and returns the stored record.
func (e *testEnv) create(t *testing.T, name, climate, terrain string) models.Planet {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"name": name, "climate": climate, "terrain": terrain})
	w := e.do(t, http.MethodPost, "/planets", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("create %q: status %d, body %s", name, w.Code, w.Body.String())
	}
	return decodePlanet(t, w)
}

// envelope is the decoded {"result": ..., "error": ...} body.
type envelope struct {
	Result json.RawMessage  `json:"result"`
	Error  *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return env
}

func decodePlanet(t *testing.T, w *httptest.ResponseRecorder) models.Planet {
	t.Helper()
	var p models.Planet
	if err := json.Unmarshal(decodeEnvelope(t, w).Result, &p); err != nil {
		t.Fatalf("result is not a planet: %s", w.Body.String())
	}
	return p
}

func resultString(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var s string
	if err := json.Unmarshal(decodeEnvelope(t, w).Result, &s); err != nil {
		t.Fatalf("result is not a string: %s", w.Body.String())
	}
	return s
}
