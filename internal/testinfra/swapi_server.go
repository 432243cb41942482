// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package testinfra

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

// MockSWAPIServer serves GET /api/planets/?search=<term> from an in-memory
// catalog. Like the real API, search is a case-insensitive substring match.
type MockSWAPIServer struct {
	Server *httptest.Server

	mu       sync.Mutex
	planets  []mockPlanet
	searches []string

	// ResponseStatus, when set, is returned instead of a search result.
	ResponseStatus int
}

type mockPlanet struct {
	Name  string   `json:"name"`
	Films []string `json:"films"`
}

// NewMockSWAPIServer starts a mock SWAPI server that is closed when the test ends.
func NewMockSWAPIServer(t *testing.T) *MockSWAPIServer {
	t.Helper()

	m := &MockSWAPIServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Server.Close)
	return m
}

func (m *MockSWAPIServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/planets/" {
		http.NotFound(w, r)
		return
	}

	term := r.URL.Query().Get("search")

	m.mu.Lock()
	m.searches = append(m.searches, term)
	status := m.ResponseStatus
	results := make([]mockPlanet, 0)
	for _, p := range m.planets {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			results = append(results, p)
		}
	}
	m.mu.Unlock()

	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // test server
	json.NewEncoder(w).Encode(map[string]interface{}{
		"count":    len(results),
		"next":     nil,
		"previous": nil,
		"results":  results,
	})
}

// AddPlanet adds a planet appearing in the given number of films.
func (m *MockSWAPIServer) AddPlanet(name string, films int) {
	p := mockPlanet{Name: name, Films: make([]string, films)}
	for i := range p.Films {
		p.Films[i] = fmt.Sprintf("https://swapi.dev/api/films/%d/", i+1)
	}

	m.mu.Lock()
	m.planets = append(m.planets, p)
	m.mu.Unlock()
}

// SetStatus makes every following search answer with status.
func (m *MockSWAPIServer) SetStatus(status int) {
	m.mu.Lock()
	m.ResponseStatus = status
	m.mu.Unlock()
}

// URL returns the planets search endpoint.
func (m *MockSWAPIServer) URL() string {
	return m.Server.URL + "/api/planets/"
}

// Searches returns the search terms received so far.
func (m *MockSWAPIServer) Searches() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.searches))
	copy(out, m.searches)
	return out
}
