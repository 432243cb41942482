// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package api

import (
	"time"

	"github.com/tomtom215/planetary/internal/planets"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: request decoding and error mapping
//   - handlers_planets.go: planet endpoints
//   - handlers_health.go: health endpoints
type Handler struct {
	service   *planets.Service
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler around service.
//
// Example:
//
//	handler := api.NewHandler(planets.NewService(store, lookupClient), version)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	http.ListenAndServe(":5000", router.SetupChi())
func NewHandler(service *planets.Service, version string) *Handler {
	return &Handler{
		service:   service,
		version:   version,
		startTime: time.Now(),
	}
}
