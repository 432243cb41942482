// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/planetary/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, resultNotFound, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, resultMethodNotAllow, nil)
	})

	// ========================
	// Health and Metrics
	// ========================
	r.Get("/health", router.handler.Health)
	r.Get("/health/live", router.handler.HealthLive)
	r.Get("/health/ready", router.handler.HealthReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// ========================
	// Planet Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.Get("/planets", router.handler.ListPlanets)
		r.Get("/planets/", router.handler.ListPlanets)
		r.Post("/planets", router.handler.CreatePlanet)
		r.Post("/planets/", router.handler.CreatePlanet)

		r.Route("/planets/name/{name}", func(r chi.Router) {
			r.Get("/", router.handler.GetPlanetByName)
			r.Put("/", router.handler.UpdatePlanetByName)
			r.Delete("/", router.handler.DeletePlanetByName)
		})

		r.Route("/planets/id/{id}", func(r chi.Router) {
			r.Get("/", router.handler.GetPlanetByID)
			r.Put("/", router.handler.UpdatePlanetByID)
			r.Delete("/", router.handler.DeletePlanetByID)
		})
	})

	return r
}
