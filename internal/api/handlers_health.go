// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/planetary/internal/logging"
	"github.com/tomtom215/planetary/internal/models"
)

// storePingTimeout bounds the store check of the readiness probe.
const storePingTimeout = 3 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of the store
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthStatus{
		Status:  "alive",
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Version: h.version,
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the store answers a ping
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus "Service is ready"
// @Failure 503 {object} models.HealthStatus "Store unavailable"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	store := h.service.Store()

	ctx, cancel := context.WithTimeout(r.Context(), storePingTimeout)
	defer cancel()

	health := models.HealthStatus{
		Status:  "ready",
		Store:   "connected",
		Backend: store.Backend(),
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Version: h.version,
	}

	status := http.StatusOK
	if err := store.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("backend", store.Backend()).Msg("Readiness check failed")
		status = http.StatusServiceUnavailable
		health.Status = "not_ready"
		health.Store = "unavailable"
		health.Error = "store unavailable"
	}

	respondJSON(w, status, &health)
}

// Health is an alias of HealthReady
//
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Failure 503 {object} models.HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.HealthReady(w, r)
}
