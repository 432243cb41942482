// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry at package init via
// promauto. Callers use the Record* helpers rather than the vectors directly
// so label sets stay consistent.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store operation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Lookup outcomes.
const (
	LookupSuccess  = "success"
	LookupEmpty    = "empty"
	LookupFailure  = "failure"
	LookupRejected = "rejected"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Document Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of planet store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of planet store operations by outcome",
		},
		[]string{"backend", "operation", "outcome"}, // outcome: "ok", "not_found", "error"
	)

	StoreUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_up",
			Help: "Whether the last store ping succeeded (1) or failed (0)",
		},
		[]string{"backend"},
	)

	// Planet Metrics
	PlanetsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planets_created_total",
			Help: "Total number of create requests by result",
		},
		[]string{"result"}, // "created", "duplicate"
	)

	// Appearance Lookup Metrics
	LookupRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_requests_total",
			Help: "Total number of appearance lookups by outcome",
		},
		[]string{"outcome"}, // "success", "empty", "failure", "rejected"
	)

	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lookup_duration_seconds",
			Help:    "Duration of appearance lookups in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreOperation records the latency and outcome of a store call.
func RecordStoreOperation(backend, operation, outcome string, duration time.Duration) {
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	StoreOperationsTotal.WithLabelValues(backend, operation, outcome).Inc()
}

// RecordPlanetCreate records a create request that either inserted a planet
// or hit an existing name.
func RecordPlanetCreate(created bool) {
	if created {
		PlanetsCreatedTotal.WithLabelValues("created").Inc()
		return
	}
	PlanetsCreatedTotal.WithLabelValues("duplicate").Inc()
}

// RecordLookup records an appearance lookup.
func RecordLookup(outcome string, duration time.Duration) {
	LookupRequestsTotal.WithLabelValues(outcome).Inc()
	LookupDuration.Observe(duration.Seconds())
}
