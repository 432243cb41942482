// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/planetary/internal/logging"
	"github.com/tomtom215/planetary/internal/metrics"
)

// Pinger is the part of planets.Store the monitor needs.
type Pinger interface {
	Ping(ctx context.Context) error
	Backend() string
}

// StoreMonitorService periodically pings the store and publishes its
// availability. It never fails on its own; an unreachable store is reported,
// not restarted.
type StoreMonitorService struct {
	store    Pinger
	interval time.Duration
	timeout  time.Duration
	up       atomic.Bool
	checks   atomic.Int64
}

// NewStoreMonitorService creates a monitor pinging store every interval.
// Non-positive intervals mean 30s.
func NewStoreMonitorService(store Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &StoreMonitorService{
		store:    store,
		interval: interval,
		timeout:  timeout,
	}
}

// Serve implements suture.Service.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	// Assume up so the first failed check is logged as a transition.
	s.up.Store(true)
	s.check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *StoreMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.store.Ping(pingCtx)
	s.checks.Add(1)

	if ctx.Err() != nil {
		return
	}

	backend := s.store.Backend()
	if err != nil {
		metrics.StoreUp.WithLabelValues(backend).Set(0)
		if s.up.Swap(false) {
			logging.Warn().Err(err).Str("backend", backend).Msg("Planet store unreachable")
		}
		return
	}

	metrics.StoreUp.WithLabelValues(backend).Set(1)
	if !s.up.Swap(true) {
		logging.Info().Str("backend", backend).Msg("Planet store reachable again")
	}
}

// Up reports the result of the last check.
func (s *StoreMonitorService) Up() bool {
	return s.up.Load()
}

// Checks returns how many pings have completed.
func (s *StoreMonitorService) Checks() int64 {
	return s.checks.Load()
}

// String implements fmt.Stringer.
func (s *StoreMonitorService) String() string {
	return "store-monitor"
}
