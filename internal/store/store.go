// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

// Package store opens the configured planets.Store backend and instruments
// it with Prometheus metrics.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/planetary/internal/config"
	"github.com/tomtom215/planetary/internal/logging"
	"github.com/tomtom215/planetary/internal/metrics"
	"github.com/tomtom215/planetary/internal/models"
	"github.com/tomtom215/planetary/internal/planets"
	"github.com/tomtom215/planetary/internal/store/badgerstore"
	"github.com/tomtom215/planetary/internal/store/mongostore"
)

// ErrRenameUnsupported is returned by RenameFields when the backend cannot
// rename fields.
var ErrRenameUnsupported = errors.New("backend does not support renaming fields")

// Open opens the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*Instrumented, error) {
	var (
		backend planets.Store
		err     error
	)

	switch cfg.Driver {
	case config.DriverMongo:
		backend, err = mongostore.Open(ctx, cfg.URI, cfg.Name, cfg.Collection, cfg.ConnectTimeout)
	case config.DriverBadger:
		backend, err = badgerstore.Open(cfg.Path, cfg.InMemory)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	logging.Info().Str("backend", backend.Backend()).Msg("Planet store opened")
	return Instrument(backend), nil
}

// Instrumented wraps a planets.Store and records the duration and outcome of
// every operation.
type Instrumented struct {
	next planets.Store
}

// Instrument wraps next.
func Instrument(next planets.Store) *Instrumented {
	return &Instrumented{next: next}
}

func (s *Instrumented) observe(op string, start time.Time, found bool, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case !found:
		outcome = metrics.OutcomeNotFound
	}
	metrics.RecordStoreOperation(s.next.Backend(), op, outcome, time.Since(start))
}

// List implements planets.Store.
func (s *Instrumented) List(ctx context.Context) ([]models.Planet, error) {
	start := time.Now()
	list, err := s.next.List(ctx)
	s.observe("list", start, true, err)
	return list, err
}

// FindByID implements planets.Store.
func (s *Instrumented) FindByID(ctx context.Context, id string) (models.Planet, bool, error) {
	start := time.Now()
	p, found, err := s.next.FindByID(ctx, id)
	s.observe("find_by_id", start, found, err)
	return p, found, err
}

// FindByName implements planets.Store.
func (s *Instrumented) FindByName(ctx context.Context, name string) (models.Planet, bool, error) {
	start := time.Now()
	p, found, err := s.next.FindByName(ctx, name)
	s.observe("find_by_name", start, found, err)
	return p, found, err
}

// Insert implements planets.Store.
func (s *Instrumented) Insert(ctx context.Context, planet models.Planet) (string, error) {
	start := time.Now()
	id, err := s.next.Insert(ctx, planet)
	s.observe("insert", start, true, err)
	return id, err
}

// UpdateByID implements planets.Store.
func (s *Instrumented) UpdateByID(ctx context.Context, id string, fields models.PlanetFields) (models.Planet, bool, error) {
	start := time.Now()
	p, found, err := s.next.UpdateByID(ctx, id, fields)
	s.observe("update_by_id", start, found, err)
	return p, found, err
}

// UpdateByName implements planets.Store.
func (s *Instrumented) UpdateByName(ctx context.Context, name string, fields models.PlanetFields) (models.Planet, bool, error) {
	start := time.Now()
	p, found, err := s.next.UpdateByName(ctx, name, fields)
	s.observe("update_by_name", start, found, err)
	return p, found, err
}

// DeleteByID implements planets.Store.
func (s *Instrumented) DeleteByID(ctx context.Context, id string) (models.Planet, bool, error) {
	start := time.Now()
	p, found, err := s.next.DeleteByID(ctx, id)
	s.observe("delete_by_id", start, found, err)
	return p, found, err
}

// DeleteByName implements planets.Store.
func (s *Instrumented) DeleteByName(ctx context.Context, name string) (models.Planet, bool, error) {
	start := time.Now()
	p, found, err := s.next.DeleteByName(ctx, name)
	s.observe("delete_by_name", start, found, err)
	return p, found, err
}

// RenameFields implements planets.FieldRenamer when the backend does.
func (s *Instrumented) RenameFields(ctx context.Context, renames map[string]string) (int64, error) {
	r, ok := s.next.(planets.FieldRenamer)
	if !ok {
		return 0, ErrRenameUnsupported
	}

	start := time.Now()
	n, err := r.RenameFields(ctx, renames)
	s.observe("rename_fields", start, true, err)
	return n, err
}

// Ping implements planets.Store.
func (s *Instrumented) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

// Backend implements planets.Store.
func (s *Instrumented) Backend() string {
	return s.next.Backend()
}

// Close implements planets.Store.
func (s *Instrumented) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}
