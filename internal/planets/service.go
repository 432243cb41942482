// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package planets

import (
	"context"
	"fmt"

	"github.com/tomtom215/planetary/internal/logging"
	"github.com/tomtom215/planetary/internal/metrics"
	"github.com/tomtom215/planetary/internal/models"
)

// Service applies the catalog rules. It holds no mutable state of its own
// and is safe for concurrent use if its Store is.
type Service struct {
	store  Store
	lookup AppearanceCounter
}

// NewService creates a Service. lookup may be nil, in which case every new
// planet is recorded with zero appearances.
func NewService(store Store, lookup AppearanceCounter) *Service {
	return &Service{store: store, lookup: lookup}
}

// Store returns the underlying store (used by health checks).
func (s *Service) Store() Store {
	return s.store
}

// List returns every stored planet.
func (s *Service) List(ctx context.Context) ([]models.Planet, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	if list == nil {
		list = []models.Planet{}
	}
	return list, nil
}

// Create stores a new planet. It returns ErrAlreadyExists, without writing,
// when the canonical name is already stored.
func (s *Service) Create(ctx context.Context, fields models.PlanetFields) (models.Planet, error) {
	name := CanonicalName(fields.Name)

	_, exists, err := s.store.FindByName(ctx, name)
	if err != nil {
		return models.Planet{}, fmt.Errorf("check existing planet %q: %w", name, err)
	}
	if exists {
		metrics.RecordPlanetCreate(false)
		return models.Planet{}, ErrAlreadyExists
	}

	id, err := s.store.Insert(ctx, models.Planet{
		Name:         name,
		Climate:      fields.Climate,
		Terrain:      fields.Terrain,
		NAppearances: s.appearances(ctx, fields.Name),
	})
	if err != nil {
		return models.Planet{}, fmt.Errorf("insert planet %q: %w", name, err)
	}

	stored, found, err := s.store.FindByID(ctx, id)
	if err != nil {
		return models.Planet{}, fmt.Errorf("re-read planet %s: %w", id, err)
	}
	if !found {
		return models.Planet{}, fmt.Errorf("planet %s: %w", id, ErrMissingInsert)
	}

	metrics.RecordPlanetCreate(true)
	logging.Ctx(ctx).Info().
		Str("planet_id", stored.ID).
		Str("planet", stored.Name).
		Int("n_appearances", stored.NAppearances).
		Msg("Planet created")

	return stored, nil
}

// appearances asks the lookup for the film count of rawName. Failures are
// logged and count as zero.
func (s *Service) appearances(ctx context.Context, rawName string) int {
	if s.lookup == nil {
		return 0
	}

	n, err := s.lookup.Appearances(ctx, rawName)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("planet", rawName).Msg("Appearance lookup failed, recording 0")
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

// GetByID returns the planet with the given store ID.
func (s *Service) GetByID(ctx context.Context, id string) (models.Planet, error) {
	planet, ok, err := s.store.FindByID(ctx, id)
	return resolve("find planet by id", planet, ok, err)
}

// GetByName returns the planet with the given name, matched canonically.
func (s *Service) GetByName(ctx context.Context, name string) (models.Planet, error) {
	planet, ok, err := s.store.FindByName(ctx, CanonicalName(name))
	return resolve("find planet by name", planet, ok, err)
}

// UpdateByID replaces name, climate and terrain of the planet with the given
// ID and returns the updated planet.
func (s *Service) UpdateByID(ctx context.Context, id string, fields models.PlanetFields) (models.Planet, error) {
	fields.Name = CanonicalName(fields.Name)

	err := s.checkRename(ctx, fields.Name, func() (models.Planet, bool, error) {
		return s.store.FindByID(ctx, id)
	})
	if err != nil {
		return models.Planet{}, err
	}

	planet, ok, err := s.store.UpdateByID(ctx, id, fields)
	return resolve("update planet by id", planet, ok, err)
}

// UpdateByName replaces name, climate and terrain of the named planet and
// returns the updated planet.
func (s *Service) UpdateByName(ctx context.Context, name string, fields models.PlanetFields) (models.Planet, error) {
	current := CanonicalName(name)
	fields.Name = CanonicalName(fields.Name)

	err := s.checkRename(ctx, fields.Name, func() (models.Planet, bool, error) {
		return s.store.FindByName(ctx, current)
	})
	if err != nil {
		return models.Planet{}, err
	}

	planet, ok, err := s.store.UpdateByName(ctx, current, fields)
	return resolve("update planet by name", planet, ok, err)
}

// checkRename returns ErrAlreadyExists when newName already belongs to a
// planet other than the target. A target that already carries newName is
// never blocked, even when an older duplicate holds the name. A missing
// target is reported as ErrNotFound. Like the create check, this is not
// atomic with the update.
func (s *Service) checkRename(ctx context.Context, newName string, target func() (models.Planet, bool, error)) error {
	holder, taken, err := s.store.FindByName(ctx, newName)
	if err != nil {
		return fmt.Errorf("check planet name %q: %w", newName, err)
	}
	if !taken {
		return nil
	}

	current, exists, err := target()
	if err != nil {
		return fmt.Errorf("check update target: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	if current.ID == holder.ID || current.Name == newName {
		return nil
	}
	return ErrAlreadyExists
}

// DeleteByID removes the planet with the given ID and returns it.
func (s *Service) DeleteByID(ctx context.Context, id string) (models.Planet, error) {
	planet, ok, err := s.store.DeleteByID(ctx, id)
	return resolve("delete planet by id", planet, ok, err)
}

// DeleteByName removes the named planet and returns it.
func (s *Service) DeleteByName(ctx context.Context, name string) (models.Planet, error) {
	planet, ok, err := s.store.DeleteByName(ctx, CanonicalName(name))
	return resolve("delete planet by name", planet, ok, err)
}

// resolve maps a store miss to ErrNotFound and wraps store failures with op.
//
//nolint:gocritic // models.Planet is small and returned by value throughout
func resolve(op string, planet models.Planet, ok bool, err error) (models.Planet, error) {
	if err != nil {
		return models.Planet{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return models.Planet{}, ErrNotFound
	}
	return planet, nil
}
