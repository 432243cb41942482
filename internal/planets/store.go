// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package planets

import (
	"context"

	"github.com/tomtom215/planetary/internal/models"
)

// Store is the document store behind the catalog.
//
// Lookups report a miss with found == false and a nil error; err is reserved
// for store failures. Name arguments are already canonical. An ID that is
// not a valid identifier for the backend is a miss, not an error.
//
// UpdateBy* and DeleteBy* must be single atomic find-and-modify and
// find-and-delete operations. UpdateBy* writes only name, climate and
// terrain and returns the document as it is after the update.
type Store interface {
	List(ctx context.Context) ([]models.Planet, error)
	FindByID(ctx context.Context, id string) (planet models.Planet, found bool, err error)
	FindByName(ctx context.Context, name string) (planet models.Planet, found bool, err error)
	Insert(ctx context.Context, planet models.Planet) (id string, err error)
	UpdateByID(ctx context.Context, id string, fields models.PlanetFields) (planet models.Planet, found bool, err error)
	UpdateByName(ctx context.Context, name string, fields models.PlanetFields) (planet models.Planet, found bool, err error)
	DeleteByID(ctx context.Context, id string) (planet models.Planet, found bool, err error)
	DeleteByName(ctx context.Context, name string) (planet models.Planet, found bool, err error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
	// Backend names the implementation ("mongo", "badger") for logs and metrics.
	Backend() string
	Close(ctx context.Context) error
}

// FieldRenamer is implemented by stores that can rename fields on every
// stored document. It backs the opt-in legacy field migration.
type FieldRenamer interface {
	// RenameFields renames each key of renames to its value on every
	// document that has the key and returns how many documents changed.
	RenameFields(ctx context.Context, renames map[string]string) (int64, error)
}

// AppearanceCounter reports how many films a planet appeared in.
type AppearanceCounter interface {
	Appearances(ctx context.Context, name string) (int, error)
}
