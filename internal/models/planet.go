// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package models

// Planet is the stored planet document as returned to clients.
//
// ID is assigned by the store at insert and never changes. Name is always in
// canonical capitalized form. NAppearances is set once at creation from the
// appearance lookup and is not touched by updates.
type Planet struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Climate      string `json:"climate"`
	Terrain      string `json:"terrain"`
	NAppearances int    `json:"n_appearances"`
}

// PlanetFields are the client-writable fields of a planet. Create and update
// both take exactly this set.
type PlanetFields struct {
	Name    string
	Climate string
	Terrain string
}
