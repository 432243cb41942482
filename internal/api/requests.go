// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package api

import "github.com/tomtom215/planetary/internal/models"

// PlanetRequest is the body of create and update requests. All three fields
// are required; n_appearances and id are never accepted from clients. Names
// are matched and indexed by value, so control characters are refused.
type PlanetRequest struct {
	Name    string `json:"name" validate:"required,notblank,nocontrol,max=200"`
	Climate string `json:"climate" validate:"required,notblank,max=200"`
	Terrain string `json:"terrain" validate:"required,notblank,max=200"`
}

// Fields converts the request into the writable planet fields.
func (p *PlanetRequest) Fields() models.PlanetFields {
	return models.PlanetFields{
		Name:    p.Name,
		Climate: p.Climate,
		Terrain: p.Terrain,
	}
}
