// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package api

import (
	"net/http"

	"github.com/tomtom215/planetary/internal/models"
	"github.com/tomtom215/planetary/internal/planets"
)

// ListPlanets returns every stored planet
//
// @Summary List planets
// @Tags Planets
// @Produce json
// @Success 200 {object} models.PlanetsResponse
// @Failure 500 {object} models.ResultResponse "Store failure"
// @Router /planets [get]
func (h *Handler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, &models.PlanetsResponse{Planets: list})
}

// CreatePlanet stores a new planet. The film appearance count is looked up
// once here; a failed lookup records 0. A taken name is not an error.
//
// @Summary Create a planet
// @Tags Planets
// @Accept json
// @Produce json
// @Param planet body PlanetRequest true "Planet"
// @Success 200 {object} models.ResultResponse{result=models.Planet} "Created planet, or \"already exists\""
// @Failure 400 {object} models.ResultResponse "Missing or blank field"
// @Failure 500 {object} models.ResultResponse "Store failure"
// @Router /planets [post]
func (h *Handler) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePlanetRequest(w, r)
	if !ok {
		return
	}

	planet, err := h.service.Create(r.Context(), req.Fields())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondResult(w, http.StatusOK, planet)
}

// GetPlanetByName returns the planet with the given name, matched
// case-insensitively.
//
// @Summary Get a planet by name
// @Tags Planets
// @Produce json
// @Param name path string true "Planet name"
// @Success 200 {object} models.ResultResponse{result=models.Planet}
// @Failure 404 {object} models.ResultResponse "not found"
// @Router /planets/name/{name} [get]
func (h *Handler) GetPlanetByName(w http.ResponseWriter, r *http.Request) {
	planet, err := h.service.GetByName(r.Context(), pathParam(r, "name"))
	h.respondPlanet(w, r, planet, err)
}

// GetPlanetByID returns the planet with the given id. Malformed ids are
// reported as not found.
//
// @Summary Get a planet by id
// @Tags Planets
// @Produce json
// @Param id path string true "Planet id"
// @Success 200 {object} models.ResultResponse{result=models.Planet}
// @Failure 404 {object} models.ResultResponse "not found"
// @Router /planets/id/{id} [get]
func (h *Handler) GetPlanetByID(w http.ResponseWriter, r *http.Request) {
	planet, err := h.service.GetByID(r.Context(), pathParam(r, "id"))
	h.respondPlanet(w, r, planet, err)
}

// UpdatePlanetByName replaces name, climate and terrain of the named planet.
//
// @Summary Update a planet by name
// @Tags Planets
// @Accept json
// @Produce json
// @Param name path string true "Planet name"
// @Param planet body PlanetRequest true "Planet"
// @Success 200 {object} models.ResultResponse{result=models.Planet}
// @Failure 400 {object} models.ResultResponse "Missing or blank field"
// @Failure 404 {object} models.ResultResponse "not found"
// @Router /planets/name/{name} [put]
func (h *Handler) UpdatePlanetByName(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePlanetRequest(w, r)
	if !ok {
		return
	}
	planet, err := h.service.UpdateByName(r.Context(), pathParam(r, "name"), req.Fields())
	h.respondPlanet(w, r, planet, err)
}

// UpdatePlanetByID replaces name, climate and terrain of the planet with the
// given id.
//
// @Summary Update a planet by id
// @Tags Planets
// @Accept json
// @Produce json
// @Param id path string true "Planet id"
// @Param planet body PlanetRequest true "Planet"
// @Success 200 {object} models.ResultResponse{result=models.Planet}
// @Failure 400 {object} models.ResultResponse "Missing or blank field"
// @Failure 404 {object} models.ResultResponse "not found"
// @Router /planets/id/{id} [put]
func (h *Handler) UpdatePlanetByID(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePlanetRequest(w, r)
	if !ok {
		return
	}
	planet, err := h.service.UpdateByID(r.Context(), pathParam(r, "id"), req.Fields())
	h.respondPlanet(w, r, planet, err)
}

// DeletePlanetByName removes the named planet.
//
// @Summary Delete a planet by name
// @Tags Planets
// @Produce json
// @Param name path string true "Planet name"
// @Success 200 {object} models.ResultResponse{result=string} "<Name> has been deleted."
// @Failure 404 {object} models.ResultResponse "not found"
// @Router /planets/name/{name} [delete]
func (h *Handler) DeletePlanetByName(w http.ResponseWriter, r *http.Request) {
	planet, err := h.service.DeleteByName(r.Context(), pathParam(r, "name"))
	h.respondDeleted(w, r, planet, err)
}

// DeletePlanetByID removes the planet with the given id.
//
// @Summary Delete a planet by id
// @Tags Planets
// @Produce json
// @Param id path string true "Planet id"
// @Success 200 {object} models.ResultResponse{result=string} "<Name> has been deleted."
// @Failure 404 {object} models.ResultResponse "not found"
// @Router /planets/id/{id} [delete]
func (h *Handler) DeletePlanetByID(w http.ResponseWriter, r *http.Request) {
	planet, err := h.service.DeleteByID(r.Context(), pathParam(r, "id"))
	h.respondDeleted(w, r, planet, err)
}

//nolint:gocritic // models.Planet is passed by value like the service returns it
func (h *Handler) respondPlanet(w http.ResponseWriter, r *http.Request, planet models.Planet, err error) {
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondResult(w, http.StatusOK, planet)
}

//nolint:gocritic // see respondPlanet
func (h *Handler) respondDeleted(w http.ResponseWriter, r *http.Request, planet models.Planet, err error) {
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondResult(w, http.StatusOK, planets.DeletedMessage(planet.Name))
}
