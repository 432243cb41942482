// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/planetary/internal/logging"
	"github.com/tomtom215/planetary/internal/models"
)

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondResult writes {"result": result}.
func respondResult(w http.ResponseWriter, status int, result interface{}) {
	respondJSON(w, status, &models.ResultResponse{Result: result})
}

// respondError writes {"result": message, "error": {...}}. details may be nil.
func respondError(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, &models.ResultResponse{
		Result: message,
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
