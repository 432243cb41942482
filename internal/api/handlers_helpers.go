// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package api

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/planetary/internal/logging"
	"github.com/tomtom215/planetary/internal/planets"
	"github.com/tomtom215/planetary/internal/validation"
)

// maxBodySize limits create and update request bodies.
const maxBodySize = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// pathParam returns a decoded chi URL parameter. chi matches on the raw path
// when the request path has escapes that decoding would lose, such as %2F.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

// decodePlanetRequest reads a JSON or form-encoded planet body and validates
// it. On failure it writes the 400 response and returns false.
func decodePlanetRequest(w http.ResponseWriter, r *http.Request) (*PlanetRequest, bool) {
	var req PlanetRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		if err := r.ParseMultipartForm(maxBodySize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, resultInvalidBody, nil)
			return nil, false
		}
		req.Name = r.PostFormValue("name")
		req.Climate = r.PostFormValue("climate")
		req.Terrain = r.PostFormValue("terrain")
	default:
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Invalid planet request body")
			respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, resultInvalidBody, nil)
			return nil, false
		}
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return nil, false
	}
	return &req, true
}

// respondServiceError maps a planets.Service error to its response. Store
// failures are logged and hidden from the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, planets.ErrNotFound):
		respondResult(w, http.StatusNotFound, resultNotFound)
	case errors.Is(err, planets.ErrAlreadyExists):
		respondResult(w, http.StatusOK, resultAlreadyExists)
	default:
		logging.Ctx(r.Context()).Error().
			Str("error", sanitizeLogValue(err.Error())).
			Str("method", r.Method).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("Planet request failed")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, resultInternalError, nil)
	}
}
