// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package models

// ResultResponse is the envelope for single-planet endpoints. Result holds
// either a Planet or a human-readable outcome string:
//
//	{"result": {"id": "...", "name": "Tatooine", ...}}
//	{"result": "not found"}
//	{"result": "Tatooine has been deleted."}
//
// Error is set only for client input and server failures, alongside a
// Result string carrying the same message.
type ResultResponse struct {
	Result interface{} `json:"result"`
	Error  *APIError   `json:"error,omitempty"`
}

// PlanetsResponse is the envelope for the list endpoint.
type PlanetsResponse struct {
	Planets []Planet `json:"planets"`
}

// APIError carries a machine-readable code for failed requests.
//
//	{"code": "VALIDATION_ERROR", "message": "\"name\" cannot be blank.", "details": {"field": "name"}}
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status  string `json:"status"`
	Store   string `json:"store,omitempty"`
	Backend string `json:"backend,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}
