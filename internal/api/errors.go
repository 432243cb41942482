// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package api

// Error codes returned in the "error" object.
const (
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeUnavailable      = "SERVICE_UNAVAILABLE"
)

// Fixed result strings.
const (
	resultNotFound       = "not found"
	resultAlreadyExists  = "already exists"
	resultInternalError  = "internal error"
	resultInvalidBody    = "invalid request body"
	resultMethodNotAllow = "method not allowed"
	resultRateLimited    = "rate limit exceeded"
)
