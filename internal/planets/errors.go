// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package planets

import "errors"

var (
	// ErrNotFound means no planet matched the given ID or name.
	ErrNotFound = errors.New("planet not found")

	// ErrAlreadyExists means another planet already uses the canonical name.
	ErrAlreadyExists = errors.New("planet already exists")

	// ErrMissingInsert means an inserted document could not be read back.
	ErrMissingInsert = errors.New("inserted planet not found on re-read")
)
