// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

// Package planets implements the planet catalog rules on top of a document
// store and an appearance lookup.
//
// # Names
//
// Planet names are canonicalized to capitalized form (first letter upper,
// rest lower) before they are stored and before any name match, so
// "tatooine", "TATOOINE" and "Tatooine" are the same planet.
//
// # Operations
//
//   - List returns every stored planet in store iteration order.
//   - Create rejects a name that is already stored with ErrAlreadyExists,
//     otherwise looks up the appearance count, inserts, and returns the
//     re-read document.
//   - Get, Update and Delete address a planet by store ID or by name and
//     return ErrNotFound when nothing matches. A malformed ID is a miss.
//
// # Appearance lookup
//
// The lookup receives the name exactly as the client sent it. Any lookup
// failure is logged and recorded as zero appearances; it never fails the
// request.
//
// # Uniqueness
//
// The duplicate-name check runs before the write and is not atomic with it.
// Two concurrent creates of the same name can both succeed. Deployments that
// need strict uniqueness should add a unique index on the name field.
package planets
