// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package planets

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CanonicalName returns name with its first character upper-cased and the
// rest lower-cased. Whitespace is preserved.
//
//	CanonicalName("tATOOINE") == "Tatooine"
//	CanonicalName("yavin IV") == "Yavin iv"
func CanonicalName(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return strings.ToLower(name)
	}
	return string(unicode.ToTitle(first)) + strings.ToLower(name[size:])
}

// DeletedMessage is the confirmation returned after a delete.
func DeletedMessage(name string) string {
	return CanonicalName(name) + " has been deleted."
}
