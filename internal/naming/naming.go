// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming provides the identifier helpers shared by the header
// generators: binding slot names, argument lists and C++ identifier checks.
package naming

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultSlotPrefix is the prefix of generated binding slots (m0, m1, ...).
const DefaultSlotPrefix = "m"

// Slot returns the name of binding slot i.
func Slot(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// Slotter returns a function naming slots with prefix.
func Slotter(prefix string) func(int) string {
	return func(i int) string { return Slot(prefix, i) }
}

// JoinArgs joins names into a comma separated list without spaces,
// the form used by both structured bindings and std::tie calls.
func JoinArgs(names []string) string {
	return strings.Join(names, ",")
}

// IsIdentifier reports whether s is a valid C++ identifier.
// Only ASCII letters, digits and underscores are accepted.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// IsQualifiedName reports whether s is a "::" separated sequence of
// identifiers, such as "flex::reflection".
func IsQualifiedName(s string) bool {
	if s == "" {
		return false
	}
	for part := range strings.SplitSeq(s, "::") {
		if !IsIdentifier(part) {
			return false
		}
	}
	return true
}
