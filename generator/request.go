// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/albertocavalcante/tuplegen/model"
)

// ArgumentCountError reports a wrong number of positional arguments.
type ArgumentCountError struct {
	Got int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("invalid amount of args: want 2 (output path, max member count), got %d", e.Got)
}

// ParseError reports a max member count that is not an integer.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse max member count %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// groupedDigits matches decimal integers with single underscores between
// digit groups, such as "1_000".
var groupedDigits = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)+$`)

// parseCount parses a decimal integer, ignoring surrounding whitespace and
// underscores between digit groups.
func parseCount(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if groupedDigits.MatchString(s) {
		s = strings.ReplaceAll(s, "_", "")
	}
	return strconv.Atoi(s)
}

// ParseRequest builds a request from the positional arguments
// "<output-path> <max-member-count>".
//
// The count may be surrounded by whitespace and use underscores between
// digit groups. Non-positive counts are accepted and yield an artifact without cases.
func ParseRequest(args []string) (model.Request, error) {
	if len(args) != 2 {
		return model.Request{}, &ArgumentCountError{Got: len(args)}
	}
	n, err := parseCount(args[1])
	if err != nil {
		return model.Request{}, &ParseError{Value: args[1], Err: err}
	}
	return model.Request{OutputPath: args[0], MaxMemberCount: n}, nil
}
