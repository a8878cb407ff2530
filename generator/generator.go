// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for aggregate tuple header generators.
package generator

import (
	"context"

	"github.com/albertocavalcante/tuplegen/model"
)

// Generator is the interface that all header generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces the output files for req.
	Generate(ctx context.Context, req model.Request, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier used by --target (e.g., "cpp").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".hpp"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}
