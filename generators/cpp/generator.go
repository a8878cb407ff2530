// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"context"

	"github.com/albertocavalcante/tuplegen/generator"
	"github.com/albertocavalcante/tuplegen/model"
)

// Generator implements [generator.Generator] for the C++ tuple header.
type Generator struct{}

// NewGenerator creates a new C++ generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "cpp",
		Version:        "1.0.0",
		Description:    "Generate the C++20 aggregate members tuple header",
		FileExtensions: []string{".hpp"},
		URL:            "https://github.com/albertocavalcante/tuplegen",
	}
}

// Generate produces a single header keyed by req.OutputPath.
func (g *Generator) Generate(ctx context.Context, req model.Request, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	internalCfg, err := ConfigFromOptions(cfg)
	if err != nil {
		return nil, err
	}

	artifact, err := New(internalCfg).Generate(req)
	if err != nil {
		return nil, err
	}

	filename := DefaultFileName
	if req.OutputPath != "" {
		filename = req.OutputPath
	}
	return generator.Single(filename, artifact.Bytes()), nil
}
