// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/tuplegen/generator"
	"github.com/albertocavalcante/tuplegen/internal/naming"
)

// Option keys accepted through [generator.Config].
const (
	OptNamespace  = "namespace"
	OptInclude    = "include"
	OptMacro      = "macro"
	OptConcept    = "concept"
	OptTrait      = "trait"
	OptFunction   = "function"
	OptSlotPrefix = "slot-prefix"
)

// DefaultFileName is the conventional name of the generated header.
const DefaultFileName = "aggregateMembersTuple.hpp"

// Config holds configuration for C++ header generation.
type Config struct {
	// Namespace wraps both functions (e.g., "flex::reflection").
	Namespace string

	// Include is the header providing the member count trait.
	Include string

	// Macro is the name of the max member count #define.
	Macro string

	// Concept constrains the template parameter (e.g., "flex::aggregate").
	Concept string

	// Trait is the variable template yielding the member count of T.
	Trait string

	// Function is the name of the generated overloads.
	Function string

	// SlotPrefix prefixes the structured binding names (m0, m1, ...).
	SlotPrefix string
}

// DefaultConfig returns the configuration of the flex reflection header.
func DefaultConfig() Config {
	return Config{
		Namespace:  "flex::reflection",
		Include:    "flex/reflection/aggregateMembersCount.hpp",
		Macro:      "FLEX_REFLECTION_MAX_AGGREGATE_MEMBERS_COUNT",
		Concept:    "flex::aggregate",
		Trait:      "flex::reflection::aggregate_members_count_v",
		Function:   "makeAggregateMembersTuple",
		SlotPrefix: naming.DefaultSlotPrefix,
	}
}

var optionKeys = []string{OptNamespace, OptInclude, OptMacro, OptConcept, OptTrait, OptFunction, OptSlotPrefix}

// ConfigFromOptions builds a Config from target options, falling back to
// [DefaultConfig] for unset keys.
func ConfigFromOptions(cfg generator.Config) (Config, error) {
	for key := range cfg.Options {
		if !slices.Contains(optionKeys, key) {
			return Config{}, fmt.Errorf("unknown cpp option %q (known: %s)", key, strings.Join(optionKeys, ", "))
		}
	}

	def := DefaultConfig()
	c := Config{
		Namespace:  cfg.Option(OptNamespace, def.Namespace),
		Include:    cfg.Option(OptInclude, def.Include),
		Macro:      cfg.Option(OptMacro, def.Macro),
		Concept:    cfg.Option(OptConcept, def.Concept),
		Trait:      cfg.Option(OptTrait, def.Trait),
		Function:   cfg.Option(OptFunction, def.Function),
		SlotPrefix: cfg.Option(OptSlotPrefix, def.SlotPrefix),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that every name can be spliced into the header verbatim.
func (c Config) Validate() error {
	checks := []struct {
		key   string
		value string
		ok    func(string) bool
	}{
		{OptNamespace, c.Namespace, naming.IsQualifiedName},
		{OptMacro, c.Macro, naming.IsIdentifier},
		{OptConcept, c.Concept, naming.IsQualifiedName},
		{OptTrait, c.Trait, naming.IsQualifiedName},
		{OptFunction, c.Function, naming.IsIdentifier},
		{OptSlotPrefix, c.SlotPrefix, naming.IsIdentifier},
	}
	for _, chk := range checks {
		if !chk.ok(chk.value) {
			return fmt.Errorf("invalid %s %q", chk.key, chk.value)
		}
	}
	if c.Include == "" || strings.ContainsAny(c.Include, "\"\n") {
		return fmt.Errorf("invalid %s %q", OptInclude, c.Include)
	}
	return nil
}
