// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config contains generator configuration.
type Config struct {
	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// Merge returns a copy of c with the options of other applied on top.
func (c Config) Merge(other map[string]string) Config {
	merged := make(map[string]string, len(c.Options)+len(other))
	for k, v := range c.Options {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return Config{Options: merged}
}

// ParseOptions parses "key=value" pairs as given on the command line.
func ParseOptions(pairs []string) (map[string]string, error) {
	opts := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q (expected key=value)", pair)
		}
		opts[key] = strings.TrimSpace(value)
	}
	return opts, nil
}

// LoadOptions reads target options from a YAML or JSON file holding a flat
// mapping of option keys to scalar values.
func LoadOptions(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options %s: %w", path, err)
	}
	return parseOptionsDocument(data, path)
}

func parseOptionsDocument(data []byte, source string) (map[string]string, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("options file %s is empty", source)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse options %s: %w", source, err)
	}

	opts := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			opts[key] = v
		case int, bool, float64:
			opts[key] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("options file %s: key %q must be a scalar, got %T", source, key, value)
		}
	}
	return opts, nil
}
