// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command tuplegen generates the C++ header that converts aggregates into
// tuples of references to their members.
//
// Usage:
//
//	tuplegen [flags] <output-path> <max-member-count>
//
// Flags:
//
//	--target         Generator to run (default: cpp)
//	--opt key=value  Target option, repeatable
//	--config         Path to a YAML/JSON file of target options
//	--dry-run        Print to stdout without writing files
//	--verbose        Verbose output
//	--list-targets   List available generators
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/albertocavalcante/tuplegen/generator"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tuplegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	listTargets := fs.Bool("list-targets", false, "List available generators")

	target := fs.String("target", defaultTarget, "Generator to run")
	configPath := fs.String("config", "", "Path to a YAML/JSON file of target options")
	dryRun := fs.Bool("dry-run", false, "Print to stdout without writing files")
	verbose := fs.Bool("verbose", false, "Verbose output")
	var optPairs []string
	fs.Func("opt", "Target option as key=value (repeatable)", func(s string) error {
		optPairs = append(optPairs, s)
		return nil
	})

	fs.Usage = func() {
		fmt.Fprintf(stderr, `tuplegen - Aggregate Members Tuple Header Generator

Generate the header that binds every member of an aggregate into a tuple of
references, with one case per member count from 1 to the maximum.

Usage:
  tuplegen [flags] <output-path> <max-member-count>

Flags:
  --target string  Generator to run (default: %s)
  --opt key=value  Target option, repeatable
  --config string  Path to a YAML/JSON file of target options
  --dry-run        Print to stdout without writing files
  --verbose        Verbose output
  --list-targets   List available generators
  --version        Show version information
  --help           Show this help

Examples:
  # Generate the flex reflection header for up to 64 members
  tuplegen lib/include/flex/reflection/autogen/aggregateMembersTuple.hpp 64

  # Use a different namespace and slot prefix
  tuplegen --opt namespace=my::refl --opt slot-prefix=s out/tuple.hpp 16

`, defaultTarget)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showHelp {
		fs.Usage()
		return nil
	}

	if *showVersion {
		fmt.Fprintf(stdout, "tuplegen %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	if *listTargets {
		for _, g := range generator.All() {
			meta := g.Metadata()
			fmt.Fprintf(stdout, "%-8s %s (%s)\n", meta.Name, meta.Description, strings.Join(meta.FileExtensions, ", "))
		}
		return nil
	}

	req, err := generator.ParseRequest(fs.Args())
	if err != nil {
		var countErr *generator.ArgumentCountError
		if errors.As(err, &countErr) {
			fs.Usage()
		}
		return err
	}

	gen, err := generator.Lookup(*target)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, optPairs)
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Fprintf(stderr, "Generating %d cases per family (target %s)\n", max(req.MaxMemberCount, 0), *target)
	}

	out, err := gen.Generate(context.Background(), req, cfg)
	if err != nil {
		return fmt.Errorf("generate header: %w", err)
	}

	if *dryRun {
		for _, name := range out.Names() {
			if _, err := stdout.Write(out.Files[name]); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		return nil
	}

	for _, name := range out.Names() {
		if err := generator.WriteFile(name, out.Files[name]); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		if *verbose {
			fmt.Fprintf(stderr, "Wrote %s\n", name)
		}
	}

	return nil
}

// loadConfig merges the options file (if any) with --opt pairs; pairs win.
func loadConfig(path string, pairs []string) (generator.Config, error) {
	var cfg generator.Config
	if path != "" {
		opts, err := generator.LoadOptions(path)
		if err != nil {
			return generator.Config{}, fmt.Errorf("load config: %w", err)
		}
		cfg = cfg.Merge(opts)
	}

	opts, err := generator.ParseOptions(pairs)
	if err != nil {
		return generator.Config{}, err
	}
	return cfg.Merge(opts), nil
}
