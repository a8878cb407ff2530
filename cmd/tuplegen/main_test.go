// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/albertocavalcante/tuplegen/generator"
)

func TestRun_WritesHeader(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "flex", "reflection", "autogen", "aggregateMembersTuple.hpp")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--verbose", out, "3"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(got, []byte("#define FLEX_REFLECTION_MAX_AGGREGATE_MEMBERS_COUNT 3\n")) {
		t.Errorf("output missing max count macro:\n%s", got)
	}
	if n := bytes.Count(got, []byte("if constexpr")); n != 6 {
		t.Errorf("got %d cases, want 6", n)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout: %q", stdout.String())
	}
	for _, want := range []string{"Generating 3 cases per family (target cpp)", "Wrote " + out} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr.String())
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "tuple.hpp")

	var contents [][]byte
	for range 2 {
		var stdout, stderr bytes.Buffer
		if err := run([]string{out, "12"}, &stdout, &stderr); err != nil {
			t.Fatalf("run: %v", err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		contents = append(contents, data)
	}
	if !bytes.Equal(contents[0], contents[1]) {
		t.Error("repeated runs produced different output")
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target func(err error) bool
	}{
		{name: "no args", args: nil, target: isArgumentCount},
		{name: "one arg", args: []string{"OUT"}, target: isArgumentCount},
		{name: "three args", args: []string{"OUT", "3", "extra"}, target: isArgumentCount},
		{name: "non numeric", args: []string{"OUT", "abc"}, target: isParseError},
		{name: "float", args: []string{"OUT", "2.5"}, target: isParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			out := filepath.Join(dir, "sub", "tuple.hpp")
			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				args[i] = strings.ReplaceAll(a, "OUT", out)
			}

			var stdout, stderr bytes.Buffer
			err := run(args, &stdout, &stderr)
			if err == nil || !tt.target(err) {
				t.Fatalf("run(%q) error = %v", args, err)
			}
			assertEmptyDir(t, dir)
		})
	}
}

func TestRun_ArgumentCountPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"only-one"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "invalid amount of args") {
		t.Fatalf("got error %v", err)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("usage not printed:\n%s", stderr.String())
	}
}

func TestRun_NonPositiveBound(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tuple.hpp")
	var stdout, stderr bytes.Buffer
	if err := run([]string{out, "-2"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(got, []byte("if constexpr")) {
		t.Errorf("non-positive bound produced cases:\n%s", got)
	}
	if n := bytes.Count(got, []byte("makeAggregateMembersTuple(")); n != 2 {
		t.Errorf("got %d overloads, want 2", n)
	}
}

func TestRun_WritesThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real", "h.hpp")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.hpp")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := run([]string{link, "1"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("output symlink was replaced by a regular file")
	}
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(got, []byte("#pragma once\n")) {
		t.Errorf("symlink target not updated: %q", got)
	}
}

func TestRun_CountWithWhitespace(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tuple.hpp")
	var stdout, stderr bytes.Buffer
	if err := run([]string{out, " 3\n"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(got, []byte("#define FLEX_REFLECTION_MAX_AGGREGATE_MEMBERS_COUNT 3\n")) {
		t.Errorf("count not parsed as 3:\n%s", got)
	}
}

func TestRun_DryRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "tuple.hpp")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--dry-run", out, "2"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "#pragma once\n") {
		t.Errorf("dry run did not print header:\n%s", stdout.String())
	}
	if !strings.HasSuffix(stdout.String(), "} // namespace flex::reflection") {
		t.Errorf("dry run output truncated:\n%s", stdout.String())
	}
	assertEmptyDir(t, dir)
}

func TestRun_Options(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tuplegen.yaml")
	if err := os.WriteFile(cfgPath, []byte("namespace: my::refl\nslot-prefix: f\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	args := []string{"--dry-run", "--config", cfgPath, "--opt", "slot-prefix=s", filepath.Join(dir, "t.hpp"), "2"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := stdout.String()
	for _, want := range []string{"namespace my::refl {", "const auto &[s0,s1] {value};", "} // namespace my::refl"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(got, "f0") {
		t.Error("--opt did not override the config file")
	}
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "tuple.hpp")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown target", args: []string{"--target", "rust", out, "2"}, wantErr: `unknown target "rust"`},
		{name: "bad option", args: []string{"--opt", "namespace", out, "2"}, wantErr: "invalid option"},
		{name: "unknown option", args: []string{"--opt", "package=x", out, "2"}, wantErr: "unknown cpp option"},
		{name: "missing config", args: []string{"--config", filepath.Join(dir, "nope.yaml"), out, "2"}, wantErr: "load config"},
		{name: "unknown flag", args: []string{"--frobnicate", out, "2"}, wantErr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("got error %v, want containing %q", err, tt.wantErr)
			}
			if _, err := os.Stat(out); !os.IsNotExist(err) {
				t.Errorf("output written despite failure")
			}
		})
	}
}

func TestRun_FilesystemError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	err := run([]string{filepath.Join(blocker, "tuple.hpp"), "2"}, &stdout, &stderr)
	var fsErr *generator.FilesystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("got error %v, want *generator.FilesystemError", err)
	}
}

func TestRun_Info(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"--version"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout.String(), "tuplegen dev") {
		t.Errorf("version output = %q", stdout.String())
	}

	stdout.Reset()
	if err := run([]string{"--list-targets"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout.String(), "cpp ") || !strings.Contains(stdout.String(), ".hpp") {
		t.Errorf("list-targets output = %q", stdout.String())
	}

	stderr.Reset()
	if err := run([]string{"--help"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "tuplegen [flags] <output-path> <max-member-count>") {
		t.Errorf("help output = %q", stderr.String())
	}
}

func isArgumentCount(err error) bool {
	var target *generator.ArgumentCountError
	return errors.As(err, &target)
}

func isParseError(err error) bool {
	var target *generator.ParseError
	return errors.As(err, &target)
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files in %s, found %d", dir, len(entries))
	}
}
