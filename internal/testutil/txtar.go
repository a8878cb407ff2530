// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for tuplegen.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed golden case from a txtar archive.
type Case struct {
	// Name is the test case name (the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Flags contains the comma separated entries of the "Flags: ..." line.
	Flags []string

	// Want maps relative paths (e.g., "aggregateMembersTuple.hpp") to
	// expected content.
	Want map[string][]byte

	archive *txtar.Archive
	file    string
}

// ParseCase parses a txtar archive into a golden Case.
// The archive should contain:
//   - A description comment, optionally with a "Flags: a=1, b=2" line
//   - One or more "want/<filename>" files with expected output
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
		archive:     ar,
	}

	c.parseFlags()

	for _, f := range ar.Files {
		relPath, ok := strings.CutPrefix(f.Name, "want/")
		if !ok {
			return nil, fmt.Errorf("unexpected file in archive: %q (expected want/*)", f.Name)
		}
		c.Want[relPath] = f.Data
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseFlags extracts flags from the "Flags: ..." line in the description.
func (c *Case) parseFlags() {
	for line := range strings.SplitSeq(c.Description, "\n") {
		line = strings.TrimSpace(line)
		flagStr, ok := strings.CutPrefix(line, "Flags:")
		if !ok {
			continue
		}
		for f := range strings.SplitSeq(flagStr, ",") {
			f = strings.TrimSpace(f)
			if f != "" {
				c.Flags = append(c.Flags, f)
			}
		}
		break
	}
}

// GenerateFunc produces output files from the case flags.
// It returns a map of filename to content.
type GenerateFunc func(flags []string) (map[string][]byte, error)

// Run executes the case using generate and reports differences from the
// expected output. With update set, the archive is rewritten instead.
func (c *Case) Run(t *testing.T, generate GenerateFunc, update bool) {
	t.Helper()

	got, err := generate(c.Flags)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if update {
		if c.file == "" {
			t.Fatalf("case %q was not loaded from a file", c.Name)
		}
		content := txtar.Format(UpdateArchive(c.archive, got))
		if err := os.WriteFile(c.file, content, 0o644); err != nil {
			t.Fatalf("write updated file: %v", err)
		}
		t.Logf("updated %s", c.file)
		return
	}

	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		if diff := cmp.Diff(normalizeContent(wantContent), normalizeContent(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent normalizes content for comparison:
// - Trims trailing spaces and carriage returns from each line
// - Trims trailing newlines
//
// Leading tabs are significant and kept.
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive returns a copy of ar with its want/* files replaced by got.
// Used for golden file updates with the -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		// txtar needs a trailing newline to terminate the file
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content[:len(content):len(content)], '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// LoadTestCases loads all txtar golden cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}
		c.file = file

		cases = append(cases, c)
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}

// FlagValue returns the value of a "key=value" entry in flags.
func FlagValue(flags []string, key string) (string, bool) {
	for _, f := range flags {
		if v, ok := strings.CutPrefix(f, key+"="); ok {
			return v, true
		}
	}
	return "", false
}
