// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Output contains generated files.
type Output struct {
	// Files maps filename to content.
	Files map[string][]byte
}

// Names returns the output file names, sorted.
func (o *Output) Names() []string {
	names := make([]string, 0, len(o.Files))
	for name := range o.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Single returns an Output with a single file.
func Single(name string, content []byte) *Output {
	return &Output{Files: map[string][]byte{name: content}}
}

// FilesystemError reports a failure to create or write the output file.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// WriteFile writes data to path, creating missing parent directories.
// The content is written to a temporary file in the same directory and
// renamed into place, so path holds either its previous content or data.
//
// A symlinked path is written through to its target, and an existing
// file keeps its permissions.
func WriteFile(path string, data []byte) error {
	target, err := resolveTarget(path)
	if err != nil {
		return &FilesystemError{Op: "resolve", Path: path, Err: err}
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &FilesystemError{Op: "create directory", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return &FilesystemError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &FilesystemError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return &FilesystemError{Op: "chmod", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &FilesystemError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, target); err != nil {
		return &FilesystemError{Op: "rename", Path: path, Err: err}
	}
	committed = true
	return nil
}

// maxLinkDepth bounds symlink chains followed by resolveTarget.
const maxLinkDepth = 40

// resolveTarget returns the file that writing to path should replace:
// path itself, or the final target of a symlink chain. Dangling links
// resolve to the missing file they point at.
func resolveTarget(path string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved, nil
	}

	target := path
	for range maxLinkDepth {
		info, err := os.Lstat(target)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return target, nil
		}
		link, err := os.Readlink(target)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(target), link)
		}
		target = link
	}
	return "", fmt.Errorf("too many levels of symbolic links")
}
