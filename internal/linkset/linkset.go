// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

// Package linkset enumerates candidate files in a directory of symbolic
// links and resolves them to canonical absolute paths.
package linkset

import (
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// Skip records a directory entry that matched the pattern but could not be
// resolved to an existing file.
type Skip struct {
	Link string
	Err  error
}

// Set is the result of resolving one candidate directory.
type Set struct {
	// Resolved holds canonical absolute paths of the resolvable entries,
	// in directory order.
	Resolved []string
	// Skipped holds the entries whose targets were missing or cyclic.
	Skipped []Skip
}

// Resolve enumerates entries of dir whose names match the glob pattern and
// resolves each through any symlinks to a canonical absolute path. Entries
// with dangling targets are reported in Skipped rather than failing the
// whole directory.
func Resolve(dir, pattern string) (Set, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return Set{}, errors.Wrapf(err, "pattern %q", pattern)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Set{}, errors.Wrap(err, "reading candidate directory")
	}
	var set Set
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Pattern validity was checked above; Match cannot fail here.
		if ok, _ := path.Match(pattern, entry.Name()); !ok {
			continue
		}
		link := filepath.Join(dir, entry.Name())
		resolved, err := filepath.EvalSymlinks(link)
		if err != nil {
			set.Skipped = append(set.Skipped, Skip{Link: link, Err: err})
			continue
		}
		abs, err := filepath.Abs(resolved)
		if err != nil {
			set.Skipped = append(set.Skipped, Skip{Link: link, Err: err})
			continue
		}
		// A link can match the pattern yet point at a directory or device;
		// only regular files are candidates.
		info, err := os.Stat(abs)
		if err != nil {
			set.Skipped = append(set.Skipped, Skip{Link: link, Err: err})
			continue
		}
		if !info.Mode().IsRegular() {
			set.Skipped = append(set.Skipped, Skip{Link: link, Err: errors.Errorf("target %s is not a regular file", abs)})
			continue
		}
		set.Resolved = append(set.Resolved, abs)
	}
	return set, nil
}
