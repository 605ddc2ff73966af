// SPDX-License-Identifier: MPL-2.0

// Package locate finds YANG module files by identity across directory lists.
package locate

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Match is a located module file.
type Match struct {
	// Path is the location of the first matching file, in directory order.
	Path string
	// Count is the total number of candidate files matching the identity
	// across every searched directory. Count > 1 means the identity is
	// ambiguous and the caller should surface a warning.
	Count int
}

// Find searches dirs, in the caller's order, for a file matching the module
// identity: a base name starting with "<name>@" (any revision) or exactly
// "<name>.yang". The first match in the first directory that has one wins;
// Count still totals candidates from all directories so ambiguity can be
// reported. A nil return means the module exists nowhere searched, which is
// a normal outcome, not an error.
//
// Unreadable directories are skipped: a missing search path contributes no
// candidates, same as an empty one.
func Find(name string, dirs []string, recursive bool) *Match {
	var found *Match
	count := 0

	for _, dir := range dirs {
		for _, candidate := range yangFiles(dir, recursive) {
			if !matches(name, filepath.Base(candidate)) {
				continue
			}
			count++
			if found == nil {
				found = &Match{Path: candidate}
			}
		}
	}

	if found != nil {
		found.Count = count
	}
	return found
}

// matches reports whether a file base name resolves to the module identity.
func matches(name, base string) bool {
	return base == name+".yang" || strings.HasPrefix(base, name+"@")
}

// yangFiles lists *.yang files in dir, walking subdirectories when
// recursive is set. Only regular files count; a directory named like a
// module is not one. Glob and WalkDir both visit in lexical order, so
// repeated searches of the same tree are deterministic.
func yangFiles(dir string, recursive bool) []string {
	if !recursive {
		found, err := filepath.Glob(filepath.Join(dir, "*.yang"))
		if err != nil {
			return nil
		}
		var files []string
		for _, f := range found {
			if info, statErr := os.Stat(f); statErr == nil && info.Mode().IsRegular() {
				files = append(files, f)
			}
		}
		return files
	}

	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable subtrees, keep walking the rest.
			return nil
		}
		if !d.IsDir() && filepath.Ext(path) == ".yang" {
			files = append(files, path)
		}
		return nil
	})
	return files
}
