// SPDX-License-Identifier: MPL-2.0

// Package scan drives the extract / propagate / fetch loop and renders the
// dependency, removal, and library-copy reports.
package scan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"yangdomino/internal/domino"
	"yangdomino/internal/extract"
	"yangdomino/internal/fetch"
	"yangdomino/internal/locate"
)

// Runner holds the configuration for one orchestrated scan. Fields are set
// once by the caller; Run never mutates them.
type Runner struct {
	// Extractor produces the dependency map for each pass.
	Extractor extract.Extractor

	// ModuleDirs are searched (non-recursively) when resolving referenced
	// dependencies. ExtraDir is treated as a module dir as well, so fetched
	// files resolve on the next pass.
	ModuleDirs []string

	// LibraryDirs are searched recursively for modules the working set
	// cannot resolve. Empty means no fetching.
	LibraryDirs []string

	// ExtraDir receives fetched module files.
	ExtraDir string

	// Remove lists forbidden/removed modules; non-empty selects the domino
	// removal report.
	Remove []string

	// Debug enables per-pass state logging and cycle diagnostics.
	Debug bool

	Logger *slog.Logger
	Out    io.Writer
}

// Run scans files and every file fetched along the way, until a pass leaves
// nothing to rescan. Each pass rebuilds the dependency map and found map
// from scratch; only the file set carries over between passes.
func (r *Runner) Run(ctx context.Context, files []string) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	moduleDirs := r.moduleDirs()
	files = dedup(files)

	for len(files) > 0 {
		if r.Debug {
			logger.Debug("scanning", "files", files)
		}

		res, err := r.Extractor.Extract(ctx, files, moduleDirs)
		if err != nil {
			return fmt.Errorf("dependency extraction failed: %w", err)
		}
		if r.Debug {
			logger.Debug("dependency map built", "modules", len(res.Deps))
			if cycles := domino.Cycles(res.Deps); cycles != nil {
				logger.Debug("dependency cycles detected", "modules", cycles)
			}
		}

		if len(r.Remove) > 0 {
			r.reportDomino(out, files, res.Deps)
		}

		next := sortedKeys(res.Incomplete)

		foundMap := r.resolve(res.Deps, moduleDirs, logger)

		if len(r.Remove) == 0 && len(r.LibraryDirs) == 0 {
			r.reportPlain(out, res.Deps, foundMap)
			return nil
		}

		if len(r.LibraryDirs) > 0 {
			next = append(next, r.fetchMissing(out, foundMap, logger)...)
		}

		next = dedup(next)
		if sameSet(files, next) {
			// No new files appeared, so rescanning would repeat this pass
			// verbatim. The unresolved imports stay unresolved.
			logger.Warn("stopping: remaining files cannot make progress", "files", next)
			return nil
		}
		files = next
	}
	return nil
}

// moduleDirs returns the configured module directories with ExtraDir
// appended when it is not already listed.
func (r *Runner) moduleDirs() []string {
	dirs := append([]string(nil), r.ModuleDirs...)
	for _, dir := range dirs {
		if dir == r.ExtraDir {
			return dirs
		}
	}
	return append(dirs, r.ExtraDir)
}

// reportDomino runs the propagation engine and prints one line per bad
// module, sorted: "Bad <mod> : <root causes>" for contaminated modules,
// "Rem <mod>" for the removed roots themselves.
func (r *Runner) reportDomino(out io.Writer, files []string, deps map[string][]string) {
	outcome := domino.Run(files, r.Remove, deps)
	for _, name := range outcome.Bad.Sorted() {
		if causes := outcome.Causes(name); causes != nil {
			fmt.Fprintf(out, "Bad %s : %s\n", name, strings.Join(causes, " "))
		} else {
			fmt.Fprintf(out, "Rem %s\n", name)
		}
	}
}

// resolve locates every referenced dependency against the module
// directories. A nil entry means the module was not found, which is what
// the plain report and the library fetch key off.
func (r *Runner) resolve(deps map[string][]string, moduleDirs []string, logger *slog.Logger) map[string]*locate.Match {
	foundMap := make(map[string]*locate.Match)
	for _, importer := range sortedDepKeys(deps) {
		for _, dep := range deps[importer] {
			if _, done := foundMap[dep]; done {
				continue
			}
			m := locate.Find(dep, moduleDirs, false)
			foundMap[dep] = m
			if m != nil && m.Count > 1 {
				logger.Warn("module identity is ambiguous", "module", dep, "chosen", m.Path, "candidates", m.Count)
			}
		}
	}
	return foundMap
}

// reportPlain prints one line per scanned module: "Ok " when every
// dependency resolved, otherwise the missing count, followed by the
// dependency names with unresolved ones annotated "<MISSING>".
func (r *Runner) reportPlain(out io.Writer, deps map[string][]string, foundMap map[string]*locate.Match) {
	for _, importer := range sortedDepKeys(deps) {
		var depStr strings.Builder
		missing := 0
		for _, dep := range deps[importer] {
			depStr.WriteString(dep)
			if foundMap[dep] == nil {
				missing++
				depStr.WriteString("<MISSING> ")
			} else {
				depStr.WriteString(" ")
			}
		}
		status := "Ok "
		if missing > 0 {
			status = fmt.Sprintf("%3d", missing)
		}
		fmt.Fprintf(out, "%s %s : %s\n", status, importer, depStr.String())
	}
}

// fetchMissing searches the library directories for every unresolved
// dependency and copies each hit into ExtraDir. Copies land in the returned
// list so the next pass scans them. Failures are per-module: reported
// inline, never aborting the remaining fetches.
func (r *Runner) fetchMissing(out io.Writer, foundMap map[string]*locate.Match, logger *slog.Logger) []string {
	var fetched []string
	for _, name := range sortedMissing(foundMap) {
		if r.Debug {
			logger.Debug("searching libraries", "module", name)
		}
		m := locate.Find(name, r.LibraryDirs, true)
		if m == nil {
			fmt.Fprintf(out, "%s : Unable to find module in any of the specified library directories\n", name)
			continue
		}
		foundMap[name] = m
		if m.Count > 1 {
			logger.Warn("module identity is ambiguous", "module", name, "chosen", m.Path, "candidates", m.Count)
		}

		dst, err := fetch.Copy(m.Path, r.ExtraDir)
		if err != nil {
			fmt.Fprintf(out, "%s : Unable to copy %s to %s : %v\n", name, m.Path, dst, err)
			continue
		}
		fmt.Fprintf(out, "%s : Copied %s to %s\n", name, m.Path, dst)
		fetched = append(fetched, dst)
	}
	return fetched
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedDepKeys(deps map[string][]string) []string {
	out := make([]string, 0, len(deps))
	for k := range deps {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedMissing(foundMap map[string]*locate.Match) []string {
	var out []string
	for name, m := range foundMap {
		if m == nil {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// dedup keeps the first occurrence of each file, preserving order.
func dedup(files []string) []string {
	seen := make(map[string]struct{}, len(files))
	out := files[:0:0]
	for _, f := range files {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// sameSet reports whether a and b contain the same files, order aside.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, f := range a {
		set[f] = struct{}{}
	}
	for _, f := range b {
		if _, ok := set[f]; !ok {
			return false
		}
	}
	return true
}
