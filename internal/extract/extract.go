// SPDX-License-Identifier: MPL-2.0

// Package extract builds module dependency maps from YANG source files.
//
// Two interchangeable strategies implement the same contract: the strict
// YangerExtractor invokes the yanger compiler per file and parses its
// structured stdout/stderr, while the permissive GrepExtractor pattern-scans
// raw text in a single external invocation. Callers pick one at startup and
// branch nowhere else.
package extract

import "context"

// Result is the outcome of one extraction pass over a set of input files.
type Result struct {
	// Incomplete holds input file paths whose dependency extraction was
	// aborted partway (the compiler stops reading imports after the first
	// missing module). They must be rescanned once the missing module is
	// supplied. Always empty for the permissive strategy.
	Incomplete map[string]struct{}

	// Deps maps a normalized module identity to the ordered dependency
	// names referenced by its import/include statements. Names are as
	// written in the source, not yet resolved against files on disk.
	Deps map[string][]string
}

// NewResult returns an empty Result with initialized maps.
func NewResult() *Result {
	return &Result{
		Incomplete: make(map[string]struct{}),
		Deps:       make(map[string][]string),
	}
}

// Extractor produces a dependency map for a set of YANG files.
//
// searchPath lists directories the strategy may hand to the external tool
// for import resolution; the permissive strategy ignores it.
type Extractor interface {
	Extract(ctx context.Context, files []string, searchPath []string) (*Result, error)
}
