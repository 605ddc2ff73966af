// SPDX-License-Identifier: MPL-2.0

// Package domino classifies modules as good or bad by propagating the
// unresolvability of removed/forbidden modules through the dependency graph.
//
// A module is bad when it was itself removed, or when anything it depends on
// (directly or transitively) is bad: the domino effect. For every
// contaminated module the engine records the set of originally-removed
// modules responsible, never the intermediate carriers.
package domino

import (
	"sort"

	"yangdomino/internal/identity"
)

// Set is a collection of normalized module identities.
type Set map[string]struct{}

// Has reports whether name is a member.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in lexical order, for reproducible reporting.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Outcome is the converged partition produced by Run. Good and Bad are
// disjoint and together cover every scanned module.
type Outcome struct {
	Good Set
	Bad  Set

	// RootCause maps each contaminated module to the originally-removed
	// modules that caused it. Modules that are themselves roots (removed,
	// with no contaminated dependency) have no entry.
	RootCause map[string]Set
}

// Causes returns the sorted root causes recorded for name, or nil when the
// module is itself a root.
func (o Outcome) Causes(name string) []string {
	causes, ok := o.RootCause[name]
	if !ok {
		return nil
	}
	return causes.Sorted()
}

// Run partitions filesToScan into good and bad modules given the removed
// set and the current dependency map. Inputs are normalized here, so file
// names, versioned file names, and bare identities are all accepted.
//
// The computation is a pure function of its arguments: fresh sets are built
// on every call and nothing is carried over between invocations.
func Run(filesToScan, forbidden []string, deps map[string][]string) Outcome {
	good := make(Set, len(filesToScan))
	bad := make(Set, len(forbidden))
	for _, f := range forbidden {
		bad[identity.Normalize(f)] = struct{}{}
	}
	for _, f := range filesToScan {
		name := identity.Normalize(f)
		// A module both scanned and removed is bad, never good.
		if !bad.Has(name) {
			good[name] = struct{}{}
		}
	}
	return propagate(good, bad, deps)
}

// propagate runs the fixed-point closure: while any full pass contaminates
// at least one module, re-scan the whole remaining good set. Re-scanning
// everything (rather than only a frontier) deliberately re-absorbs
// root-cause unions contributed by modules that turned bad earlier in the
// same pass. Termination is guaranteed because good only shrinks.
func propagate(good, bad Set, deps map[string][]string) Outcome {
	rootCause := make(map[string]Set)

	for changed := true; changed; {
		changed = false
		for _, name := range good.Sorted() {
			for _, dep := range deps[name] {
				if !bad.Has(dep) {
					continue
				}
				delete(good, name)
				bad[name] = struct{}{}
				merge(rootCause, name, dep)
				changed = true
			}
		}
	}

	return Outcome{Good: good, Bad: bad, RootCause: rootCause}
}

// merge unions dep's root causes into name's. When dep has no recorded
// causes it is an original root and contributes itself. Sets are merged by
// value so two contaminated modules never alias the same underlying set.
func merge(rootCause map[string]Set, name, dep string) {
	causes := rootCause[name]
	if causes == nil {
		causes = make(Set)
		rootCause[name] = causes
	}
	if depCauses, ok := rootCause[dep]; ok {
		for c := range depCauses {
			causes[c] = struct{}{}
		}
		return
	}
	causes[dep] = struct{}{}
}
