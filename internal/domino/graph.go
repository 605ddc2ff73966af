// SPDX-License-Identifier: MPL-2.0

package domino

import "sort"

// Cycles returns the module identities that participate in at least one
// dependency cycle, in lexical order. It is a diagnostic only: cycles never
// change a domino outcome (propagation only flips good to bad, so cycles
// cannot oscillate), but they usually indicate a modeling mistake in the
// scanned modules worth surfacing in debug output.
//
// Detection is Kahn-style elimination: modules nobody depends on are peeled
// off repeatedly; whatever remains is a cycle or a dependency of one, which
// is enough to point a human at the knot.
func Cycles(deps map[string][]string) []string {
	// Only edges between modules that both have dependency entries can
	// close a cycle; a name that never appears as a key has no outgoing
	// edges and drops out in the first round anyway.
	inDegree := make(map[string]int, len(deps))
	for name := range deps {
		inDegree[name] = 0
	}
	for _, targets := range deps {
		for _, dep := range targets {
			if _, ok := inDegree[dep]; ok {
				inDegree[dep]++
			}
		}
	}

	queue := make([]string, 0, len(inDegree))
	for name, d := range inDegree {
		if d == 0 {
			queue = append(queue, name)
		}
	}

	remaining := len(inDegree)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		remaining--
		for _, dep := range deps[name] {
			if _, ok := inDegree[dep]; !ok {
				continue
			}
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if remaining == 0 {
		return nil
	}
	var cyclic []string
	for name, d := range inDegree {
		if d > 0 {
			cyclic = append(cyclic, name)
		}
	}
	sort.Strings(cyclic)
	return cyclic
}
