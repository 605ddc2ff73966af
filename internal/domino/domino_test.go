// SPDX-License-Identifier: MPL-2.0

package domino

import (
	"slices"
	"testing"

	"yangdomino/internal/identity"
)

func TestRunBasicScenario(t *testing.T) {
	t.Parallel()
	// A depends on removed B; C depends on D which is absent from the map.
	deps := map[string][]string{
		"A": {"B"},
		"B": {},
		"C": {"D"},
	}
	out := Run([]string{"A", "B", "C"}, []string{"B"}, deps)

	if !slices.Equal(out.Good.Sorted(), []string{"C"}) {
		t.Errorf("Good = %v, want [C]", out.Good.Sorted())
	}
	if !slices.Equal(out.Bad.Sorted(), []string{"A", "B"}) {
		t.Errorf("Bad = %v, want [A B]", out.Bad.Sorted())
	}
	if !slices.Equal(out.Causes("A"), []string{"B"}) {
		t.Errorf("Causes(A) = %v, want [B]", out.Causes("A"))
	}
	if out.Causes("B") != nil {
		t.Errorf("B is itself a root, Causes(B) = %v, want nil", out.Causes("B"))
	}
}

func TestRunPartitionIsDisjointAndCovering(t *testing.T) {
	t.Parallel()
	files := []string{"a.yang", "b@2020-01-01.yang", "c.yang", "d.yang"}
	deps := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {},
		"d": {"missing"},
	}
	out := Run(files, []string{"c.yang"}, deps)

	for name := range out.Good {
		if out.Bad.Has(name) {
			t.Errorf("%q present in both Good and Bad", name)
		}
	}
	for _, f := range files {
		name := identity.Normalize(f)
		if !out.Good.Has(name) && !out.Bad.Has(name) {
			t.Errorf("scanned module %q missing from both partitions", name)
		}
	}
	// c removed, b depends on c, a depends on b: the whole chain topples.
	if !slices.Equal(out.Bad.Sorted(), []string{"a", "b", "c"}) {
		t.Errorf("Bad = %v, want [a b c]", out.Bad.Sorted())
	}
}

func TestRunTransitiveRootCauses(t *testing.T) {
	t.Parallel()
	// Two removed roots both reach "top" via different chains; the recorded
	// causes must be the original roots, never the intermediates.
	deps := map[string][]string{
		"top":  {"mid1", "mid2"},
		"mid1": {"root1"},
		"mid2": {"root2"},
	}
	out := Run([]string{"top", "mid1", "mid2", "root1", "root2"},
		[]string{"root1", "root2"}, deps)

	if !slices.Equal(out.Causes("top"), []string{"root1", "root2"}) {
		t.Errorf("Causes(top) = %v, want [root1 root2]", out.Causes("top"))
	}
	for _, m := range []string{"top", "mid1", "mid2"} {
		for _, cause := range out.Causes(m) {
			if cause != "root1" && cause != "root2" {
				t.Errorf("Causes(%s) contains intermediate %q", m, cause)
			}
		}
	}
}

func TestRunForbiddenOverlapLandsInBad(t *testing.T) {
	t.Parallel()
	out := Run([]string{"x.yang"}, []string{"x.yang"}, map[string][]string{"x": {}})
	if out.Good.Has("x") {
		t.Error("module both scanned and removed must not be good")
	}
	if !out.Bad.Has("x") {
		t.Error("module both scanned and removed must be bad")
	}
}

func TestRunCycleUntouchedStaysGood(t *testing.T) {
	t.Parallel()
	deps := map[string][]string{
		"p": {"q"},
		"q": {"r"},
		"r": {"p"},
	}
	out := Run([]string{"p", "q", "r"}, []string{"z"}, deps)
	if !slices.Equal(out.Good.Sorted(), []string{"p", "q", "r"}) {
		t.Errorf("cycle not reachable from a bad module must stay good, got Bad=%v", out.Bad.Sorted())
	}
}

func TestRunCycleReachableFromBadTopples(t *testing.T) {
	t.Parallel()
	deps := map[string][]string{
		"p": {"q"},
		"q": {"r"},
		"r": {"p", "doomed"},
	}
	out := Run([]string{"p", "q", "r", "doomed"}, []string{"doomed"}, deps)
	if !slices.Equal(out.Bad.Sorted(), []string{"doomed", "p", "q", "r"}) {
		t.Errorf("Bad = %v, want the whole cycle plus the root", out.Bad.Sorted())
	}
	for _, m := range []string{"p", "q", "r"} {
		if !slices.Equal(out.Causes(m), []string{"doomed"}) {
			t.Errorf("Causes(%s) = %v, want [doomed]", m, out.Causes(m))
		}
	}
}

func TestRunIdempotentFixedPoint(t *testing.T) {
	t.Parallel()
	deps := map[string][]string{
		"a": {"b"},
		"b": {"gone"},
		"c": {},
	}
	first := Run([]string{"a", "b", "c", "gone"}, []string{"gone"}, deps)
	// Re-running with the converged partition as inputs must not move anything.
	second := Run(first.Good.Sorted(), first.Bad.Sorted(), deps)
	if !slices.Equal(first.Good.Sorted(), second.Good.Sorted()) {
		t.Errorf("Good changed on re-run: %v vs %v", first.Good.Sorted(), second.Good.Sorted())
	}
	if !slices.Equal(first.Bad.Sorted(), second.Bad.Sorted()) {
		t.Errorf("Bad changed on re-run: %v vs %v", first.Bad.Sorted(), second.Bad.Sorted())
	}
}

func TestRunRootCauseSetsDoNotAlias(t *testing.T) {
	t.Parallel()
	// a and b share the contaminated dependency mid; mutating one recorded
	// set afterwards must not leak into the other.
	deps := map[string][]string{
		"a":   {"mid"},
		"b":   {"mid"},
		"mid": {"root"},
	}
	out := Run([]string{"a", "b", "mid", "root"}, []string{"root"}, deps)
	out.RootCause["a"]["injected"] = struct{}{}
	if out.RootCause["b"].Has("injected") {
		t.Error("root-cause sets are aliased between modules")
	}
}

func TestRunNormalizesInputs(t *testing.T) {
	t.Parallel()
	deps := map[string][]string{"foo": {"bar"}, "bar": {}}
	out := Run([]string{"./mods/foo@2021-06-01.yang", "bar.yang"}, []string{"bar@2019-01-01.yang"}, deps)
	if !out.Bad.Has("foo") || !out.Bad.Has("bar") {
		t.Errorf("versioned/pathed inputs not normalized, Bad = %v", out.Bad.Sorted())
	}
}
