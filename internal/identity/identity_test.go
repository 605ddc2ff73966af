// SPDX-License-Identifier: MPL-2.0

package identity

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain file", "ietf-interfaces.yang", "ietf-interfaces"},
		{"revision suffix", "ietf-interfaces@2018-02-20.yang", "ietf-interfaces"},
		{"directory prefix", "./modules/ietf-interfaces.yang", "ietf-interfaces"},
		{"deep path with revision", "/lib/std/ietf-ip@2014-06-16.yang", "ietf-ip"},
		{"no extension", "ietf-interfaces", "ietf-interfaces"},
		{"already normalized", "ietf-interfaces", "ietf-interfaces"},
		{"dotted revision", "foo@2020.01.01.yang", "foo"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.path); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{"foo@2020-01-01.yang", "foo.yang", "foo", "./a/b/foo@1.yang"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestNormalizeRevisionEquivalence(t *testing.T) {
	t.Parallel()
	a := Normalize("foo@2020-01-01.yang")
	b := Normalize("foo.yang")
	if a != b || a != "foo" {
		t.Errorf("revision-suffix equivalence broken: %q vs %q", a, b)
	}
}

func TestStripRevision(t *testing.T) {
	t.Parallel()
	if got := StripRevision("foo@bar@baz"); got != "foo" {
		t.Errorf("StripRevision truncates at first '@': got %q", got)
	}
	if got := StripRevision("foo"); got != "foo" {
		t.Errorf("StripRevision without '@' must be identity: got %q", got)
	}
}
