// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGetKnownIssues(t *testing.T) {
	t.Parallel()
	for _, id := range []Id{ConfigLoadFailedId, YangerNotFoundId, GrepScanFailedId, NoInputFilesId} {
		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil for a cataloged issue", id)
		}
	}
	if Get(Id(9999)) != nil {
		t.Error("Get for unknown id must return nil")
	}
}

func TestIssueRenderUsesMarkdown(t *testing.T) {
	t.Parallel()
	// Stub the renderer so the test asserts on content, not glamour styling.
	orig := render
	render = func(in, _ string) (string, error) { return in, nil }
	defer func() { render = orig }()

	out, err := Get(YangerNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "yanger") {
		t.Errorf("rendered issue missing body text:\n%s", out)
	}
	if !strings.Contains(out, "See also") {
		t.Errorf("rendered issue missing doc links section:\n%s", out)
	}
	// Doc links must carry a destination, not just bracketed text.
	for _, link := range Get(YangerNotFoundId).DocLinks() {
		want := "[" + string(link) + "](" + string(link) + ")"
		if !strings.Contains(out, want) {
			t.Errorf("rendered issue missing linked destination %s:\n%s", want, out)
		}
	}
}

func TestValuesCoversCatalog(t *testing.T) {
	t.Parallel()
	if got := len(Values()); got != len(issues) {
		t.Errorf("Values() returned %d issues, want %d", got, len(issues))
	}
}
