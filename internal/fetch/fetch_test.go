// SPDX-License-Identifier: MPL-2.0

package fetch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyKeepsBaseName(t *testing.T) {
	t.Parallel()
	srcDir := t.TempDir()
	dstDir := t.TempDir()
	src := filepath.Join(srcDir, "ietf-ip@2014-06-16.yang")
	if err := os.WriteFile(src, []byte("module ietf-ip {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dst, err := Copy(src, dstDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(dst) != "ietf-ip@2014-06-16.yang" {
		t.Errorf("destination base name = %s", filepath.Base(dst))
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "module ietf-ip {}\n" {
		t.Errorf("copied content mismatch: %q", got)
	}
}

func TestCopyMissingSource(t *testing.T) {
	t.Parallel()
	if _, err := Copy(filepath.Join(t.TempDir(), "gone.yang"), t.TempDir()); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyUnwritableDestination(t *testing.T) {
	t.Parallel()
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "m.yang")
	if err := os.WriteFile(src, []byte("module m {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Copy(src, filepath.Join(srcDir, "no-such-subdir")); err == nil {
		t.Fatal("expected error for missing destination directory")
	}
}
