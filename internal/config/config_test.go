// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Parallel()
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(cfg.ModuleDirs, []string{"."}) {
		t.Errorf("default ModuleDirs = %v, want [.]", cfg.ModuleDirs)
	}
	if cfg.ExtraDir != "." {
		t.Errorf("default ExtraDir = %q, want \".\"", cfg.ExtraDir)
	}
	if cfg.Scanner.UseGrep {
		t.Error("default strategy must be the strict scan")
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeConfig(t, dir, `
module_dirs: ["./mods", "./vendor"]
extra_dir: "./fetched"
scanner: {
	yanger_path: "/opt/yanger/bin/yanger"
	use_grep: true
}
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(cfg.ModuleDirs, []string{"./mods", "./vendor"}) {
		t.Errorf("ModuleDirs = %v", cfg.ModuleDirs)
	}
	if cfg.ExtraDir != "./fetched" {
		t.Errorf("ExtraDir = %q", cfg.ExtraDir)
	}
	if cfg.Scanner.YangerPath != "/opt/yanger/bin/yanger" || !cfg.Scanner.UseGrep {
		t.Errorf("Scanner = %+v", cfg.Scanner)
	}
	// Untouched fields keep their defaults.
	if cfg.UI.Verbose {
		t.Error("ui.verbose default must stay false")
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeConfig(t, dir, `scanner: { use_grep: "yes" }`)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if !strings.Contains(err.Error(), "use_grep") {
		t.Errorf("error does not name the offending field: %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeConfig(t, dir, `extra_dir: "   "`)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("expected validation error for whitespace-only extra_dir")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error not detectable via errors.Is(ErrInvalidConfig): %v", err)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	t.Parallel()
	_, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue"),
	})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestConfigFileLifecycle(t *testing.T) {
	// Not parallel: SetConfigDirOverride mutates package-level state.
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if got, err := ConfigDir(); err != nil || got != dir {
		t.Fatalf("ConfigDir() = %q, %v; want override %q", got, err, dir)
	}

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig: %v", err)
	}
	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("default config file not written: %v", err)
	}

	// With no explicit options, loading resolves through the override.
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("load of created default config: %v", err)
	}
	if !slices.Equal(cfg.ModuleDirs, []string{"."}) {
		t.Errorf("ModuleDirs = %v, want defaults", cfg.ModuleDirs)
	}

	// A second init must leave the existing file alone.
	cfg.ExtraDir = "./fetched"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig over existing file: %v", err)
	}

	reloaded, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("reload after Save: %v", err)
	}
	if reloaded.ExtraDir != "./fetched" {
		t.Errorf("ExtraDir = %q, want saved value", reloaded.ExtraDir)
	}
}

func TestGenerateCUERoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	original := &Config{
		ModuleDirs:  []string{"./mods"},
		LibraryDirs: []string{"/lib/yang"},
		ExtraDir:    "./out",
		Scanner:     ScannerConfig{YangerPath: "yanger2", UseGrep: true},
		UI:          UIConfig{Verbose: true},
	}
	writeConfig(t, dir, GenerateCUE(original))

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("generated CUE failed to load: %v", err)
	}
	if !slices.Equal(cfg.ModuleDirs, original.ModuleDirs) ||
		!slices.Equal(cfg.LibraryDirs, original.LibraryDirs) ||
		cfg.ExtraDir != original.ExtraDir ||
		cfg.Scanner.YangerPath != original.Scanner.YangerPath ||
		cfg.Scanner.UseGrep != original.Scanner.UseGrep ||
		cfg.UI.Verbose != original.UI.Verbose {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", cfg, original)
	}
}
