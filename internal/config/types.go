// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidScannerConfig is the sentinel error wrapped by InvalidScannerConfigError.
	ErrInvalidScannerConfig = errors.New("invalid scanner config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ScannerConfig selects and parameterizes the dependency extraction strategy.
	ScannerConfig struct {
		// YangerPath is the yanger executable used by the strict strategy.
		// The zero value ("") means "use the binary found on PATH".
		YangerPath string `mapstructure:"yanger_path"`

		// GrepPath is the text-search executable used by the permissive
		// strategy. The zero value ("") means "use egrep from PATH".
		GrepPath string `mapstructure:"grep_path"`

		// UseGrep selects the permissive strategy by default.
		UseGrep bool `mapstructure:"use_grep"`
	}

	// InvalidScannerConfigError is returned when a ScannerConfig value is
	// unusable. It wraps ErrInvalidScannerConfig for errors.Is() compatibility.
	InvalidScannerConfigError struct {
		Reason string
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		// Verbose enables verbose output.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the resolved yangdomino configuration: built-in defaults,
	// overlaid by the config file, overlaid by command-line flags.
	Config struct {
		// ModuleDirs are searched (non-recursively) when resolving
		// referenced dependencies against the working module set.
		ModuleDirs []string `mapstructure:"module_dirs"`

		// LibraryDirs are searched recursively when fetching modules the
		// working set cannot resolve.
		LibraryDirs []string `mapstructure:"library_dirs"`

		// ExtraDir receives fetched module files.
		ExtraDir string `mapstructure:"extra_dir"`

		Scanner ScannerConfig `mapstructure:"scanner"`
		UI      UIConfig      `mapstructure:"ui"`
	}

	// InvalidConfigError aggregates the validation failures of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		Errs []error
	}
)

// Error implements the error interface.
func (e *InvalidScannerConfigError) Error() string {
	return fmt.Sprintf("invalid scanner config: %s", e.Reason)
}

// Unwrap returns ErrInvalidScannerConfig for errors.Is().
func (e *InvalidScannerConfigError) Unwrap() error { return ErrInvalidScannerConfig }

// IsValid reports whether the scanner configuration is usable.
// Binary paths may be empty (PATH lookup) but never whitespace-only.
func (c ScannerConfig) IsValid() (bool, []error) {
	var errs []error
	if c.YangerPath != "" && strings.TrimSpace(c.YangerPath) == "" {
		errs = append(errs, &InvalidScannerConfigError{Reason: "yanger_path is whitespace-only"})
	}
	if c.GrepPath != "" && strings.TrimSpace(c.GrepPath) == "" {
		errs = append(errs, &InvalidScannerConfigError{Reason: "grep_path is whitespace-only"})
	}
	return len(errs) == 0, errs
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is().
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid reports whether the whole configuration is usable.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(c.ExtraDir) == "" {
		errs = append(errs, fmt.Errorf("extra_dir must not be empty"))
	}
	for i, dir := range c.ModuleDirs {
		if strings.TrimSpace(dir) == "" {
			errs = append(errs, fmt.Errorf("module_dirs[%d] must not be empty", i))
		}
	}
	for i, dir := range c.LibraryDirs {
		if strings.TrimSpace(dir) == "" {
			errs = append(errs, fmt.Errorf("library_dirs[%d] must not be empty", i))
		}
	}
	if ok, scannerErrs := c.Scanner.IsValid(); !ok {
		errs = append(errs, scannerErrs...)
	}
	return len(errs) == 0, errs
}

// DefaultConfig returns the built-in defaults: scan the current directory
// with yanger, fetch nothing, copy into the current directory.
func DefaultConfig() *Config {
	return &Config{
		ModuleDirs:  []string{"."},
		LibraryDirs: nil,
		ExtraDir:    ".",
		Scanner: ScannerConfig{
			YangerPath: "",
			GrepPath:   "",
			UseGrep:    false,
		},
		UI: UIConfig{Verbose: false},
	}
}
