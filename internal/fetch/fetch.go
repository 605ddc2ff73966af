// SPDX-License-Identifier: MPL-2.0

// Package fetch copies module files resolved from library trees into the
// working module set.
package fetch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Copy duplicates the module file at src into destDir, keeping its base
// name, and returns the destination path. Failures are per-module: the
// caller reports them and moves on to the next missing module.
func Copy(src, destDir string) (string, error) {
	dst := filepath.Join(destDir, filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return dst, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return dst, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return dst, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return dst, fmt.Errorf("failed to finish writing %s: %w", dst, err)
	}
	return dst, nil
}
