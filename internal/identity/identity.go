// SPDX-License-Identifier: MPL-2.0

// Package identity derives canonical YANG module identities from file paths.
//
// Two files that name the same logical module at different revisions, e.g.
// "ietf-interfaces@2018-02-20.yang" and "ietf-interfaces.yang", collapse to
// the single identity "ietf-interfaces". Every map key and set member in the
// dependency pipeline uses this normalized form.
package identity

import (
	"path/filepath"
	"strings"
)

// Normalize derives the module identity for a file path: the last path
// component with its extension and any "@revision" suffix removed.
// It never fails and is idempotent, so already-normalized names pass
// through unchanged.
func Normalize(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return StripRevision(stem)
}

// StripRevision truncates a module name at the first '@'. Names without a
// revision suffix are returned unchanged.
func StripRevision(name string) string {
	if i := strings.IndexByte(name, '@'); i >= 0 {
		return name[:i]
	}
	return name
}
