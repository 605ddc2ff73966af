// SPDX-License-Identifier: MPL-2.0

package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"yangdomino/internal/identity"
)

// DefaultGrepBinary is the text-search tool invoked by the permissive strategy.
const DefaultGrepBinary = "egrep"

// importPattern matches the opening of a YANG import or include statement.
// The scan is not syntax-aware: it fires on any line shaped like one, which
// is good enough when a YANG compiler is not installed.
const importPattern = `^[ \t]*(import|include) .*[{;]`

// GrepExtractor is the permissive extraction strategy. A single egrep
// invocation covers every input file; matched lines come back prefixed with
// the file name:
//
//	ietf-ip.yang:  import ietf-interfaces {
//
// Not being syntax-aware, it never aborts partway, so Incomplete is always
// empty. Any failure of the external invocation is fatal for the pass,
// including the no-matches exit status.
type GrepExtractor struct {
	// Binary is the search executable; DefaultGrepBinary when empty.
	Binary string
	// Logger receives debug output. May be nil.
	Logger *slog.Logger
}

// Extract implements Extractor. searchPath is unused: the scan reads the
// listed files directly and resolves nothing.
func (e *GrepExtractor) Extract(ctx context.Context, files []string, _ []string) (*Result, error) {
	res := NewResult()
	for _, file := range files {
		res.Deps[identity.Normalize(file)] = nil
	}

	bin := e.Binary
	if bin == "" {
		bin = DefaultGrepBinary
	}
	args := append([]string{importPattern}, files...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to scan %d file(s) with %s: %w", len(files), bin, err)
	}

	matches := 0
	for _, line := range strings.Split(stdout.String(), "\n") {
		pieces := strings.Split(line, ":")
		if len(pieces) != 2 {
			continue
		}
		dep := depName(pieces[1])
		if dep == "" {
			continue
		}
		name := identity.Normalize(pieces[0])
		res.Deps[name] = append(res.Deps[name], dep)
		matches++
	}

	if e.Logger != nil {
		e.Logger.Debug("grep scan finished", "files", len(files), "matches", matches)
	}

	return res, nil
}

// depName extracts the module name from the matched statement text: the
// import/include keyword is stripped, the name ends at the first '{' or,
// failing that, the first ';', and surrounding whitespace is trimmed.
func depName(text string) string {
	text = strings.ReplaceAll(text, "import", "")
	text = strings.ReplaceAll(text, "include", "")
	if i := strings.IndexByte(text, '{'); i >= 0 {
		text = text[:i]
	} else if i := strings.IndexByte(text, ';'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
