// SPDX-License-Identifier: MPL-2.0

package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"yangdomino/internal/identity"
)

// DefaultYangerBinary is the compiler invoked by the strict strategy.
const DefaultYangerBinary = "yanger"

// YangerExtractor is the strict extraction strategy. It runs the yanger
// compiler once per file with "-f depend" and parses both output streams:
//
//	stdout: ietf-ip.yang : ietf-interfaces ietf-inet-types
//	stderr: ./ietf-ip.yang:11: error: module 'ietf-interfaces' not found
//
// A non-zero exit from yanger is tolerated per file (its streams are still
// parsed); failing to start the process at all aborts the pass.
type YangerExtractor struct {
	// Binary is the yanger executable; DefaultYangerBinary when empty.
	Binary string
	// Logger receives per-file debug output. May be nil.
	Logger *slog.Logger
}

// Extract implements Extractor.
func (e *YangerExtractor) Extract(ctx context.Context, files []string, searchPath []string) (*Result, error) {
	res := NewResult()
	bin := e.Binary
	if bin == "" {
		bin = DefaultYangerBinary
	}

	for _, file := range files {
		var stdout, stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, bin, "-f", "depend", "-p", strings.Join(searchPath, ":"), file)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				return nil, fmt.Errorf("failed to run %s on %s: %w", bin, file, err)
			}
			// Compile errors land on stderr and are parsed below.
		}

		e.parseDependLines(stdout.String(), res)
		e.parseErrorLines(stderr.String(), file, res)

		if e.Logger != nil {
			e.Logger.Debug("scanned file",
				"file", file,
				"stdout_bytes", stdout.Len(),
				"stderr_bytes", stderr.Len())
		}
	}

	return res, nil
}

// parseDependLines reads yanger's success stream. Each well-formed line is
// "<name> : <dep> <dep> ..."; anything else (banners, wrapped text) is
// skipped silently.
func (e *YangerExtractor) parseDependLines(out string, res *Result) {
	for _, line := range strings.Split(out, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) < 2 || tokens[1] != ":" {
			continue
		}
		name := identity.Normalize(tokens[0])
		res.Deps[name] = append([]string(nil), tokens[2:]...)
	}
}

// parseErrorLines reads yanger's error stream. A "module '<name>' not found"
// line still yields a dependency edge for the missing module, and marks the
// input file as incompletely scanned: yanger stops reading imports at the
// first unresolved one, so a later pass may reveal more dependencies.
func (e *YangerExtractor) parseErrorLines(out, file string, res *Result) {
	for _, line := range strings.Split(out, "\n") {
		pieces := strings.Split(line, ":")
		if len(pieces) < 4 || pieces[2] != " error" {
			continue
		}
		missing, ok := quoted(pieces[3])
		if !ok {
			continue
		}
		name := identity.Normalize(pieces[0])
		res.Deps[name] = append(res.Deps[name], missing)
		res.Incomplete[file] = struct{}{}
	}
}

// quoted returns the text between the first pair of single quotes in s.
func quoted(s string) (string, bool) {
	start := strings.IndexByte(s, '\'')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(s[start+1:], '\'')
	if end < 0 {
		return "", false
	}
	return s[start+1 : start+1+end], true
}
