// Package stacktrace trims runtime stack dumps down to project frames.
package stacktrace

import "strings"

// InternalPaths returns the "internal/<file>.go:<line>" locations found in a
// runtime/debug.Stack dump, in call order.
func InternalPaths(stack []byte) []string {
	var paths []string

	for line := range strings.Lines(string(stack)) {
		line = strings.TrimSpace(line)

		// file lines look like "/src/internal/app/app.go:42 +0x1d"
		loc, _, _ := strings.Cut(line, " ")
		if !strings.Contains(loc, ".go:") {
			continue
		}

		_, rel, found := strings.Cut(loc, "/internal/")
		if !found {
			continue
		}

		paths = append(paths, "internal/"+rel)
	}

	return paths
}
