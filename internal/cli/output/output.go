// Package output handles formatted output for the CLI.
//
// This package provides utilities for:
//   - Unified diff generation with optional color highlighting
//   - User feedback messages (Error, Warning) with TTY-aware coloring
//
// fatih/color disables colors on its own when stdout is not a TTY, so
// messages stay clean when piped or redirected.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/mpyw/prettyjson5/internal/cli/colors"
)

// Warning prints a warning message in yellow.
// Example: "Warning: no files given".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Warning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Warning("Warning: "+msg))
}

// Error prints an error message in red.
// Used for fatal conditions reported right before the process exits.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Error(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Error("Error: "+msg))
}

// Diff generates a unified diff between two strings with ANSI colors.
func Diff(oldName, newName, oldContent, newContent string) string {
	return colorDiff(DiffRaw(oldName, newName, oldContent, newContent))
}

// DiffRaw generates a unified diff between two strings without colors.
func DiffRaw(oldName, newName, oldContent, newContent string) string {
	edits := udiff.Strings(oldContent, newContent)
	unified, _ := udiff.ToUnifiedDiff(oldName, newName, oldContent, edits, udiff.DefaultContextLines)

	return unified.String()
}

// colorDiff adds ANSI colors to diff output.
func colorDiff(diff string) string {
	if diff == "" {
		return ""
	}

	var result strings.Builder

	for line := range strings.SplitAfterSeq(diff, "\n") {
		body := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(body, "---") || strings.HasPrefix(body, "+++"):
			result.WriteString(colors.DiffHeader(body))
		case strings.HasPrefix(body, "-"):
			result.WriteString(colors.DiffRemoved(body))
		case strings.HasPrefix(body, "+"):
			result.WriteString(colors.DiffAdded(body))
		case strings.HasPrefix(body, "@@"):
			result.WriteString(colors.DiffHunk(body))
		default:
			result.WriteString(body)
		}

		result.WriteString(line[len(body):])
	}

	return result.String()
}

// Print writes a message to the writer without a newline.
func Print(w io.Writer, msg string) {
	_, _ = fmt.Fprint(w, msg)
}

// Printf writes a formatted message to the writer.
func Printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
