// Package terminal provides terminal-related utilities.
package terminal

import (
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Fder is an interface for types that have a file descriptor.
type Fder interface {
	Fd() uintptr
}

// IsTTY checks if the file descriptor is a TTY.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var IsTTY = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsTerminalWriter returns true if the given writer is a terminal.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(Fder)
	if !ok {
		return false
	}

	return IsTTY(f.Fd())
}

// ColorEnabled reports whether output written to w should be colored.
// Colors are off when w is not a terminal or when NO_COLOR or TERM=dumb
// disabled them globally.
func ColorEnabled(w io.Writer) bool {
	return !color.NoColor && IsTerminalWriter(w)
}
