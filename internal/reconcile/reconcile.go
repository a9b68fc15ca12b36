// Package reconcile brings JSON5 files in line with their canonical form.
//
// For each file the Runner reads the contents, canonicalizes them and then
// either leaves the file alone, rewrites it, or prints a unified diff. Files
// are processed one at a time in the order given; the first unparsable file
// stops the run.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/mpyw/prettyjson5/internal/canonical"
	"github.com/mpyw/prettyjson5/internal/cli/output"
)

// Result is the outcome of reconciling a single file.
type Result int

const (
	// Unchanged means the file was already canonical.
	Unchanged Result = iota
	// Fixed means the file was rewritten in canonical form.
	Fixed
	// DiffReported means a diff against canonical form was printed.
	DiffReported
	// ParseError means the file is not valid JSON5.
	ParseError
)

func (r Result) String() string {
	switch r {
	case Unchanged:
		return "unchanged"
	case Fixed:
		return "fixed"
	case DiffReported:
		return "diff reported"
	case ParseError:
		return "parse error"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Runner reconciles files against their canonical form.
type Runner struct {
	FS     FileSystem
	Stdout io.Writer
	Logger *slog.Logger
}

// Options holds the options for a reconciliation run.
type Options struct {
	Paths  []string
	Format canonical.Options
	// Autofix rewrites discrepant files instead of printing a diff.
	Autofix bool
	// Color highlights diff output.
	Color bool
}

// Run reconciles every path in order and returns the process exit status:
// 0 when every file was already canonical, 1 otherwise. A non-nil error means
// a file could not be read or written.
func (r *Runner) Run(ctx context.Context, opts Options) (int, error) {
	status := 0

	for _, path := range opts.Paths {
		result, err := r.Reconcile(ctx, path, opts)
		if err != nil {
			return 1, err
		}

		if result == ParseError {
			return 1, nil
		}

		if result != Unchanged {
			status = 1
		}
	}

	return status, nil
}

// Reconcile processes a single file.
func (r *Runner) Reconcile(ctx context.Context, path string, opts Options) (Result, error) {
	logger := lo.CoalesceOrEmpty(r.Logger, discardLogger)

	data, err := r.FS.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return 0, fmt.Errorf("failed to read %s: %w", path, ErrInvalidUTF8)
	}

	contents := string(data)

	pretty, err := canonical.Canonicalize(contents, opts.Format)
	if err != nil {
		if !errors.Is(err, canonical.ErrInvalidDocument) {
			return 0, err
		}

		logger.DebugContext(ctx, "parse failed", "file", path, "error", err)
		output.Printf(r.Stdout, "Input File %s is not a valid JSON, consider using check-json\n", path)

		return ParseError, nil
	}

	if contents == pretty {
		logger.DebugContext(ctx, "already formatted", "file", path)
		return Unchanged, nil
	}

	if opts.Autofix {
		output.Printf(r.Stdout, "Fixing file %s\n", path)

		if err := r.FS.WriteFile(path, []byte(pretty)); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", path, err)
		}

		logger.DebugContext(ctx, "rewrote file", "file", path, "bytes", len(pretty))

		return Fixed, nil
	}

	diff := lo.Ternary(opts.Color, output.Diff, output.DiffRaw)(path, path, contents, pretty)
	output.Print(r.Stdout, diff)

	logger.DebugContext(ctx, "reported diff", "file", path)

	return DiffReported, nil
}

//nolint:gochecknoglobals // Stateless fallback logger
var discardLogger = slog.New(slog.DiscardHandler)
