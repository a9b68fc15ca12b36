// Package commands provides the command-line interface for pretty-format-json5.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/prettyjson5/internal/canonical"
	"github.com/mpyw/prettyjson5/internal/cli/output"
	"github.com/mpyw/prettyjson5/internal/cli/terminal"
	"github.com/mpyw/prettyjson5/internal/config"
	"github.com/mpyw/prettyjson5/internal/reconcile"
)

// StatusError reports a non-zero exit status that needs no further message.
// The files involved have already been reported on stdout.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Status)
}

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:      "pretty-format-json5",
		Usage:     "Format JSON5 files with stable indentation and key order",
		ArgsUsage: "[files...]",
		Version:   "0.1.0",
		Description: `Parse each file as JSON5 (comments, trailing commas and unquoted keys are
allowed) and write it back with deterministic indentation and key order.

Files that change are rewritten in place, or shown as a unified diff with
--no-autofix. The exit status is 1 when any file was not already formatted.

EXAMPLES:
   pretty-format-json5 config.json5                 Fix config.json5 in place
   pretty-format-json5 --no-autofix *.json5         Show what would change
   pretty-format-json5 --indent 4 --top-keys id,name data.json
   pretty-format-json5 --indent $'\t' tsconfig.json  Indent with tabs`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-autofix",
				Usage: "Don't automatically fix files that are not pretty-formatted; print a diff instead",
			},
			&cli.StringFlag{
				Name:  "indent",
				Value: "2",
				Usage: `Number of indent spaces or a string used as one indentation level, e.g. 4 or "\t"`,
			},
			&cli.BoolFlag{
				Name:  "ensure-ascii",
				Usage: `Convert non-ASCII characters to Unicode escape sequences (\uXXXX)`,
			},
			&cli.BoolFlag{
				Name:  "no-sort-keys",
				Usage: "Keep object keys in their original order",
			},
			&cli.StringFlag{
				Name:  "top-keys",
				Usage: "Comma-separated list of keys to keep at the top of every object",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Load default settings from a TOML file",
				Sources: cli.EnvVars("PRETTY_FORMAT_JSON5_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log per-file decisions to stderr",
			},
		},
		Action: action,
	}
}

// App is the main CLI application.
//
//nolint:gochecknoglobals // CLI entry point
var App = MakeApp()

func action(ctx context.Context, cmd *cli.Command) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	stdout := cmd.Root().Writer
	stderr := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, stdout)

	if len(opts.Paths) == 0 {
		output.Warning(stderr, "no files given")
		return nil
	}

	opts.Color = terminal.ColorEnabled(stdout)

	logger := slog.New(slog.DiscardHandler)
	if cmd.Bool("verbose") {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	r := &reconcile.Runner{
		FS:     reconcile.OSFileSystem{},
		Stdout: stdout,
		Logger: logger,
	}

	status, err := r.Run(ctx, opts)
	if err != nil {
		return err
	}

	if status != 0 {
		return &StatusError{Status: status}
	}

	return nil
}

// buildOptions resolves settings with the precedence flag > config file > default.
func buildOptions(cmd *cli.Command) (reconcile.Options, error) {
	format := canonical.DefaultOptions()
	autofix := true

	if path := cmd.String("config"); path != "" {
		f, err := config.Load(path)
		if err != nil {
			return reconcile.Options{}, fmt.Errorf("failed to load config: %w", err)
		}

		f.Apply(&format, &autofix)
	}

	if cmd.IsSet("indent") {
		format.Indent = canonical.ParseIndent(cmd.String("indent"))
	}

	if cmd.IsSet("ensure-ascii") {
		format.EnsureASCII = cmd.Bool("ensure-ascii")
	}

	if cmd.IsSet("no-sort-keys") {
		format.SortKeys = !cmd.Bool("no-sort-keys")
	}

	if cmd.IsSet("top-keys") {
		format.TopKeys = parseTopKeys(cmd.String("top-keys"))
	}

	if cmd.IsSet("no-autofix") {
		autofix = !cmd.Bool("no-autofix")
	}

	return reconcile.Options{
		Paths:   cmd.Args().Slice(),
		Format:  format,
		Autofix: autofix,
	}, nil
}

func parseTopKeys(s string) []string {
	return strings.Split(s, ",")
}
