// Package config loads formatter settings from a TOML file.
//
// Every setting is optional; a value present in the file replaces the
// built-in default, and an explicitly passed command-line flag replaces both.
//
//	indent = 4            # spaces, or a literal unit such as "\t"
//	ensure-ascii = false
//	sort-keys = true
//	top-keys = ["id", "name"]
//	autofix = true
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/mpyw/prettyjson5/internal/canonical"
)

// ErrInvalidIndent is returned when indent is neither an integer nor a string.
var ErrInvalidIndent = errors.New("indent must be an integer or a string")

// File is the decoded contents of a config file.
type File struct {
	Indent      any      `toml:"indent"`
	EnsureASCII *bool    `toml:"ensure-ascii"`
	SortKeys    *bool    `toml:"sort-keys"`
	TopKeys     []string `toml:"top-keys"`
	Autofix     *bool    `toml:"autofix"`
}

// Load reads and validates the config file at path.
func Load(path string) (*File, error) {
	var f File

	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := lo.Map(undecoded, func(k toml.Key, _ int) string { return k.String() })
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if _, err := f.indent(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &f, nil
}

func (f *File) indent() (*canonical.Indent, error) {
	switch v := f.Indent.(type) {
	case nil:
		return nil, nil
	case int64:
		return lo.ToPtr(canonical.Spaces(int(v))), nil
	case string:
		return lo.ToPtr(canonical.ParseIndent(v)), nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrInvalidIndent, v)
	}
}

// Apply overlays the settings present in f onto opts and autofix.
func (f *File) Apply(opts *canonical.Options, autofix *bool) {
	if indent, _ := f.indent(); indent != nil {
		opts.Indent = *indent
	}

	if f.EnsureASCII != nil {
		opts.EnsureASCII = *f.EnsureASCII
	}

	if f.SortKeys != nil {
		opts.SortKeys = *f.SortKeys
	}

	if f.TopKeys != nil {
		opts.TopKeys = f.TopKeys
	}

	if f.Autofix != nil {
		*autofix = *f.Autofix
	}
}
