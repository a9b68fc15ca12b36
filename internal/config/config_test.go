package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/prettyjson5/internal/canonical"
	"github.com/mpyw/prettyjson5/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pretty-format-json5.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_AllSettings(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
indent = 4
ensure-ascii = true
sort-keys = false
top-keys = ["id", "name"]
autofix = false
`)

	f, err := config.Load(path)
	require.NoError(t, err)

	opts := canonical.DefaultOptions()
	autofix := true
	f.Apply(&opts, &autofix)

	assert.Equal(t, "    ", opts.Indent.Unit())
	assert.True(t, opts.EnsureASCII)
	assert.False(t, opts.SortKeys)
	assert.Equal(t, []string{"id", "name"}, opts.TopKeys)
	assert.False(t, autofix)
}

func TestLoad_StringIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "tab", content: `indent = "\t"`, want: "\t"},
		{name: "numeric string", content: `indent = "3"`, want: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := config.Load(writeConfig(t, tt.content))
			require.NoError(t, err)

			opts := canonical.DefaultOptions()
			autofix := true
			f.Apply(&opts, &autofix)

			assert.Equal(t, tt.want, opts.Indent.Unit())
		})
	}
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	f, err := config.Load(writeConfig(t, "# nothing here\n"))
	require.NoError(t, err)

	opts := canonical.DefaultOptions()
	autofix := true
	f.Apply(&opts, &autofix)

	assert.Equal(t, canonical.DefaultOptions(), opts)
	assert.True(t, autofix)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "syntax", content: "indent = ", wantErr: "failed to parse TOML"},
		{name: "unknown key", content: "sort_keys = true", wantErr: "unknown keys: sort_keys"},
		{name: "bad indent type", content: "indent = true", wantErr: "indent must be an integer or a string"},
		{name: "bad top-keys type", content: "top-keys = 1", wantErr: "failed to parse TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
