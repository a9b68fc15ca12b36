package terminal_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpyw/prettyjson5/internal/cli/terminal"
)

func TestIsTerminalWriter_NonFder(t *testing.T) {
	t.Parallel()

	// bytes.Buffer doesn't implement Fder, should return false
	var buf bytes.Buffer

	result := terminal.IsTerminalWriter(&buf)
	assert.False(t, result)
}

func TestColorEnabled_NonFder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.False(t, terminal.ColorEnabled(&buf))
}
