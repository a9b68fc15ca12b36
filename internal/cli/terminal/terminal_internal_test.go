package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockFdWriter implements Fder for testing.
type mockFdWriter struct {
	buf bytes.Buffer
	fd  uintptr
}

func (m *mockFdWriter) Write(p []byte) (n int, err error) {
	return m.buf.Write(p)
}

func (m *mockFdWriter) Fd() uintptr {
	return m.fd
}

//nolint:paralleltest // Test modifies package globals (IsTTY)
func TestIsTerminalWriter_TTY(t *testing.T) {
	origIsTTY := IsTTY

	defer func() { IsTTY = origIsTTY }()

	IsTTY = func(_ uintptr) bool { return true }

	w := &mockFdWriter{fd: 1}
	result := IsTerminalWriter(w)
	assert.True(t, result)
}

//nolint:paralleltest // Test modifies package globals (IsTTY)
func TestIsTerminalWriter_NonTTY(t *testing.T) {
	origIsTTY := IsTTY

	defer func() { IsTTY = origIsTTY }()

	IsTTY = func(_ uintptr) bool { return false }

	w := &mockFdWriter{fd: 1}
	result := IsTerminalWriter(w)
	assert.False(t, result)
}

//nolint:paralleltest // Test modifies package globals (IsTTY)
func TestColorEnabled_NonTTY(t *testing.T) {
	origIsTTY := IsTTY

	defer func() { IsTTY = origIsTTY }()

	IsTTY = func(_ uintptr) bool { return false }

	w := &mockFdWriter{fd: 1}
	assert.False(t, ColorEnabled(w))
}
