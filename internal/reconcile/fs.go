package reconcile

import (
	"errors"
	"io/fs"
	"os"
)

// ErrInvalidUTF8 is returned for files that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// FileSystem is the file access the Runner needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// OSFileSystem reads and writes files on the local disk.
type OSFileSystem struct{}

const defaultFileMode fs.FileMode = 0o644

// ReadFile reads the named file.
func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile overwrites the named file in place, keeping its permission bits.
func (OSFileSystem) WriteFile(name string, data []byte) error {
	mode := defaultFileMode
	if info, err := os.Stat(name); err == nil {
		mode = info.Mode().Perm()
	}

	return os.WriteFile(name, data, mode)
}
