// Package fs abstracts the file access the CLI needs so ruleset loading and
// project initialisation can be tested without touching the real disk.
package fs

import (
	"errors"
	"os"
)

// FS is the subset of file system operations vetter uses.
type FS interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating or truncating it.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string, perm os.FileMode) error

	// Stat returns file info for path.
	Stat(path string) (os.FileInfo, error)
}

// RealFS implements FS on top of the operating system.
type RealFS struct{}

func (r *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (r *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (r *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Default is the RealFS used outside tests.
var Default FS = &RealFS{}

// Exists reports whether path exists on fsys.
func Exists(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}
