// Package loader reads configuration files and environment variables.
//
// File loaders decode straight into a caller-supplied struct, so fields the
// file does not mention keep their previous values. Unknown keys are
// rejected.
package loader

import (
	"io/fs"
	"os"
)

// Loader decodes a configuration source into v.
type Loader interface {
	// LoadInto decodes the file at path into v. It reports false, with no
	// error, when the file does not exist.
	LoadInto(path string, v any) (bool, error)
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems such as
// fstest.MapFS.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}
