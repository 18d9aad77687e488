// Package fsops provides filesystem operations behind a small interface.
//
// All filesystem reads and mutations in renamer go through the FS
// interface, which keeps the planner and executor testable and provides
// name validation so a computed rename can never escape its directory.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for the filesystem operations renamer needs.
type FS interface {
	// List returns the names of the entries in dir, in directory order.
	List(dir string) ([]string, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// Rename renames (moves) oldpath to newpath.
	Rename(oldpath, newpath string) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// ValidateName validates a bare filename for safety.
	ValidateName(name string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// List returns the names of the entries in dir.
func (fs *RealFS) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Lstat returns file info without following symlinks.
func (fs *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Rename renames (moves) oldpath to newpath.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ValidateName validates a bare filename for safety.
// A valid name stays inside its own directory: no separators, no traversal.
func (fs *RealFS) ValidateName(name string) error {
	// Reject empty names
	if name == "" {
		return fmt.Errorf("invalid filename: empty")
	}

	// Reject names that look like paths
	if strings.Contains(name, string(filepath.Separator)) || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("invalid filename: must not contain path separators")
	}

	// Reject path traversal attempts
	if name == "." || name == ".." {
		return fmt.Errorf("invalid filename: path traversal not allowed")
	}

	return nil
}
