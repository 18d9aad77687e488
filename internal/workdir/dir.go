// Package workdir represents the target directory of a rename batch.
//
// A Directory owns nothing beyond its path: filenames are read live on
// every query, so planning always observes current filesystem state
// rather than a cached listing.
package workdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minjipark/renamer/internal/fsops"
)

// ErrInvalidDirectory indicates the target path does not exist or is not a directory.
var ErrInvalidDirectory = errors.New("invalid directory")

// Directory is a validated handle on the directory being renamed.
type Directory struct {
	path string
	fs   fsops.FS
}

// Open validates that path exists and is a directory.
// Returns ErrInvalidDirectory otherwise; no implicit fallback to the
// process working directory.
func Open(path string, fs fsops.FS) (*Directory, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no directory specified", ErrInvalidDirectory)
	}

	info, err := fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q does not exist", ErrInvalidDirectory, path)
		}
		return nil, fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidDirectory, path)
	}

	return &Directory{path: path, fs: fs}, nil
}

// Path returns the directory path.
func (d *Directory) Path() string {
	return d.path
}

// Filenames returns the current entry names, read fresh from the filesystem.
func (d *Directory) Filenames() ([]string, error) {
	return d.fs.List(d.path)
}

// Join joins a bare filename with the directory path.
func (d *Directory) Join(name string) string {
	return filepath.Join(d.path, name)
}
