// Package fsys is the filesystem seam used by the walker and the classifier.
package fsys

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrExist is returned by Rename when the destination is already taken.
var ErrExist = errors.Base("destination already exists")

// 💾 FS is the filesystem interface required for a rename run
type FS interface {
	// ReadDir lists the direct children of a directory
	ReadDir(name string) ([]fs.DirEntry, error)
	// Lstat describes an entry without following symlinks
	Lstat(name string) (fs.FileInfo, error)
	// Rename moves oldpath to newpath, never replacing an existing entry
	Rename(oldpath, newpath string) error
}

// osFS implements FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() FS {
	return &osFS{}
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

// Rename refuses to overwrite newpath. The only destination let through is
// the source itself under a name differing only in case, which is how a
// case-insensitive filesystem reports a case-only rename. A hard link to the
// source is another entry and fails with ErrExist.
//
// The existence check and the rename are two calls, another process can
// still create newpath in between.
func (o *osFS) Rename(oldpath, newpath string) error {
	dst, err := os.Lstat(newpath)
	switch {
	case err == nil:
		src, serr := os.Lstat(oldpath)
		if serr != nil {
			return errors.Errorf("checking source: %w", serr)
		}
		if !os.SameFile(src, dst) || !sameNameIgnoringCase(oldpath, newpath) {
			return errors.Errorf("renaming %s to %s: %w", oldpath, newpath, ErrExist)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return errors.Errorf("checking destination: %w", err)
	}

	if err := os.Rename(oldpath, newpath); err != nil {
		return errors.Errorf("renaming: %w", err)
	}
	return nil
}

func sameNameIgnoringCase(oldpath, newpath string) bool {
	return strings.EqualFold(filepath.Base(oldpath), filepath.Base(newpath))
}
