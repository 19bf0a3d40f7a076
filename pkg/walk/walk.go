// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package walk enumerates the entries a rename run should look at.
//
// Children are visited in the order the filesystem lists them; callers must
// not rely on any particular order. Symlinks are never followed, a symlink to
// a directory is offered as a plain entry and is not descended into.
package walk

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/rxrename/pkg/fsys"
	"gitlab.com/tozd/go/errors"
)

// ErrDirectoryUnreadable matches any error for a directory that could not be listed.
var ErrDirectoryUnreadable = errors.Base("directory unreadable")

// UnreadableError reports a directory that could not be listed
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return "reading directory " + e.Path + ": " + e.Err.Error()
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// Is reports ErrDirectoryUnreadable as a match
func (e *UnreadableError) Is(target error) bool {
	return target == ErrDirectoryUnreadable
}

// 📄 Entry is one directory child handed to a VisitFunc
type Entry struct {
	Dir   string // Directory containing the entry
	Name  string // Base name
	Rel   string // Slash separated path relative to the walk root
	IsDir bool   // Whether the entry is a directory (symlinks are not)
}

// Path returns the entry's path on disk.
func (e Entry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

// VisitFunc is called for every entry selected by the walker. Returning an
// error stops the walk.
type VisitFunc func(ctx context.Context, e Entry) error

// SkipFunc is told about entries and subdirectories that were skipped
// because they could not be read.
type SkipFunc func(ctx context.Context, path string, err error)

// 🔧 Options controls which entries a walk selects
type Options struct {
	Recursive      bool     // Descend into subdirectories
	IncludeFolders bool     // Offer directories to the VisitFunc
	Exclude        []string // doublestar globs for entries to leave alone
	OnSkip         SkipFunc // Optional, called for unreadable entries
}

// 🚶 Walker walks one directory tree
type Walker struct {
	fs   fsys.FS
	opts Options
}

// 🏭 New creates a walker after checking the exclude globs
func New(filesystem fsys.FS, opts Options) (*Walker, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return &Walker{fs: filesystem, opts: opts}, nil
}

// 🏃 Walk visits the children of root. Only a root that cannot be listed is
// fatal; unreadable entries and subdirectories go to OnSkip.
func (w *Walker) Walk(ctx context.Context, root string, visit VisitFunc) error {
	entries, err := w.fs.ReadDir(root)
	if err != nil {
		return &UnreadableError{Path: root, Err: err}
	}
	return w.walkEntries(ctx, root, "", entries, visit)
}

func (w *Walker) walkDir(ctx context.Context, dir, rel string, visit VisitFunc) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.skip(ctx, dir, &UnreadableError{Path: dir, Err: err})
		return nil
	}
	return w.walkEntries(ctx, dir, rel, entries, visit)
}

func (w *Walker) walkEntries(ctx context.Context, dir, rel string, entries []fs.DirEntry, visit VisitFunc) error {
	logger := zerolog.Ctx(ctx)

	for _, d := range entries {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("walking %s: %w", dir, err)
		}

		entry := Entry{
			Dir:  dir,
			Name: d.Name(),
			Rel:  path.Join(rel, d.Name()),
		}

		if w.excluded(entry) {
			logger.Debug().Str("path", entry.Rel).Msg("excluded")
			continue
		}

		isDir, err := w.isDir(entry, d)
		if err != nil {
			w.skip(ctx, entry.Path(), err)
			continue
		}
		entry.IsDir = isDir

		// children first, so renaming the directory itself cannot strand them
		if entry.IsDir && w.opts.Recursive {
			if err := w.walkDir(ctx, entry.Path(), entry.Rel, visit); err != nil {
				return err
			}
		}

		if !entry.IsDir || w.opts.IncludeFolders {
			if err := visit(ctx, entry); err != nil {
				return err
			}
		}
	}

	return nil
}

// isDir reads the type from the listing, falling back to Lstat when the
// listing could not tell.
func (w *Walker) isDir(entry Entry, d fs.DirEntry) (bool, error) {
	mode := d.Type()
	if mode&fs.ModeIrregular == 0 {
		return mode.IsDir(), nil
	}

	info, err := w.fs.Lstat(entry.Path())
	if err != nil {
		return false, errors.Errorf("reading entry type: %w", err)
	}
	return info.IsDir(), nil
}

func (w *Walker) excluded(entry Entry) bool {
	for _, pattern := range w.opts.Exclude {
		if ok, _ := doublestar.Match(pattern, entry.Rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, entry.Name); ok {
			return true
		}
	}
	return false
}

func (w *Walker) skip(ctx context.Context, p string, err error) {
	zerolog.Ctx(ctx).Warn().Err(err).Str("path", p).Msg("skipping unreadable entry")
	if w.opts.OnSkip != nil {
		w.opts.OnSkip(ctx, p, err)
	}
}
