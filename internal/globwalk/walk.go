// Package globwalk walks a directory tree and lazily yields the entries that
// match a positive glob set, pruning every subtree matched by an ignore set.
package globwalk

import (
	iofs "io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/wsresolve/internal/globset"
)

// Ignorer is an additional ignore predicate consulted alongside the ignore set,
// e.g. a .gitignore matcher. rel is slash-separated and relative to the root.
type Ignorer interface {
	ShouldIgnore(rel string, isDir bool) bool
}

// Entry is one filesystem entry produced by a walk.
type Entry struct {
	// Path is the absolute, OS-specific path of the entry.
	Path string
	// RelPath is the slash-separated path relative to the walk root.
	RelPath string
	IsDir   bool
}

// Walker holds the configuration of a single walk.
type Walker struct {
	root     string
	positive *globset.GlobSet
	ignore   *globset.GlobSet
	extra    []Ignorer
	fsys     iofs.FS
	maxDepth int
}

// Option configures a Walker.
type Option func(*Walker)

// WithMaxDepth limits traversal to n levels below the root. Zero means unlimited.
func WithMaxDepth(n int) Option {
	return func(w *Walker) {
		if n > 0 {
			w.maxDepth = n
		}
	}
}

// WithIgnorer adds an ignore predicate. It prunes exactly like the ignore set.
func WithIgnorer(ig Ignorer) Option {
	return func(w *Walker) {
		if ig != nil {
			w.extra = append(w.extra, ig)
		}
	}
}

// WithFS walks fsys instead of os.DirFS(root). fsys must be rooted at root.
func WithFS(fsys iofs.FS) Option {
	return func(w *Walker) {
		w.fsys = fsys
	}
}

// New creates a Walker over root. The positive set is matched against the
// absolute slash path of each entry, the ignore set against its root-relative
// slash path. A nil set is replaced by globset.Empty.
func New(root string, positive, ignore *globset.GlobSet, opts ...Option) *Walker {
	if positive == nil {
		positive = globset.Empty()
	}
	if ignore == nil {
		ignore = globset.Empty()
	}
	w := &Walker{
		root:     filepath.Clean(root),
		positive: positive,
		ignore:   ignore,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.fsys == nil {
		w.fsys = os.DirFS(w.root)
	}
	return w
}

// Entries returns a single-pass sequence of matching entries. Traversal happens
// while the caller ranges over it and stops as soon as the caller breaks.
//
// Failures on individual entries are yielded as *WalkError without ending the
// walk; the subtree behind a failing directory is skipped.
func (w *Walker) Entries() iter.Seq2[Entry, error] {
	rootSlash := filepath.ToSlash(w.root)

	return func(yield func(Entry, error) bool) {
		_ = iofs.WalkDir(w.fsys, ".", func(rel string, d iofs.DirEntry, err error) error {
			abs := w.abs(rel)
			if err != nil {
				if !yield(Entry{Path: abs, RelPath: relOrEmpty(rel)}, &WalkError{Path: abs, Cause: err}) {
					return iofs.SkipAll
				}
				if d != nil && d.IsDir() {
					return iofs.SkipDir
				}
				return nil
			}

			// The root is the container of the walk, never a result.
			if rel == "." {
				return nil
			}

			isDir := d.IsDir()
			if w.ignored(rel, isDir) {
				if isDir {
					return iofs.SkipDir
				}
				return nil
			}

			depth := strings.Count(rel, "/") + 1
			if w.positive.IsMatch(path.Join(rootSlash, rel)) {
				if !yield(Entry{Path: abs, RelPath: rel, IsDir: isDir}, nil) {
					return iofs.SkipAll
				}
			}

			if isDir && w.maxDepth > 0 && depth >= w.maxDepth {
				return iofs.SkipDir
			}
			return nil
		})
	}
}

// ignored reports whether rel is excluded by the ignore set or any extra ignorer.
func (w *Walker) ignored(rel string, isDir bool) bool {
	if w.ignore.IsMatch(rel) {
		return true
	}
	for _, ig := range w.extra {
		if ig.ShouldIgnore(rel, isDir) {
			return true
		}
	}
	return false
}

func (w *Walker) abs(rel string) string {
	if rel == "." {
		return w.root
	}
	return filepath.Join(w.root, filepath.FromSlash(rel))
}

func relOrEmpty(rel string) string {
	if rel == "." {
		return ""
	}
	return rel
}

// Walk is shorthand for New(root, positive, ignore, opts...).Entries().
func Walk(root string, positive, ignore *globset.GlobSet, opts ...Option) iter.Seq2[Entry, error] {
	return New(root, positive, ignore, opts...).Entries()
}

// Collect drains seq, stopping at the first error.
func Collect(seq iter.Seq2[Entry, error]) ([]Entry, error) {
	var entries []Entry
	for entry, err := range seq {
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
