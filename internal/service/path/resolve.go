// Package path anchors filesystem paths to a canonical repository root.
package path

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps paths to and from a repository root, rejecting anything
// that lies outside it.
type Resolver struct {
	root string
}

// NewResolver returns a Resolver for root, which should already be canonical.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// CanonicaliseRoot makes root absolute and resolves its symlinks. The result
// must name an existing directory.
func CanonicaliseRoot(root string) (string, error) {
	if root == "" {
		return "", &RootError{Root: root, Cause: ErrRootNotSet}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &RootError{Root: root, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &RootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	switch {
	case err != nil:
		return "", &RootError{Root: resolved, Cause: err}
	case !info.IsDir():
		return "", &RootError{Root: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

// Abs joins a relative p onto the root and cleans it. The result must be the
// root or lie beneath it.
func (r *Resolver) Abs(p string) (string, error) {
	if r.root == "" {
		return "", ErrRootNotSet
	}

	abs := filepath.Clean(p)
	if !filepath.IsAbs(p) {
		abs = filepath.Join(r.root, p)
	}
	if !r.contains(abs) {
		return "", ErrOutsideRoot
	}
	return abs, nil
}

// Rel returns p as a slash path relative to the root. The root itself maps
// to "".
func (r *Resolver) Rel(p string) (string, error) {
	abs, err := r.Abs(p)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", ErrOutsideRoot
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

func (r *Resolver) contains(abs string) bool {
	if abs == r.root {
		return true
	}
	prefix := strings.TrimSuffix(r.root, string(filepath.Separator)) + string(filepath.Separator)
	return strings.HasPrefix(abs, prefix)
}
