package workspace

import (
	"errors"
	"path"

	"github.com/Cyclone1070/wsresolve/internal/globset"
	"github.com/Cyclone1070/wsresolve/internal/packagemanager"
)

// Fixed ignore patterns per manager, matched against root-relative paths.
var (
	// berryIgnores match the directories themselves, so the walker prunes
	// them without ever listing their contents.
	berryIgnores = []string{"**/node_modules", "**/.git", "**/.yarn"}
	npmIgnores   = []string{"**/node_modules/**"}
	pnpmIgnores  = []string{"**/node_modules/**", "**/bower_components/**"}
)

// IgnoreSet returns the paths m excludes while discovering workspaces under
// root. Only Yarn depends on the repository: it ignores node_modules beneath
// each declared workspace glob, so declaration errors propagate unchanged.
func (r *Resolver) IgnoreSet(m packagemanager.Manager, root string) (*globset.GlobSet, error) {
	if !m.Valid() {
		return nil, &packagemanager.UnknownManagerError{Name: m.String()}
	}
	canonical, err := canonicalise(root)
	if err != nil {
		return nil, err
	}
	return r.ignoreSet(m, canonical)
}

func (r *Resolver) ignoreSet(m packagemanager.Manager, root string) (*globset.GlobSet, error) {
	var patterns []string
	switch m {
	case packagemanager.Berry:
		patterns = berryIgnores
	case packagemanager.Npm:
		patterns = npmIgnores
	case packagemanager.Pnpm, packagemanager.Pnpm6:
		patterns = pnpmIgnores
	case packagemanager.Yarn:
		globs, err := r.globs(m, root)
		if err != nil {
			return nil, err
		}
		patterns = make([]string, 0, len(globs))
		for _, glob := range globs {
			patterns = append(patterns, path.Join(glob, "node_modules/**"))
		}
	default:
		return nil, &packagemanager.UnknownManagerError{Name: m.String()}
	}

	b := globset.NewBuilder()
	for _, pattern := range patterns {
		if err := b.Add(pattern); err != nil {
			return nil, &IgnoreSetError{Manager: m, Pattern: pattern, Kind: patternKind(err), Cause: err}
		}
	}
	set := b.Build()
	r.logger.Printf("ignores: %s ignores %s", m, set)
	return set, nil
}

// positiveSet turns workspace globs into patterns matching the manifest of
// each workspace by absolute path.
func positiveSet(m packagemanager.Manager, root string, globs []string, manifest string) (*globset.GlobSet, error) {
	prefix := globset.Escape(slashRoot(root))
	b := globset.NewBuilder()
	for _, glob := range globs {
		if err := b.Add(prefix + "/" + path.Join(glob, manifest)); err != nil {
			return nil, &GlobError{Manager: m, Glob: glob, Kind: patternKind(err), Cause: err}
		}
	}
	return b.Build(), nil
}

// patternKind classifies a globset failure.
func patternKind(err error) error {
	if errors.Is(err, globset.ErrInvalidEncoding) {
		return ErrInvalidPath
	}
	return ErrGlobCompile
}
