// Package workspace resolves the member packages of a JavaScript monorepo the
// way its package manager does: read the declared workspace globs, build the
// manager's ignore set, then walk the repository for matching manifests.
package workspace

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Cyclone1070/wsresolve/internal/config"
	"github.com/Cyclone1070/wsresolve/internal/globset"
	"github.com/Cyclone1070/wsresolve/internal/globwalk"
	"github.com/Cyclone1070/wsresolve/internal/packagemanager"
	"github.com/Cyclone1070/wsresolve/internal/service/fs"
	"github.com/Cyclone1070/wsresolve/internal/service/git"
	"github.com/Cyclone1070/wsresolve/internal/service/path"
)

// fileSystem defines the filesystem operations needed for resolution.
// Walking itself goes through io/fs, see globwalk.
type fileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// Workspace is one resolved workspace package.
type Workspace struct {
	// Name is the "name" field of the manifest, empty when absent.
	Name string `json:"name"`
	// Dir is the absolute directory holding the manifest.
	Dir string `json:"dir"`
	// RelDir is Dir relative to the repository root, slash-separated.
	RelDir string `json:"relDir"`
	// Manifest is the absolute path of the manifest file.
	Manifest string `json:"manifest"`
}

// Resolver resolves workspaces with injected dependencies. It holds no state
// between calls: every call re-reads the declaration and re-walks the tree.
type Resolver struct {
	fs     fileSystem
	config *config.Config
	logger *log.Logger
}

// NewResolver creates a Resolver. A nil cfg means config.DefaultConfig() and a
// nil logger discards all output.
func NewResolver(fs fileSystem, cfg *config.Config, logger *log.Logger) *Resolver {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Resolver{
		fs:     fs,
		config: cfg,
		logger: logger,
	}
}

// Resolve returns the absolute paths of every workspace manifest m would load
// for the repository at root, sorted lexically.
//
// The first filesystem failure during the walk aborts with a
// *globwalk.WalkError. Cancellation is checked between walked entries.
func (r *Resolver) Resolve(ctx context.Context, m packagemanager.Manager, root string) ([]string, error) {
	_, entries, err := r.walk(ctx, m, root)
	if err != nil {
		return nil, err
	}
	manifests := make([]string, 0, len(entries))
	for _, entry := range entries {
		manifests = append(manifests, entry.Path)
	}
	return manifests, nil
}

// Workspaces resolves like Resolve and reads the name of each manifest.
func (r *Resolver) Workspaces(ctx context.Context, m packagemanager.Manager, root string) ([]Workspace, error) {
	canonical, entries, err := r.walk(ctx, m, root)
	if err != nil {
		return nil, err
	}

	resolver := path.NewResolver(canonical)
	workspaces := make([]Workspace, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name, err := r.manifestName(entry.Path)
		if err != nil {
			return nil, err
		}
		dir := filepath.Dir(entry.Path)
		relDir, err := resolver.Rel(dir)
		if err != nil {
			return nil, err
		}
		workspaces = append(workspaces, Workspace{
			Name:     name,
			Dir:      dir,
			RelDir:   relDir,
			Manifest: entry.Path,
		})
	}
	return workspaces, nil
}

// walk canonicalises root and collects the matching manifest entries sorted
// by path.
func (r *Resolver) walk(ctx context.Context, m packagemanager.Manager, root string) (string, []globwalk.Entry, error) {
	if !m.Valid() {
		return "", nil, &packagemanager.UnknownManagerError{Name: m.String()}
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	canonical, err := canonicalise(root)
	if err != nil {
		return "", nil, err
	}

	globs, err := r.globs(m, canonical)
	if err != nil {
		return "", nil, err
	}
	positive, err := positiveSet(m, canonical, globs, r.config.Resolver.ManifestName)
	if err != nil {
		return "", nil, err
	}
	ignore, err := r.ignoreSet(m, canonical)
	if err != nil {
		return "", nil, err
	}

	opts := []globwalk.Option{globwalk.WithMaxDepth(r.config.Resolver.MaxDepth)}
	if r.config.Resolver.RespectGitignore {
		matcher, err := git.NewIgnoreMatcher(canonical, r.fs)
		if err != nil {
			return "", nil, err
		}
		opts = append(opts, globwalk.WithIgnorer(matcher))
	}

	var entries []globwalk.Entry
	for entry, err := range globwalk.Walk(canonical, positive, ignore, opts...) {
		if err != nil {
			return "", nil, err
		}
		if cerr := ctx.Err(); cerr != nil {
			return "", nil, cerr
		}
		// A directory named like the manifest is not a manifest.
		if entry.IsDir {
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	r.logger.Printf("resolve: %s found %d manifests under %s", m, len(entries), canonical)
	return canonical, entries, nil
}

// manifestFields is the subset of a manifest read by Workspaces.
type manifestFields struct {
	Name string `json:"name" yaml:"name"`
}

func (r *Resolver) manifestName(manifest string) (string, error) {
	data, err := r.fs.ReadFile(manifest)
	if err != nil {
		return "", &ManifestError{Path: manifest, Kind: ErrMissingFile, Cause: err}
	}

	var fields manifestFields
	if strings.EqualFold(filepath.Ext(manifest), ".json") {
		err = json.Unmarshal(data, &fields)
	} else {
		err = yaml.Unmarshal(data, &fields)
	}
	if err != nil {
		return "", &ManifestError{Path: manifest, Kind: ErrMalformedDocument, Cause: err}
	}
	return fields.Name, nil
}

// canonicalise anchors root, surfacing an unusable root as ErrInvalidPath.
func canonicalise(root string) (string, error) {
	canonical, err := path.CanonicaliseRoot(root)
	if err != nil {
		return "", &RootError{Root: root, Cause: err}
	}
	return canonical, nil
}

func slashRoot(root string) string {
	return strings.TrimSuffix(filepath.ToSlash(root), "/")
}

// -- Package-level conveniences --

func defaultResolver() *Resolver {
	cfg := config.DefaultConfig()
	return NewResolver(fs.NewOSFileSystem(cfg.Resolver.MaxDeclarationSize), cfg, nil)
}

// ResolveGlobs is Resolver.ResolveGlobs with the defaults.
func ResolveGlobs(m packagemanager.Manager, root string) ([]string, error) {
	return defaultResolver().ResolveGlobs(m, root)
}

// BuildIgnoreSet is Resolver.IgnoreSet with the defaults.
func BuildIgnoreSet(m packagemanager.Manager, root string) (*globset.GlobSet, error) {
	return defaultResolver().IgnoreSet(m, root)
}

// Resolve is Resolver.Resolve with the defaults.
func Resolve(ctx context.Context, m packagemanager.Manager, root string) ([]string, error) {
	return defaultResolver().Resolve(ctx, m, root)
}
