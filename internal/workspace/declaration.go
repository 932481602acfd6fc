package workspace

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/Cyclone1070/wsresolve/internal/packagemanager"
)

// ResolveGlobs returns the workspace globs m declares for the repository at
// root, in declaration order.
//
// Pnpm and Pnpm6 read the "packages" list of pnpm-workspace.yaml; the others
// read the "workspaces" array of package.json. Only the array form is
// accepted.
func (r *Resolver) ResolveGlobs(m packagemanager.Manager, root string) ([]string, error) {
	if !m.Valid() {
		return nil, &packagemanager.UnknownManagerError{Name: m.String()}
	}
	canonical, err := canonicalise(root)
	if err != nil {
		return nil, err
	}
	return r.globs(m, canonical)
}

// globs reads the declaration of m under an already canonical root.
func (r *Resolver) globs(m packagemanager.Manager, root string) ([]string, error) {
	declPath := filepath.Join(root, m.DeclarationFile())
	declErr := func(kind, cause error) error {
		return &DeclarationError{Manager: m, Path: declPath, Kind: kind, Cause: cause}
	}

	data, err := r.fs.ReadFile(declPath)
	if err != nil {
		return nil, declErr(ErrMissingFile, err)
	}

	doc, err := decodeDocument(m, data)
	if err != nil {
		return nil, declErr(ErrMalformedDocument, err)
	}

	key := m.DeclarationKey()
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, declErr(ErrMalformedDocument, fmt.Errorf("%q: %w", key, errKeyMissing))
	}

	// mapstructure turns a null entry into "", which would match the root.
	if entries, ok := raw.([]any); ok {
		for i, entry := range entries {
			if entry == nil {
				return nil, declErr(ErrMalformedDocument, fmt.Errorf("%q[%d]: %w", key, i, errNullEntry))
			}
		}
	}

	var globs []string
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &globs,
		ErrorUnused: false,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, declErr(ErrMalformedDocument, fmt.Errorf("%q: %w", key, err))
	}

	if len(globs) == 0 {
		return nil, declErr(ErrEmptyDeclaration, nil)
	}

	r.logger.Printf("globs: %s declares %d workspace globs in %s", m, len(globs), declPath)
	return globs, nil
}

// decodeDocument parses a declaration file into a generic document.
// An empty or null document decodes to a nil map.
func decodeDocument(m packagemanager.Manager, data []byte) (map[string]any, error) {
	var doc map[string]any
	if m.IsPnpm() {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
