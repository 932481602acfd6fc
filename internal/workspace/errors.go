package workspace

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/wsresolve/internal/globwalk"
	"github.com/Cyclone1070/wsresolve/internal/packagemanager"
)

// -- Error Types --

// DeclarationError reports a failure to read workspace globs from a
// manager's declaration file. It unwraps to both Kind and Cause.
type DeclarationError struct {
	Manager packagemanager.Manager
	Path    string
	Kind    error
	Cause   error
}

func (e *DeclarationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s workspaces in %s: %v", e.Manager, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s workspaces in %s: %v: %v", e.Manager, e.Path, e.Kind, e.Cause)
}

func (e *DeclarationError) Unwrap() []error {
	return joinCause(e.Kind, e.Cause)
}

// IgnoreSetError reports an ignore pattern that could not be compiled.
type IgnoreSetError struct {
	Manager packagemanager.Manager
	Pattern string
	Kind    error
	Cause   error
}

func (e *IgnoreSetError) Error() string {
	return fmt.Sprintf("%s ignore pattern %q: %v", e.Manager, e.Pattern, e.Cause)
}

func (e *IgnoreSetError) Unwrap() []error {
	return joinCause(e.Kind, e.Cause)
}

// GlobError reports a workspace glob that could not be compiled into a
// manifest pattern.
type GlobError struct {
	Manager packagemanager.Manager
	Glob    string
	Kind    error
	Cause   error
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("%s workspace glob %q: %v", e.Manager, e.Glob, e.Cause)
}

func (e *GlobError) Unwrap() []error {
	return joinCause(e.Kind, e.Cause)
}

// ManifestError reports a workspace manifest that could not be read.
type ManifestError struct {
	Path  string
	Kind  error
	Cause error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %v: %v", e.Path, e.Kind, e.Cause)
}

func (e *ManifestError) Unwrap() []error {
	return joinCause(e.Kind, e.Cause)
}

// RootError reports a repository root that is not an existing directory.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("repository root %q: %v", e.Root, e.Cause)
}

func (e *RootError) Unwrap() []error {
	return joinCause(ErrInvalidPath, e.Cause)
}

func joinCause(kind, cause error) []error {
	if cause == nil {
		return []error{kind}
	}
	return []error{kind, cause}
}

// -- Sentinels --

var (
	ErrMissingFile       = errors.New("missing file")
	ErrMalformedDocument = errors.New("malformed document")
	ErrEmptyDeclaration  = errors.New("no workspaces declared")
	ErrInvalidPath       = errors.New("invalid path")
	ErrGlobCompile       = errors.New("glob does not compile")
	// ErrFilesystem is shared with the walker so a *globwalk.WalkError
	// matches it directly.
	ErrFilesystem = globwalk.ErrFilesystem
)

var (
	errKeyMissing = errors.New("key not present")
	errNullEntry  = errors.New("entry is null")
)
