package path

import (
	"errors"
	"fmt"
)

// -- Error Types --

// RootError is returned when a repository root cannot be canonicalised.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("invalid repository root %s: %v", e.Root, e.Cause)
}
func (e *RootError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrOutsideRoot   = errors.New("path is outside the repository root")
	ErrRootNotSet    = errors.New("repository root not set")
	ErrNotADirectory = errors.New("not a directory")
)
