package globwalk

import (
	"errors"
	"fmt"
)

// -- Error Types --

// WalkError reports a filesystem failure on one entry of a walk.
type WalkError struct {
	Path  string
	Cause error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("walk %s: %v", e.Path, e.Cause)
}
func (e *WalkError) Unwrap() []error { return []error{ErrFilesystem, e.Cause} }

// -- Sentinels --

var (
	ErrFilesystem = errors.New("filesystem error")
)
