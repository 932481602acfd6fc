package globset

import (
	"errors"
	"fmt"
)

// -- Error Types --

// PatternError is returned when a pattern cannot be added to a set.
type PatternError struct {
	Pattern string
	Cause   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("glob %q: %v", e.Pattern, e.Cause)
}
func (e *PatternError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrInvalidPattern  = errors.New("invalid glob pattern")
	ErrInvalidEncoding = errors.New("pattern is not valid UTF-8")
)
