// Package globset compiles glob patterns into a set that answers
// "does this path match any pattern".
//
// Patterns use doublestar syntax (`*`, `**`, `?`, `[...]`, `{a,b}`) and are
// always matched against slash-separated paths.
package globset

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobSet is an immutable, ordered set of validated glob patterns.
type GlobSet struct {
	patterns []string
}

// Builder accumulates patterns for a GlobSet.
type Builder struct {
	patterns []string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add validates pattern and appends it to the builder.
func (b *Builder) Add(pattern string) error {
	if !utf8.ValidString(pattern) {
		return &PatternError{Pattern: pattern, Cause: ErrInvalidEncoding}
	}
	if pattern == "" || !doublestar.ValidatePattern(pattern) {
		return &PatternError{Pattern: pattern, Cause: ErrInvalidPattern}
	}
	b.patterns = append(b.patterns, pattern)
	return nil
}

// Build freezes the builder into a GlobSet. Further Adds do not affect the
// returned set.
func (b *Builder) Build() *GlobSet {
	patterns := make([]string, len(b.patterns))
	copy(patterns, b.patterns)
	return &GlobSet{patterns: patterns}
}

// New compiles patterns in order, failing on the first invalid one.
func New(patterns ...string) (*GlobSet, error) {
	b := NewBuilder()
	for _, p := range patterns {
		if err := b.Add(p); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// Empty returns a set that matches nothing.
func Empty() *GlobSet {
	return &GlobSet{}
}

// IsMatch reports whether path matches any pattern in the set. OS-specific
// separators are converted to slashes first. A nil set matches nothing.
func (s *GlobSet) IsMatch(path string) bool {
	if s == nil || len(s.patterns) == 0 {
		return false
	}
	candidate := filepath.ToSlash(path)
	for _, p := range s.patterns {
		// Patterns were validated in Add, so ErrBadPattern cannot occur here.
		if ok, _ := doublestar.Match(p, candidate); ok {
			return true
		}
	}
	return false
}

// Len returns the number of patterns in the set.
func (s *GlobSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// Patterns returns a copy of the set's patterns in insertion order.
func (s *GlobSet) Patterns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// String renders the set for diagnostics.
func (s *GlobSet) String() string {
	return fmt.Sprintf("{%s}", strings.Join(s.Patterns(), ", "))
}

// Escape quotes every glob meta character in literal so it can be embedded
// in a pattern, e.g. an absolute root directory prefix.
func Escape(literal string) string {
	var b strings.Builder
	b.Grow(len(literal))
	for i := 0; i < len(literal); i++ {
		switch c := literal[i]; c {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
