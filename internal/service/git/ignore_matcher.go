// Package git provides a .gitignore-backed ignore predicate that can be layered
// on top of a package manager's own ignore set.
package git

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreFile is the ignore file read from the repository root.
const GitignoreFile = ".gitignore"

// fileSystem defines the minimal filesystem interface needed for gitignore loading.
type fileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// IgnoreMatcher implements gitignore pattern matching using go-git's gitignore matcher.
type IgnoreMatcher struct {
	matcher gitignore.Matcher
}

// NewIgnoreMatcher creates a new gitignore matcher by loading .gitignore from the repository root.
// Returns a matcher that never ignores if .gitignore doesn't exist (no error).
func NewIgnoreMatcher(root string, fs fileSystem) (*IgnoreMatcher, error) {
	if root == "" {
		panic("root is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	gitignorePath := filepath.Join(root, GitignoreFile)

	content, err := fs.ReadFile(gitignorePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &IgnoreMatcher{matcher: nil}, nil
		}
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	}

	return &IgnoreMatcher{matcher: gitignore.NewMatcher(ParsePatterns(string(content)))}, nil
}

// ParsePatterns parses .gitignore content, skipping blank lines and comments.
func ParsePatterns(content string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}

// ShouldIgnore checks if a root-relative path matches any gitignore patterns.
// Returns false if no .gitignore was loaded.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m == nil || m.matcher == nil {
		return false
	}

	segments := splitPath(relativePath)
	if len(segments) == 0 {
		return false
	}
	return m.matcher.Match(segments, isDir)
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	parts := strings.Split(filepath.ToSlash(path), "/")
	var segments []string
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}

	return segments
}
