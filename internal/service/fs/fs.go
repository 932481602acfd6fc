// Package fs provides the read-only OS filesystem service used by the resolver.
package fs

import (
	"io"
	"os"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
type OSFileSystem struct {
	maxFileSize int64
}

// NewOSFileSystem creates a new OSFileSystem. Reads of files larger than
// maxFileSize bytes fail with FileTooLargeError; zero or less disables the cap.
func NewOSFileSystem(maxFileSize int64) *OSFileSystem {
	return &OSFileSystem{maxFileSize: maxFileSize}
}

// Stat returns file info for a path (follows symlinks).
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads a whole file, enforcing the configured size cap.
func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &IsDirectoryError{Path: path}
	}
	if fs.maxFileSize > 0 && info.Size() > fs.maxFileSize {
		return nil, &FileTooLargeError{Path: path, Size: info.Size(), Max: fs.maxFileSize}
	}

	return io.ReadAll(file)
}

// UserHomeDir returns the current user's home directory.
func (fs *OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
