// Package mocks provides test doubles shared across packages.
package mocks

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileReader is the read side of the real filesystem service.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (os.FileInfo, error)
}

// MockFileInfo implements os.FileInfo
type MockFileInfo struct {
	NameVal  string
	SizeVal  int64
	ModeVal  os.FileMode
	IsDirVal bool
}

func (f *MockFileInfo) Name() string       { return f.NameVal }
func (f *MockFileInfo) Size() int64        { return f.SizeVal }
func (f *MockFileInfo) Mode() os.FileMode  { return f.ModeVal }
func (f *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (f *MockFileInfo) IsDir() bool        { return f.IsDirVal }
func (f *MockFileInfo) Sys() any           { return nil }

// MockFileSystem serves files from memory keyed by absolute path.
// Paths it does not know fall through to Fallback when set, so a test can
// overlay failures on a real directory tree.
type MockFileSystem struct {
	Mu       sync.RWMutex
	Files    map[string][]byte // path -> content
	Dirs     map[string]bool   // path -> is directory
	Errors   map[string]error  // path -> error to return
	Reads    []string          // ReadFile calls in order
	Fallback FileReader
}

// NewMockFileSystem creates a new mock filesystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:  make(map[string][]byte),
		Dirs:   make(map[string]bool),
		Errors: make(map[string]error),
	}
}

// NewOverlay creates a mock filesystem that falls through to base.
func NewOverlay(base FileReader) *MockFileSystem {
	f := NewMockFileSystem()
	f.Fallback = base
	return f
}

// SetError sets an error to return for a specific path
func (f *MockFileSystem) SetError(path string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Errors[path] = err
}

// CreateFile creates a file with content
func (f *MockFileSystem) CreateFile(path string, content []byte) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Files[path] = content
	f.Dirs[path] = false
}

// CreateDir creates a directory
func (f *MockFileSystem) CreateDir(path string) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Dirs[path] = true
}

// ReadCount returns how many times path was read.
func (f *MockFileSystem) ReadCount(path string) int {
	f.Mu.RLock()
	defer f.Mu.RUnlock()
	n := 0
	for _, p := range f.Reads {
		if p == path {
			n++
		}
	}
	return n
}

func (f *MockFileSystem) ReadFile(path string) ([]byte, error) {
	f.Mu.Lock()
	f.Reads = append(f.Reads, path)
	f.Mu.Unlock()

	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.Errors[path]; ok {
		return nil, err
	}
	if content, ok := f.Files[path]; ok {
		return content, nil
	}
	if f.Dirs[path] {
		return nil, &os.PathError{Op: "read", Path: path, Err: os.ErrInvalid}
	}
	if f.Fallback != nil {
		return f.Fallback.ReadFile(path)
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (f *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.Errors[path]; ok {
		return nil, err
	}
	if isDir, ok := f.Dirs[path]; ok {
		info := &MockFileInfo{NameVal: filepath.Base(path), ModeVal: 0o644, IsDirVal: isDir}
		if isDir {
			info.ModeVal = os.ModeDir | 0o755
		} else {
			info.SizeVal = int64(len(f.Files[path]))
		}
		return info, nil
	}
	if f.Fallback != nil {
		return f.Fallback.Stat(path)
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}
