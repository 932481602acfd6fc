package fs

import (
	"errors"
	"fmt"
)

// -- Error Types --

type FileTooLargeError struct {
	Path string
	Size int64
	Max  int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, exceeds limit of %d", e.Path, e.Size, e.Max)
}
func (e *FileTooLargeError) Unwrap() error { return ErrTooLarge }

type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("%s is a directory", e.Path)
}
func (e *IsDirectoryError) Unwrap() error { return ErrIsDirectory }

// -- Sentinels --

var (
	ErrTooLarge    = errors.New("file exceeds size limit")
	ErrIsDirectory = errors.New("is a directory")
)
