package packagemanager

import (
	"errors"
	"fmt"
)

// -- Error Types --

// UnknownManagerError is returned when a manager name is not recognised.
type UnknownManagerError struct {
	Name string
}

func (e *UnknownManagerError) Error() string {
	return fmt.Sprintf("unknown package manager %q (expected one of berry, npm, pnpm, pnpm6, yarn)", e.Name)
}
func (e *UnknownManagerError) Unwrap() error { return ErrUnknownManager }

// PackageManagerFieldError is returned when the packageManager field of
// package.json cannot be interpreted.
type PackageManagerFieldError struct {
	Value string
	Cause error
}

func (e *PackageManagerFieldError) Error() string {
	return fmt.Sprintf("invalid packageManager field %q: %v", e.Value, e.Cause)
}
func (e *PackageManagerFieldError) Unwrap() []error {
	return []error{ErrInvalidPackageManagerField, e.Cause}
}

// -- Sentinels --

var (
	ErrUnknownManager             = errors.New("unknown package manager")
	ErrInvalidPackageManagerField = errors.New("invalid packageManager field")
	ErrUndetected                 = errors.New("could not detect package manager")
	errMissingVersion             = errors.New("missing version")
	errInvalidVersion             = errors.New("version is not valid semver")
)
