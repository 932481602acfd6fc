package packagemanager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
)

// Lockfiles and marker files consulted by Detect.
const (
	PnpmLock        = "pnpm-lock.yaml"
	YarnLock        = "yarn.lock"
	YarnrcYML       = ".yarnrc.yml"
	PackageLockJSON = "package-lock.json"
)

// fileSystem defines the filesystem operations needed for detection.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// packageManagerField is the subset of package.json read by Detect.
type packageManagerField struct {
	PackageManager string `json:"packageManager"`
}

// Detect infers the manager of the repository at root.
//
// The corepack packageManager field in package.json wins when present.
// Otherwise lockfiles decide: pnpm-lock.yaml, then yarn.lock (Berry when a
// .yarnrc.yml sits beside it), then package-lock.json.
func Detect(root string, fs fileSystem) (Manager, error) {
	data, err := fs.ReadFile(filepath.Join(root, PackageJSON))
	if err == nil {
		var pkg packageManagerField
		// A package.json that is not JSON is the resolver's problem, not ours.
		if json.Unmarshal(data, &pkg) == nil && pkg.PackageManager != "" {
			return FromPackageManagerField(pkg.PackageManager)
		}
	}

	exists := func(name string) bool {
		_, err := fs.Stat(filepath.Join(root, name))
		return err == nil
	}

	switch {
	case exists(PnpmLock):
		return Pnpm, nil
	case exists(YarnLock):
		if exists(YarnrcYML) {
			return Berry, nil
		}
		return Yarn, nil
	case exists(PackageLockJSON):
		return Npm, nil
	}

	return Unknown, fmt.Errorf("%w in %s", ErrUndetected, root)
}

// FromPackageManagerField maps a corepack "name@version" value to a Manager.
func FromPackageManagerField(value string) (Manager, error) {
	name, version, ok := strings.Cut(strings.TrimSpace(value), "@")
	if !ok || version == "" {
		return Unknown, &PackageManagerFieldError{Value: value, Cause: errMissingVersion}
	}

	// Drop the corepack integrity suffix, e.g. "8.6.0+sha256.abc".
	version, _, _ = strings.Cut(version, "+")
	v := "v" + version
	if !semver.IsValid(v) {
		return Unknown, &PackageManagerFieldError{Value: value, Cause: errInvalidVersion}
	}

	switch name {
	case "npm":
		return Npm, nil
	case "pnpm":
		if semver.Compare(v, "v7.0.0") < 0 {
			return Pnpm6, nil
		}
		return Pnpm, nil
	case "yarn":
		if semver.Compare(v, "v2.0.0") < 0 {
			return Yarn, nil
		}
		return Berry, nil
	default:
		return Unknown, &PackageManagerFieldError{Value: value, Cause: &UnknownManagerError{Name: name}}
	}
}
