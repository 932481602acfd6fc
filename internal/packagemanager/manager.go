// Package packagemanager models the JavaScript package managers whose
// workspace conventions wsresolve understands.
package packagemanager

import (
	"fmt"
	"strings"
)

// Manager identifies a package manager convention. The zero value is invalid.
type Manager uint8

const (
	Unknown Manager = iota
	// Berry is Yarn 2 and later.
	Berry
	Npm
	// Pnpm is pnpm 7 and later.
	Pnpm
	// Pnpm6 is pnpm 6 and earlier.
	Pnpm6
	// Yarn is Yarn classic (1.x).
	Yarn
)

// Declaration file names.
const (
	PackageJSON       = "package.json"
	PnpmWorkspaceYAML = "pnpm-workspace.yaml"
)

var names = map[Manager]string{
	Berry: "berry",
	Npm:   "npm",
	Pnpm:  "pnpm",
	Pnpm6: "pnpm6",
	Yarn:  "yarn",
}

// All returns every supported manager in declaration order.
func All() []Manager {
	return []Manager{Berry, Npm, Pnpm, Pnpm6, Yarn}
}

// String returns the lowercase manager name.
func (m Manager) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	if m == Unknown {
		return ""
	}
	return fmt.Sprintf("unknown(%d)", uint8(m))
}

// Valid reports whether m is one of the supported managers.
func (m Manager) Valid() bool {
	_, ok := names[m]
	return ok
}

// IsPnpm reports whether m belongs to the pnpm family.
func (m Manager) IsPnpm() bool {
	return m == Pnpm || m == Pnpm6
}

// DeclarationFile returns the root file in which m declares workspace globs.
func (m Manager) DeclarationFile() string {
	switch m {
	case Pnpm, Pnpm6:
		return PnpmWorkspaceYAML
	case Berry, Npm, Yarn:
		return PackageJSON
	default:
		return ""
	}
}

// DeclarationKey returns the top-level key holding the glob list inside
// DeclarationFile.
func (m Manager) DeclarationKey() string {
	switch m {
	case Pnpm, Pnpm6:
		return "packages"
	case Berry, Npm, Yarn:
		return "workspaces"
	default:
		return ""
	}
}

// Parse maps a manager name to its Manager. Matching is case-insensitive.
func Parse(name string) (Manager, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for m, n := range names {
		if n == normalized {
			return m, nil
		}
	}
	return Unknown, &UnknownManagerError{Name: name}
}

// Set implements pflag.Value so a Manager can be bound to a CLI flag.
func (m *Manager) Set(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Manager) Type() string {
	return "manager"
}
