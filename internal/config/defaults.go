package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Resolver ResolverConfig `json:"resolver"`
	Output   OutputConfig   `json:"output"`
}

type ResolverConfig struct {
	// Manager forces a package manager; empty means detect from the repository.
	Manager string `json:"manager"` // Default: ""

	// Manifest discovery
	ManifestName       string `json:"manifest_name"`        // Default: package.json
	MaxDeclarationSize int64  `json:"max_declaration_size"` // Default: 5 * 1024 * 1024 (5MB)

	// Traversal
	MaxDepth         int  `json:"max_depth"`         // Default: 0 (unlimited)
	RespectGitignore bool `json:"respect_gitignore"` // Default: false
}

type OutputConfig struct {
	Format   string `json:"format"`   // Default: text
	Relative bool   `json:"relative"` // Default: false
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Resolver: ResolverConfig{
			Manager:            "",
			ManifestName:       "package.json",
			MaxDeclarationSize: 5 * 1024 * 1024,
			MaxDepth:           0,
			RespectGitignore:   false,
		},
		Output: OutputConfig{
			Format:   FormatText,
			Relative: false,
		},
	}
}
