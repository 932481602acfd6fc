package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Cyclone1070/wsresolve/internal/service/fs"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "wsresolve"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
	// maxConfigSize caps the config file read
	maxConfigSize = 1024 * 1024
)

// Environment variables that override file values.
const (
	EnvManager   = "WSRESOLVE_MANAGER"
	EnvFormat    = "WSRESOLVE_FORMAT"
	EnvGitignore = "WSRESOLVE_GITIGNORE"
	EnvMaxDepth  = "WSRESOLVE_MAX_DEPTH"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a production Loader using the real filesystem and environment
func NewLoader() *Loader {
	return &Loader{fs: fs.NewOSFileSystem(maxConfigSize), getenv: os.Getenv}
}

// NewLoaderWithFS creates a Loader with a custom filesystem and no environment (for testing)
func NewLoaderWithFS(fileSystem FileSystem) *Loader {
	return &Loader{fs: fileSystem, getenv: func(string) string { return "" }}
}

// WithEnv replaces the environment lookup used for overrides.
func (l *Loader) WithEnv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// Load reads configuration from ~/.config/wsresolve/config.json,
// merges it with defaults and applies environment overrides.
// Returns default config if dotfile doesn't exist.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: This implementation unmarshals JSON keys directly over the default configuration.
// This allows explicit zero values (e.g., 0, false, "") in the config file to override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := l.loadFile(cfg); err != nil {
		return nil, err
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	// Validate the merged configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) loadFile(cfg *Config) error {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return nil // Use defaults if can't get home dir
	}

	configPath := filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Use defaults if file doesn't exist
		}
		return err // Return error for permission issues
	}

	// Parse JSON directly into the default config struct.
	// This ensures that present keys overwrite defaults (even if zero),
	// while missing keys leave the defaults untouched.
	return json.Unmarshal(data, cfg)
}

// applyEnv overlays non-empty environment variables on cfg.
func (l *Loader) applyEnv(cfg *Config) error {
	if v := l.getenv(EnvManager); v != "" {
		cfg.Resolver.Manager = v
	}
	if v := l.getenv(EnvFormat); v != "" {
		cfg.Output.Format = v
	}
	if v := l.getenv(EnvGitignore); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &EnvError{Name: EnvGitignore, Value: v, Cause: err}
		}
		cfg.Resolver.RespectGitignore = b
	}
	if v := l.getenv(EnvMaxDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &EnvError{Name: EnvMaxDepth, Value: v, Cause: err}
		}
		cfg.Resolver.MaxDepth = n
	}
	return nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
