package config

import (
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

const testConfigPath = "/home/user/.config/wsresolve/config.json"

func loaderWithConfig(configJSON string) *Loader {
	return NewLoaderWithFS(&MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(configJSON),
		},
	})
}

func envMap(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "package.json", cfg.Resolver.ManifestName)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	configJSON := `{
		"resolver": {
			"manager": "pnpm",
			"manifest_name": "package.yaml",
			"max_declaration_size": 1024,
			"max_depth": 4,
			"respect_gitignore": true
		},
		"output": {"format": "json", "relative": true}
	}`

	cfg, err := loaderWithConfig(configJSON).Load()

	require.NoError(t, err)
	assert.Equal(t, "pnpm", cfg.Resolver.Manager)
	assert.Equal(t, "package.yaml", cfg.Resolver.ManifestName)
	assert.Equal(t, int64(1024), cfg.Resolver.MaxDeclarationSize)
	assert.Equal(t, 4, cfg.Resolver.MaxDepth)
	assert.True(t, cfg.Resolver.RespectGitignore)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.Relative)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	cfg, err := loaderWithConfig(`{"output": {"relative": true}}`).Load()

	require.NoError(t, err)
	assert.True(t, cfg.Output.Relative)                                  // Overridden
	assert.Equal(t, FormatText, cfg.Output.Format)                       // Default
	assert.Equal(t, int64(5*1024*1024), cfg.Resolver.MaxDeclarationSize) // Default
}

func TestLoad_EmptyConfigFile_ReturnsDefaults(t *testing.T) {
	cfg, err := loaderWithConfig(`{}`).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	loader := loaderWithConfig(`{"resolver": {"manager": "npm"}, "output": {"format": "json"}}`).
		WithEnv(envMap(map[string]string{
			EnvManager:   "berry",
			EnvFormat:    "text",
			EnvGitignore: "true",
			EnvMaxDepth:  "3",
		}))

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "berry", cfg.Resolver.Manager)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.True(t, cfg.Resolver.RespectGitignore)
	assert.Equal(t, 3, cfg.Resolver.MaxDepth)
}

// --- UNHAPPY PATH TESTS ---

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	cfg, err := loaderWithConfig(`{invalid json`).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("homeless"),
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_WrongJSONType_ReturnsError(t *testing.T) {
	cfg, err := loaderWithConfig(`["not", "an", "object"]`).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidEnv_ReturnsError(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"gitignore not a bool", map[string]string{EnvGitignore: "sometimes"}},
		{"max depth not a number", map[string]string{EnvMaxDepth: "deep"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loaderWithConfig(`{}`).WithEnv(envMap(tt.env)).Load()

			assert.Nil(t, cfg)
			var envErr *EnvError
			require.ErrorAs(t, err, &envErr)
			var numErr *strconv.NumError
			assert.ErrorAs(t, err, &numErr)
		})
	}
}

func TestLoad_UnknownManagerInEnv_FailsValidation(t *testing.T) {
	cfg, err := loaderWithConfig(`{}`).WithEnv(envMap(map[string]string{EnvManager: "bun"})).Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolver.manager")
}

// --- EDGE CASE TESTS ---

func TestLoad_ExplicitZeroOverrides(t *testing.T) {
	// Explicit zero values replace defaults, so validation sees them
	cfg, err := loaderWithConfig(`{"resolver": {"max_declaration_size": 0}}`).Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_UnknownFields_Ignored(t *testing.T) {
	cfg, err := loaderWithConfig(`{"output": {"format": "json"}, "unknown_field": "ignored"}`).Load()

	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}
