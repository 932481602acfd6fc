package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Resolver(t *testing.T) {
	t.Run("Known Manager Passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolver.Manager = "Pnpm6"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Unknown Manager Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolver.Manager = "bun"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "resolver.manager")
	})

	t.Run("Empty Manifest Name Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolver.ManifestName = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "manifest_name")
	})

	t.Run("Manifest Name With Glob Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolver.ManifestName = "*.json"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "plain file name")
	})

	t.Run("Manifest Name With Separator Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolver.ManifestName = "sub/package.json"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Zero Declaration Size Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolver.MaxDeclarationSize = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_declaration_size")
	})

	t.Run("Negative Max Depth Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolver.MaxDepth = -1
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_depth")
	})
}

func TestValidate_Output(t *testing.T) {
	t.Run("Unknown Format Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Output.Format = "yaml"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "output.format")
	})

	t.Run("Multiple Failures Reported Together", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Output.Format = ""
		cfg.Resolver.MaxDepth = -5
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "output.format")
		assert.Contains(t, err.Error(), "max_depth")
	})
}
