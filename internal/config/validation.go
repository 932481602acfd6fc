package config

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/wsresolve/internal/packagemanager"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Resolver validation
	if c.Resolver.Manager != "" {
		if _, err := packagemanager.Parse(c.Resolver.Manager); err != nil {
			errs = append(errs, fmt.Sprintf("resolver.manager: %v", err))
		}
	}
	if c.Resolver.ManifestName == "" {
		errs = append(errs, "resolver.manifest_name must not be empty")
	} else if strings.ContainsAny(c.Resolver.ManifestName, `/\*?[]{}`) {
		errs = append(errs, "resolver.manifest_name must be a plain file name")
	}
	if c.Resolver.MaxDeclarationSize < 1 {
		errs = append(errs, "resolver.max_declaration_size must be >= 1")
	}
	if c.Resolver.MaxDepth < 0 {
		errs = append(errs, "resolver.max_depth must be >= 0")
	}

	// Output validation
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		errs = append(errs, fmt.Sprintf("output.format must be %q or %q", FormatText, FormatJSON))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
