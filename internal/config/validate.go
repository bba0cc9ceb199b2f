package config

import "fmt"

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Packages != nil {
		if cfg.Packages.Core == "" {
			return fmt.Errorf("packages.core must not be empty")
		}
		if cfg.Packages.Template == "" {
			return fmt.Errorf("packages.template must not be empty")
		}
	}

	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid output color: %s (must be 'auto', 'always' or 'never')", cfg.Output.Color)
		}
	}

	return nil
}
