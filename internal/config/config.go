// Package config handles loading and validating the lintsmith
// configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileName is the configuration file discovered in the working
// directory
const FileName = ".lintsmith.hcl"

// Config represents the lintsmith configuration
type Config struct {
	Version  int             `hcl:"version,attr"`
	Packages *PackagesConfig `hcl:"packages,block"`
	Output   *OutputConfig   `hcl:"output,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// PackagesConfig points at the two plugin package roots artifacts are
// written into
type PackagesConfig struct {
	Core     string `hcl:"core,optional"`
	Template string `hcl:"template,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Color string `hcl:"color,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if
// using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Load loads the configuration from the given path. An empty path
// falls back to the discovered working-directory file, and to the
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return Default(), nil
	}
	return loadFromFile(path)
}

// findConfigFile looks for the configuration file in the current
// directory
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	path := filepath.Join(cwd, FileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config
// blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Packages == nil {
		cfg.Packages = defaults.Packages
	} else {
		if cfg.Packages.Core == "" {
			cfg.Packages.Core = defaults.Packages.Core
		}
		if cfg.Packages.Template == "" {
			cfg.Packages.Template = defaults.Packages.Template
		}
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else if cfg.Output.Color == "" {
		cfg.Output.Color = defaults.Output.Color
	}
}
