package config

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		Packages: &PackagesConfig{
			Core:     "packages/eslint-plugin",
			Template: "packages/eslint-plugin-template",
		},
		Output: &OutputConfig{
			Color: "auto",
		},
	}
}

// DefaultConfigHCL returns the commented starter configuration written
// by `lintsmith init`
func DefaultConfigHCL() string {
	return `# lintsmith configuration
version = 1

# Plugin package roots. Generated presets are written into the
# configs/ directory of each package.
packages {
  core     = "packages/eslint-plugin"
  template = "packages/eslint-plugin-template"
}

output {
  # Color mode: auto, always, never
  color = "auto"
}
`
}
