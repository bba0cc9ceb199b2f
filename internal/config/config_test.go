package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}

	if cfg.Packages == nil {
		t.Fatal("expected packages to be set")
	}
	if cfg.Packages.Core != "packages/eslint-plugin" {
		t.Errorf("unexpected core package root: %s", cfg.Packages.Core)
	}
	if cfg.Packages.Template != "packages/eslint-plugin-template" {
		t.Errorf("unexpected template package root: %s", cfg.Packages.Template)
	}

	if cfg.Output == nil {
		t.Fatal("expected output to be set")
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("expected color 'auto', got %s", cfg.Output.Color)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	configContent := `
version = 1

packages {
  core     = "pkg/plugin"
  template = "pkg/plugin-template"
}

output {
  color = "never"
}
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if cfg.Packages.Core != "pkg/plugin" {
		t.Errorf("core = %s, want pkg/plugin", cfg.Packages.Core)
	}
	if cfg.Packages.Template != "pkg/plugin-template" {
		t.Errorf("template = %s, want pkg/plugin-template", cfg.Packages.Template)
	}
	if cfg.Output.Color != "never" {
		t.Errorf("color = %s, want never", cfg.Output.Color)
	}
	if cfg.ConfigPath() != configPath {
		t.Errorf("ConfigPath() = %s, want %s", cfg.ConfigPath(), configPath)
	}
}

func TestLoadAppliesDefaultsForMissingBlocks(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	if err := os.WriteFile(configPath, []byte("version = 1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Packages == nil || cfg.Packages.Core != "packages/eslint-plugin" {
		t.Errorf("expected default packages block, got %+v", cfg.Packages)
	}
	if cfg.Output == nil || cfg.Output.Color != "auto" {
		t.Errorf("expected default output block, got %+v", cfg.Output)
	}
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	if err := os.WriteFile(configPath, []byte("version = 2\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestValidateColor(t *testing.T) {
	cfg := Default()
	cfg.Output.Color = "rainbow"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error for invalid color mode")
	}
	if !strings.Contains(err.Error(), "rainbow") {
		t.Errorf("error %q should name the invalid value", err)
	}
}

func TestDefaultConfigHCLParses(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	if err := os.WriteFile(configPath, []byte(DefaultConfigHCL()), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("starter config should load cleanly: %v", err)
	}
	if cfg.Packages.Core != Default().Packages.Core {
		t.Errorf("starter config core = %s, want default", cfg.Packages.Core)
	}
}
