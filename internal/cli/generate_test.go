package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintsmith/lintsmith/internal/rules"
	"github.com/lintsmith/lintsmith/internal/rules/core"
	"github.com/lintsmith/lintsmith/internal/rules/template"
)

// scaffoldPackages lays out both plugin packages with one rule
// definition file per registered record, the state the completeness
// check expects.
func scaffoldPackages(t *testing.T, dir string) {
	t.Helper()
	for _, c := range []struct {
		root string
		reg  *rules.Registry
	}{
		{"packages/eslint-plugin", core.Collection},
		{"packages/eslint-plugin-template", template.Collection},
	} {
		rulesDir := filepath.Join(dir, c.root, "src", "rules")
		if err := os.MkdirAll(rulesDir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", rulesDir, err)
		}
		for _, name := range c.reg.Names() {
			path := filepath.Join(rulesDir, name+".ts")
			if err := os.WriteFile(path, []byte("export default {};\n"), 0644); err != nil {
				t.Fatalf("failed to write %s: %v", path, err)
			}
		}
	}
}

func TestRunGenerate_EndToEnd(t *testing.T) {
	tmpDir := chdirTemp(t)
	scaffoldPackages(t, tmpDir)
	configFlag = ""
	verboseFlag = false

	if err := runGenerate(nil, nil); err != nil {
		t.Fatalf("runGenerate returned error: %v", err)
	}

	artifacts := []string{
		"packages/eslint-plugin/configs/all.json",
		"packages/eslint-plugin/configs/recommended.json",
		"packages/eslint-plugin/configs/ts-all.ts",
		"packages/eslint-plugin/configs/ts-recommended.ts",
		"packages/eslint-plugin-template/configs/all.json",
		"packages/eslint-plugin-template/configs/recommended.json",
		"packages/eslint-plugin-template/configs/accessibility.json",
		"packages/eslint-plugin-template/configs/template-all.ts",
		"packages/eslint-plugin-template/configs/template-recommended.ts",
		"packages/eslint-plugin-template/configs/template-accessibility.ts",
	}
	for _, artifact := range artifacts {
		if _, err := os.Stat(filepath.Join(tmpDir, artifact)); err != nil {
			t.Errorf("expected artifact %s: %v", artifact, err)
		}
	}
}

func TestRunGenerate_CarveOutInRecommended(t *testing.T) {
	tmpDir := chdirTemp(t)
	scaffoldPackages(t, tmpDir)
	configFlag = ""
	verboseFlag = false

	if err := runGenerate(nil, nil); err != nil {
		t.Fatalf("runGenerate returned error: %v", err)
	}

	recommended, err := os.ReadFile(filepath.Join(tmpDir, "packages/eslint-plugin/configs/recommended.json"))
	if err != nil {
		t.Fatalf("failed to read recommended.json: %v", err)
	}
	if !strings.Contains(string(recommended), `"@lintsmith/prefer-standalone": "warn"`) {
		t.Errorf("recommended.json should keep prefer-standalone at warn:\n%s", recommended)
	}

	all, err := os.ReadFile(filepath.Join(tmpDir, "packages/eslint-plugin/configs/all.json"))
	if err != nil {
		t.Fatalf("failed to read all.json: %v", err)
	}
	if !strings.Contains(string(all), `"@lintsmith/prefer-standalone": "error"`) {
		t.Errorf("all.json should force prefer-standalone to error:\n%s", all)
	}
}

func TestRunGenerate_MissingRecordFails(t *testing.T) {
	tmpDir := chdirTemp(t)
	scaffoldPackages(t, tmpDir)
	configFlag = ""
	verboseFlag = false

	orphan := filepath.Join(tmpDir, "packages/eslint-plugin/src/rules/orphan-rule.ts")
	if err := os.WriteFile(orphan, []byte("export default {};\n"), 0644); err != nil {
		t.Fatalf("failed to write orphan rule: %v", err)
	}

	err := runGenerate(nil, nil)
	if err == nil {
		t.Fatal("expected error for rule file without metadata record")
	}
	if !strings.Contains(err.Error(), "orphan-rule") {
		t.Errorf("error %q should name the orphan rule", err)
	}
}
