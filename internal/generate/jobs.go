package generate

import (
	"path/filepath"

	"github.com/lintsmith/lintsmith/internal/preset"
	"github.com/lintsmith/lintsmith/internal/rules"
	"github.com/lintsmith/lintsmith/internal/rules/core"
	"github.com/lintsmith/lintsmith/internal/rules/template"
)

// Publication bindings for the two shipped collections
const (
	coreParser     = "@typescript-eslint/parser"
	corePlugin     = "@lintsmith"
	templateParser = "@lintsmith/template-parser"
	templatePlugin = "@lintsmith/template"
)

// Collection pairs a rule registry with the bindings its presets are
// published under
type Collection struct {
	// Registry holds the metadata records
	Registry *rules.Registry

	// Prefix qualifies rule names in generated mappings
	Prefix string

	// Parser and Plugin are the package names bound in flat presets
	Parser string
	Plugin string

	// Root is the plugin package directory artifacts are written into
	Root string

	// RulesDir holds the rule definition files for the completeness
	// check
	RulesDir string
}

// Core returns the shipped core collection rooted at the given plugin
// package directory
func Core(root string) Collection {
	return Collection{
		Registry: core.Collection,
		Prefix:   core.Prefix,
		Parser:   coreParser,
		Plugin:   corePlugin,
		Root:     root,
		RulesDir: filepath.Join(root, "src", "rules"),
	}
}

// Template returns the shipped template collection rooted at the given
// plugin package directory
func Template(root string) Collection {
	return Collection{
		Registry: template.Collection,
		Prefix:   template.Prefix,
		Parser:   templateParser,
		Plugin:   templatePlugin,
		Root:     root,
		RulesDir: filepath.Join(root, "src", "rules"),
	}
}

// job is one fixed (collection, policy) pairing producing a flat and a
// wrapped artifact
type job struct {
	name       string
	collection Collection
	policy     preset.Policy
	flatFile   string
	moduleFile string
	moduleName string
}

// jobs returns the five fixed generation jobs in execution order
func (g *Generator) jobs() []job {
	return []job{
		{
			name:       "all",
			collection: g.Core,
			policy:     preset.Policy{ErrorOverride: true, ExcludeDeprecated: true},
			flatFile:   "all.json",
			moduleFile: "ts-all.ts",
			moduleName: "lintsmith/ts-all",
		},
		{
			name:       "recommended",
			collection: g.Core,
			policy:     preset.Policy{ExcludeDeprecated: true, TypeChecking: preset.TypeCheckingExclude},
			flatFile:   "recommended.json",
			moduleFile: "ts-recommended.ts",
			moduleName: "lintsmith/ts-recommended",
		},
		{
			name:       "all",
			collection: g.Template,
			policy:     preset.Policy{ErrorOverride: true, ExcludeDeprecated: true},
			flatFile:   "all.json",
			moduleFile: "template-all.ts",
			moduleName: "lintsmith/template-all",
		},
		{
			name:       "recommended",
			collection: g.Template,
			policy:     preset.Policy{ExcludeDeprecated: true, TypeChecking: preset.TypeCheckingExclude},
			flatFile:   "recommended.json",
			moduleFile: "template-recommended.ts",
			moduleName: "lintsmith/template-recommended",
		},
		{
			name:       "accessibility",
			collection: g.Template,
			policy:     preset.Policy{ErrorOverride: true, TypeChecking: preset.TypeCheckingExclude, AccessibilityOnly: true},
			flatFile:   "accessibility.json",
			moduleFile: "template-accessibility.ts",
			moduleName: "lintsmith/template-accessibility",
		},
	}
}
