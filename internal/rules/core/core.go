// Package core holds the rule metadata for the @lintsmith plugin.
// The rule implementations live in packages/eslint-plugin/src/rules;
// `lintsmith generate` verifies that every rule file there has a record
// here before deriving the preset artifacts.
package core

import "github.com/lintsmith/lintsmith/internal/rules"

// Prefix qualifies core rule names in generated presets
const Prefix = "@lintsmith/"

// Collection is the core rule registry
var Collection = rules.NewRegistry("core")

func init() {
	for _, r := range []rules.Rule{
		{
			Name:        "component-class-suffix",
			Description: "Classes decorated with @Component must have a suffix in their name",
			Recommended: true,
		},
		{
			Name:        "contextual-lifecycle",
			Description: "Lifecycle methods may only be declared in classes that support them",
			Recommended: true,
		},
		{
			Name:        "directive-class-suffix",
			Description: "Classes decorated with @Directive must have a suffix in their name",
			Recommended: true,
		},
		{
			Name:        "no-conflicting-lifecycle",
			Description: "Disallows declaring lifecycle interfaces with conflicting semantics on one class",
			Recommended: true,
		},
		{
			Name:        "no-empty-lifecycle-method",
			Description: "Disallows lifecycle methods with empty bodies",
			Recommended: true,
		},
		{
			Name:        "no-forward-ref",
			Description: "Disallows forwardRef references to resolve provider cycles",
		},
		{
			Name:        "no-host-metadata-property",
			Description: "Disallows the host metadata property in favor of host bindings and listeners",
			Deprecated:  true,
		},
		{
			Name:        "no-input-rename",
			Description: "Disallows renaming inputs through the decorator alias",
			Recommended: true,
		},
		{
			Name:        "no-output-on-prefix",
			Description: "Disallows output names prefixed with \"on\"",
			Recommended: true,
		},
		{
			Name:        "no-output-rename",
			Description: "Disallows renaming outputs through the decorator alias",
			Recommended: true,
		},
		{
			Name:                 "prefer-output-readonly",
			Description:          "Output members should be marked readonly",
			RequiresTypeChecking: true,
		},
		{
			Name:        "prefer-standalone",
			Description: "Components, directives and pipes should be standalone",
			Recommended: true,
		},
		{
			Name:                 "use-injectable-provided-in",
			Description:          "Injectable services should use providedIn rather than module provider lists",
			RequiresTypeChecking: true,
		},
		{
			Name:        "use-lifecycle-interface",
			Description: "Classes implementing lifecycle methods must declare the matching interface",
			Recommended: true,
		},
	} {
		Collection.Register(r)
	}
}
