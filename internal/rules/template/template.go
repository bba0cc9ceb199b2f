// Package template holds the rule metadata for the @lintsmith/template
// plugin. Accessibility rules are tagged via the [Accessibility]
// description prefix, which drives the accessibility preset.
package template

import "github.com/lintsmith/lintsmith/internal/rules"

// Prefix qualifies template rule names in generated presets
const Prefix = "@lintsmith/template/"

// Collection is the template rule registry
var Collection = rules.NewRegistry("template")

func init() {
	for _, r := range []rules.Rule{
		{
			Name:        "alt-text",
			Description: "[Accessibility] Enforces alternate text for elements that require it",
		},
		{
			Name:        "banana-in-box",
			Description: "Enforces the correct two-way binding syntax",
			Recommended: true,
		},
		{
			Name:        "click-events-have-key-events",
			Description: "[Accessibility] Elements with click handlers must also handle key events",
		},
		{
			Name:        "conditional-complexity",
			Description: "Limits the complexity of conditional template expressions",
			Deprecated:  true,
		},
		{
			Name:        "elements-content",
			Description: "[Accessibility] Content-bearing elements must not be empty",
		},
		{
			Name:        "eqeqeq",
			Description: "Requires strict equality operators in template expressions",
			Recommended: true,
		},
		{
			Name:        "interactive-supports-focus",
			Description: "[Accessibility] Interactive elements must be focusable",
		},
		{
			Name:        "label-has-associated-control",
			Description: "[Accessibility] Label elements must be associated with a form control",
		},
		{
			Name:        "mouse-events-have-key-events",
			Description: "[Accessibility] Mouse event handlers must be paired with key event handlers",
		},
		{
			Name:        "no-call-expression",
			Description: "Disallows calling expressions in templates outside of event bindings",
		},
		{
			Name:        "no-distracting-elements",
			Description: "[Accessibility] Disallows distracting elements such as blink and marquee",
		},
		{
			Name:        "no-duplicate-attributes",
			Description: "Disallows duplicate attributes and bindings on the same element",
			Recommended: true,
		},
		{
			Name:        "no-negated-async",
			Description: "Disallows negating the result of the async pipe",
			Recommended: true,
		},
		{
			Name:                 "no-unsafe-call",
			Description:          "Disallows calling values whose template-context type is not callable",
			RequiresTypeChecking: true,
		},
		{
			Name:        "role-has-required-aria",
			Description: "[Accessibility] Elements with aria roles must declare the role's required attributes",
		},
		{
			Name:        "use-track-by-function",
			Description: "Repeated content must use a trackBy function",
		},
	} {
		Collection.Register(r)
	}
}
