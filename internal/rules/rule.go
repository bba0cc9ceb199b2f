// Package rules defines the metadata records for lint rules and the
// registries that group them into collections.
package rules

import "strings"

// accessibilityTag marks a rule description as belonging to the
// accessibility subset. Kept in sync with the docs convention used by
// the template plugin.
const accessibilityTag = "[Accessibility]"

// Rule is the metadata record for a single lint rule. The rule's
// implementation lives in its plugin package; this record only drives
// preset generation and documentation.
type Rule struct {
	// Name is the rule identifier, unique within its collection
	// (e.g. "component-class-suffix")
	Name string

	// Description is the human-readable summary of what the rule checks
	Description string

	// Recommended marks the rule as part of the recommended preset
	Recommended bool

	// Deprecated marks the rule as scheduled for removal
	Deprecated bool

	// RequiresTypeChecking marks rules that need type information and
	// therefore cannot run in syntax-only setups
	RequiresTypeChecking bool
}

// Accessibility reports whether the rule belongs to the accessibility
// subset, derived from the description tag.
func (r Rule) Accessibility() bool {
	return strings.HasPrefix(r.Description, accessibilityTag)
}
