// Package preset turns a rule collection and a selection policy into
// the rules mapping that backs a generated preset.
package preset

// TypeCheckingFilter controls how rules that require type information
// are selected
type TypeCheckingFilter int

const (
	// TypeCheckingAny applies no filter
	TypeCheckingAny TypeCheckingFilter = iota
	// TypeCheckingOnly selects only rules that require type checking
	TypeCheckingOnly
	// TypeCheckingExclude drops rules that require type checking
	TypeCheckingExclude
)

// Policy describes which rules of a collection enter a preset and at
// which severity
type Policy struct {
	// ErrorOverride forces every selected rule to error severity,
	// ignoring the per-rule recommended flag
	ErrorOverride bool

	// ExcludeDeprecated drops rules marked deprecated
	ExcludeDeprecated bool

	// TypeChecking filters on the requires-type-checking flag
	TypeChecking TypeCheckingFilter

	// AccessibilityOnly selects only rules carrying the accessibility
	// description tag
	AccessibilityOnly bool
}
