package rules

import "sort"

// Registry holds the rule records of one collection
type Registry struct {
	name  string
	rules map[string]Rule
}

// NewRegistry creates a new empty Registry. The name identifies the
// collection in error messages (e.g. "core", "template").
func NewRegistry(name string) *Registry {
	return &Registry{
		name:  name,
		rules: make(map[string]Rule),
	}
}

// Name returns the collection name
func (r *Registry) Name() string {
	return r.name
}

// Register adds a rule record to the registry. Registering the same
// rule name twice overwrites the earlier record.
func (r *Registry) Register(rule Rule) {
	r.rules[rule.Name] = rule
}

// Get returns a rule record by name
func (r *Registry) Get(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// Len returns the number of registered rules
func (r *Registry) Len() int {
	return len(r.rules)
}

// Names returns all rule names sorted alphabetically
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all rule records sorted alphabetically by name.
// Preset generation depends on this order for deterministic output.
func (r *Registry) All() []Rule {
	result := make([]Rule, 0, len(r.rules))
	for _, name := range r.Names() {
		result = append(result, r.rules[name])
	}
	return result
}
