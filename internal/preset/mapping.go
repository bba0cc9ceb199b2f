package preset

import (
	"bytes"
	"encoding/json"

	"github.com/lintsmith/lintsmith/internal/types"
)

// RulesMapping maps qualified rule names to severities, preserving
// insertion order. Keys are unique; the mapping is built once per
// artifact and not mutated afterwards.
type RulesMapping struct {
	names      []string
	severities map[string]types.Severity
}

// NewRulesMapping creates an empty RulesMapping
func NewRulesMapping() *RulesMapping {
	return &RulesMapping{
		severities: make(map[string]types.Severity),
	}
}

// Set inserts a qualified rule name at the given severity. Setting an
// existing name updates the severity without changing its position.
func (m *RulesMapping) Set(name string, severity types.Severity) {
	if _, ok := m.severities[name]; !ok {
		m.names = append(m.names, name)
	}
	m.severities[name] = severity
}

// Get returns the severity for a qualified rule name
func (m *RulesMapping) Get(name string) (types.Severity, bool) {
	severity, ok := m.severities[name]
	return severity, ok
}

// Len returns the number of entries
func (m *RulesMapping) Len() int {
	return len(m.names)
}

// Names returns the qualified rule names in insertion order
func (m *RulesMapping) Names() []string {
	result := make([]string, len(m.names))
	copy(result, m.names)
	return result
}

// MarshalJSON implements json.Marshaler, emitting entries in insertion
// order rather than the sorted order encoding/json uses for maps.
func (m *RulesMapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.severities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
