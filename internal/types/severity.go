package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity represents the level a rule is set to in a preset
type Severity int

const (
	// SeverityOff disables the rule
	SeverityOff Severity = iota
	// SeverityWarn reports violations without failing the lint run
	SeverityWarn
	// SeverityError reports violations and fails the lint run
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warn"
	case SeverityOff:
		return "off"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity parses a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, nil
	case "warn":
		return SeverityWarn, nil
	case "off":
		return SeverityOff, nil
	default:
		return SeverityOff, fmt.Errorf("unknown severity: %s", s)
	}
}
