package output

import (
	"encoding/json"
	"io"

	"github.com/lintsmith/lintsmith/internal/preset"
)

// FlatRenderer renders a preset as a flat JSON config object
type FlatRenderer struct{}

// flatConfig is the structure of the JSON artifact. Field order is the
// published artifact shape; do not reorder.
type flatConfig struct {
	Parser  string               `json:"parser"`
	Plugins []string             `json:"plugins"`
	Rules   *preset.RulesMapping `json:"rules"`
}

// Render writes the preset as pretty-printed JSON
func (r *FlatRenderer) Render(w io.Writer, p *Preset) error {
	cfg := flatConfig{
		Parser:  p.Parser,
		Plugins: []string{p.Plugin},
		Rules:   p.Rules,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
