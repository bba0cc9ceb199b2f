// Package output renders rules mappings into the artifact bodies that
// are written into the plugin packages.
package output

import (
	"io"

	"github.com/lintsmith/lintsmith/internal/preset"
)

// Preset is the input to a renderer: one computed rules mapping plus
// the bindings it is published with
type Preset struct {
	// Name identifies the config in flat-config arrays
	// (e.g. "lintsmith/ts-recommended"); only the module shape uses it
	Name string

	// Parser is the parser package the flat preset binds
	Parser string

	// Plugin is the plugin package name the preset enables
	Plugin string

	// Rules is the computed mapping
	Rules *preset.RulesMapping
}

// Renderer produces one artifact body for a preset
type Renderer interface {
	// Render writes the artifact body to the writer
	Render(w io.Writer, p *Preset) error
}
