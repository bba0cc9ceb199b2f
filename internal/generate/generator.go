package generate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/lintsmith/lintsmith/internal/output"
	"github.com/lintsmith/lintsmith/internal/preset"
)

// Generator runs the fixed set of preset-generation jobs against the
// two rule collections. Jobs run sequentially and the first failure
// aborts the remainder of the run.
type Generator struct {
	Core     Collection
	Template Collection

	// Logger receives per-rule and per-artifact progress
	Logger hclog.Logger

	// Out receives the human-readable write confirmations
	Out io.Writer

	// ColorEnabled controls colored output on Out
	ColorEnabled bool
}

// Run validates both collections and then executes the five jobs in
// order. No artifact is written if either collection fails validation.
func (g *Generator) Run() error {
	if g.Logger == nil {
		g.Logger = hclog.NewNullLogger()
	}
	if g.Out == nil {
		g.Out = os.Stdout
	}
	if !g.ColorEnabled {
		color.NoColor = true
	}

	for _, c := range []Collection{g.Core, g.Template} {
		if err := VerifyCollection(c.Registry, c.RulesDir); err != nil {
			return err
		}
	}

	for _, j := range g.jobs() {
		g.Logger.Info("generating preset", "collection", j.collection.Registry.Name(), "preset", j.name)
		if err := g.runJob(j); err != nil {
			return fmt.Errorf("failed to generate %s preset for the %s collection: %w", j.name, j.collection.Registry.Name(), err)
		}
	}
	return nil
}

// runJob computes one rules mapping and writes its flat and wrapped
// artifacts
func (g *Generator) runJob(j job) error {
	mapping := preset.Build(j.collection.Registry, j.collection.Prefix, j.policy, g.Logger)

	p := &output.Preset{
		Name:   j.moduleName,
		Parser: j.collection.Parser,
		Plugin: j.collection.Plugin,
		Rules:  mapping,
	}

	dir := filepath.Join(j.collection.Root, "configs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := g.writeArtifact(filepath.Join(dir, j.flatFile), &output.FlatRenderer{}, p); err != nil {
		return err
	}
	return g.writeArtifact(filepath.Join(dir, j.moduleFile), &output.ModuleRenderer{}, p)
}

func (g *Generator) writeArtifact(path string, renderer output.Renderer, p *output.Preset) error {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, p); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	g.Logger.Debug("wrote artifact", "path", path, "rules", p.Rules.Len())
	fmt.Fprintf(g.Out, "%s %s (%d rules)\n", color.GreenString("wrote"), path, p.Rules.Len())
	return nil
}
