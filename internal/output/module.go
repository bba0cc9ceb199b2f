package output

import (
	"fmt"
	"io"
	"strconv"
)

// Banner is prepended to every generated source module
const Banner = "// THIS FILE IS GENERATED BY `lintsmith generate`. DO NOT EDIT IT DIRECTLY.\n"

// ModuleRenderer renders a preset as a TypeScript config-factory
// module. The module default-exports a factory taking the plugin and
// parser handles and returning a flat-config array: the shared base
// config first, then the preset's rules block.
type ModuleRenderer struct{}

// Render writes the preset as TypeScript source
func (r *ModuleRenderer) Render(w io.Writer, p *Preset) error {
	if _, err := io.WriteString(w, Banner); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, `import { baseConfig } from "./base";`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `export default (plugin: unknown, parser: unknown) => [`)
	fmt.Fprintln(w, `  baseConfig(plugin, parser),`)
	fmt.Fprintln(w, `  {`)
	fmt.Fprintf(w, "    name: %s,\n", strconv.Quote(p.Name))
	fmt.Fprintln(w, `    rules: {`)
	for _, name := range p.Rules.Names() {
		severity, _ := p.Rules.Get(name)
		fmt.Fprintf(w, "      %s: %s,\n", strconv.Quote(name), strconv.Quote(severity.String()))
	}
	fmt.Fprintln(w, `    },`)
	fmt.Fprintln(w, `  },`)
	_, err := fmt.Fprintln(w, `];`)
	return err
}
