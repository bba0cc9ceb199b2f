// Package generate sequences the preset-generation jobs and writes the
// artifacts into the plugin packages.
package generate

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lintsmith/lintsmith/internal/rules"
)

// VerifyCollection checks that every rule definition file in dir has a
// metadata record in the registry. One missing record fails the whole
// run; no artifact may be generated from a registry that has drifted
// from the shipped rule files.
func VerifyCollection(reg *rules.Registry, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("rule directory for the %s collection is not readable: %w", reg.Name(), err)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "*.ts")
	if err != nil {
		return fmt.Errorf("failed to enumerate rule files in %s: %w", dir, err)
	}
	sort.Strings(matches)

	for _, match := range matches {
		name := strings.TrimSuffix(match, ".ts")
		if name == "index" {
			continue
		}
		if _, ok := reg.Get(name); !ok {
			return fmt.Errorf("rule %q has a definition file in the %s collection but no exported metadata record", name, reg.Name())
		}
	}
	return nil
}
