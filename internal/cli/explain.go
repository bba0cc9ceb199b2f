package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lintsmith/lintsmith/internal/rules"
	"github.com/lintsmith/lintsmith/internal/rules/core"
	"github.com/lintsmith/lintsmith/internal/rules/template"
)

var explainCmd = &cobra.Command{
	Use:   "explain <rule>",
	Short: "Show rule metadata",
	Long: `Show the metadata record for a rule: its collection, description and
the flags that drive preset generation.

The rule may be given bare or fully qualified:
  lintsmith explain prefer-standalone
  lintsmith explain @lintsmith/template/alt-text`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	name := args[0]

	rule, collection, ok := lookupRule(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown rule: %s\n", name)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Available rules:")
		for _, n := range core.Collection.Names() {
			fmt.Fprintf(os.Stderr, "  %s%s\n", core.Prefix, n)
		}
		for _, n := range template.Collection.Names() {
			fmt.Fprintf(os.Stderr, "  %s%s\n", template.Prefix, n)
		}
		os.Exit(2)
	}

	fmt.Printf("%s (%s collection)\n", rule.Name, collection)
	fmt.Println()
	fmt.Println(rule.Description)
	fmt.Println()
	fmt.Printf("Recommended:            %v\n", rule.Recommended)
	fmt.Printf("Deprecated:             %v\n", rule.Deprecated)
	fmt.Printf("Requires type checking: %v\n", rule.RequiresTypeChecking)
	if rule.Accessibility() {
		fmt.Println("Part of the accessibility preset")
	}

	return nil
}

// lookupRule resolves a bare or qualified rule name against both
// collections. Template wins for qualified names since its prefix is
// the more specific one.
func lookupRule(name string) (rules.Rule, string, bool) {
	if strings.HasPrefix(name, template.Prefix) {
		rule, ok := template.Collection.Get(strings.TrimPrefix(name, template.Prefix))
		return rule, "template", ok
	}
	if strings.HasPrefix(name, core.Prefix) {
		rule, ok := core.Collection.Get(strings.TrimPrefix(name, core.Prefix))
		return rule, "core", ok
	}
	if rule, ok := core.Collection.Get(name); ok {
		return rule, "core", true
	}
	if rule, ok := template.Collection.Get(name); ok {
		return rule, "template", true
	}
	return rules.Rule{}, "", false
}
