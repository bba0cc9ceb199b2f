package cli

import (
	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "lintsmith",
	Short: "Preset generator for the lintsmith ESLint plugins",
	Long: `lintsmith derives the shipped lint-configuration artifacts from the
rule metadata of the @lintsmith and @lintsmith/template plugins.

It verifies that every rule definition file has a matching metadata
record, then writes the flat JSON presets and wrapped config-factory
modules into the plugin packages.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
