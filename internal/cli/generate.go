package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lintsmith/lintsmith/internal/config"
	"github.com/lintsmith/lintsmith/internal/generate"
)

var (
	configFlag  string
	verboseFlag bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the preset config artifacts",
	Long: `Generate the preset config artifacts for both plugin packages.

For each of the fixed preset jobs (all, recommended, accessibility) the
rule metadata is folded into a rules mapping and written twice: as a
flat JSON config and as a wrapped config-factory module. The run fails
before writing anything if a rule definition file has no metadata
record.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&configFlag, "config", "", "Path to .lintsmith.hcl (default: discovered in the working directory)")
	generateCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log every accepted rule")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := hclog.Info
	if verboseFlag {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "lintsmith",
		Level:  level,
		Output: os.Stderr,
	})

	g := &generate.Generator{
		Core:         generate.Core(cfg.Packages.Core),
		Template:     generate.Template(cfg.Packages.Template),
		Logger:       logger,
		Out:          os.Stdout,
		ColorEnabled: colorEnabled(cfg.Output.Color),
	}

	if err := g.Run(); err != nil {
		logger.Error("generation aborted", "error", err)
		return err
	}
	return nil
}

// colorEnabled resolves the configured color mode against the terminal
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		stat, err := os.Stdout.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
