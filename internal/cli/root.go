// Package cli provides the command-line interface for lookgen.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lookgen/internal/cli/commands"
	"github.com/leapstack-labs/lookgen/internal/cli/config"
	_ "github.com/leapstack-labs/lookgen/pkg/dialects" // register warehouse dialects
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lookgen",
		Short: "lookgen - dbt to Looker view generator",
		Long: `lookgen converts a dbt project's compiled metadata into LookML views.

It reads the manifest.json and catalog.json a dbt run leaves behind, derives
dimensions, dimension groups, and measures for every documented model, and
writes one LookML view file per model (plus model files for explores
declared in looker meta blocks).`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			ctx := commands.WithConfig(cmd.Context(), cfg)
			ctx = commands.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lookgen.yaml)")
	rootCmd.PersistentFlags().String("project-dir", "", "Path to dbt project directory containing dbt_project.yml")
	rootCmd.PersistentFlags().String("target-dir", "", "Path to dbt target directory containing manifest.json and catalog.json")
	rootCmd.PersistentFlags().String("output-dir", "", "Path that will receive the generated LookML files")
	rootCmd.PersistentFlags().String("tag", "", "Only generate views for dbt models carrying this tag")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("format", "", "Diagnostic output format: text, table, json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
