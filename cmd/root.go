package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/readmegen/internal/config"
	"github.com/firefly-engineering/readmegen/internal/errors"
	"github.com/firefly-engineering/readmegen/internal/logging"
	"github.com/firefly-engineering/readmegen/internal/pipeline"
)

var (
	verbose    bool
	jsonOutput bool
	projectDir string
	layout     string
)

var rootCmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Generate a README.md for the repository in the current directory",
	Long: `readmegen writes a README.md at the root of a git repository.

It first asks for the repository URL and refuses to continue unless it
matches the local origin, so the README of the wrong checkout is never
overwritten. It then infers:
  - Languages from the top-level files
  - The license from the manifest or production dependencies
  - Description, features, installation and usage from package.json or go.mod

An existing README.md is replaced entirely.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())
	},
	RunE: runGenerate,
}

// Execute runs the root command and prints any failure as a single status line.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logging.SetOutput(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logError("%s", errors.UserMessage(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.Flags().StringVarP(&projectDir, "dir", "C", ".", "Project root to document")
	rootCmd.Flags().StringVar(&layout, "layout", "", "README layout: "+config.LayoutExtended+" or "+config.LayoutMinimal+" (overrides "+config.FileName+")")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runGenerate(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(projectDir)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to resolve project directory", err)
	}

	result, err := pipeline.Run(cmd.Context(), application(), root, pipeline.Options{Layout: layout})
	if err != nil {
		return err
	}

	logSuccess("README.md successfully generated in your repository!")
	logPath("README.md generated at: %s", result.Path)
	return nil
}
