package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/isaacphi/promptstash/internal/appState"
	"github.com/isaacphi/promptstash/internal/config"
	configCmd "github.com/isaacphi/promptstash/internal/ui/cli/config"
	"github.com/isaacphi/promptstash/internal/ui/cli/prompt"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
	storage  string
)

var rootCmd = &cobra.Command{
	Use:               "promptstash",
	Short:             "Manage and render parameterized prompt templates",
	Long:              `promptstash stores text templates with [KEYWORD] placeholders, //directives and # comments, and renders them with your recorded parameter values.`,
	DisableAutoGenTag: true,
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the root command to use this context
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (defaults to stderr)")
	rootCmd.PersistentFlags().StringVar(&storage, "storage", "", "Storage backend (filesystem, sqlite, memory)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		overrides := &config.RuntimeOverrides{}
		if logLevel != "" {
			overrides.LogLevel = &logLevel
		}
		if logFile != "" {
			overrides.LogFile = &logFile
		}
		if storage != "" {
			overrides.Storage = &storage
		}
		return appState.Initialize(overrides)
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return appState.Cleanup()
	}

	// Remove "completions" command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		configCmd.ConfigCmd,
		prompt.PromptCmd,
	)
}
