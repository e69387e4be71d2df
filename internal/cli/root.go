package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/glint/internal/config"
	"github.com/dshills/glint/internal/logging"
	"github.com/dshills/glint/internal/review"
)

const (
	ExitSuccess      = 0
	ExitFindings     = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "Simulated code review for pasted snippets",
	Long: "Glint runs a fixed battery of pattern checks over a code snippet and reports " +
		"issues, security findings and suggestions with deterministic exit codes.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig != "" {
			return os.Setenv("GLINT_CONFIG", flagConfig)
		}
		return nil
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	exitCode = ExitSuccess
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print glint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", review.ToolName, review.ToolVersion)
	},
}

// newLogger builds the command logger. Silent loggers only write when log.file is set.
func newLogger(cfg config.Config, silent bool) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Debug:  flagDebug,
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Silent: silent,
	})
}

// newGenerator applies --extended and the rules pack to a generator.
func newGenerator(cfg config.Config) (*review.Generator, error) {
	rules, err := review.LoadRules(cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return review.NewGenerator(review.Options{Extended: cfg.Extended, Rules: rules}), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: $XDG_CONFIG_HOME/glint/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(checksCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
