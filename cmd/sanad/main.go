package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sanad/internal/config"
	"sanad/internal/logging"
)

var (
	// Global flags
	verbose  bool
	dataDir  string
	langFlag string

	// Logger
	logger *zap.Logger

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sanad",
	Short: "sanad - financial assistance application intake",
	Long: `sanad collects financial assistance applications through a three-step
form: personal information, family and financial details, and a written
description of the applicant's situation.

In-progress answers autosave locally and survive restarts. The situation
step can draft its narrative fields with an AI model when a credential is
configured, falling back to fixed local templates otherwise.

Run without arguments to start a new application.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if langFlag != "" {
			cfg.Language = langFlag
		}

		if err := logging.Initialize(cfg.DataDir); err != nil {
			logger.Warn("file logging unavailable", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: start a new application
		return runApply(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.sanad)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "UI language for this run (en or ar)")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(assistCmd)
	rootCmd.AddCommand(langCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
