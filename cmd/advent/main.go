// Package main implements the advent CLI: it runs Advent of Code
// solvers against local puzzle inputs, caches the computed answers,
// and can re-run a solver whenever its input file changes.
package main

import (
	"fmt"
	"os"

	"adventnerd/internal/aoc2015"
	"adventnerd/internal/config"
	"adventnerd/internal/solve"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgPath string
	dataDir string
	dbPath  string
	lenient bool
	verbose bool

	// Loaded configuration, available to all commands.
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent - Advent of Code puzzle runner",
	Long: `advent runs Advent of Code solvers against puzzle inputs stored
under a local data directory (data/<year>/day<day>.txt) and caches the
computed answers in SQLite.

Solvers are pure functions of their input text; malformed input fails
with the specific parse condition rather than a silent default.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		// Flags win over config file and environment.
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if dbPath != "" {
			cfg.DatabasePath = dbPath
		}
		if lenient {
			cfg.Solve.Policy = "lenient"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize logger
		zapCfg := zap.NewProductionConfig()
		if cfg.Logging.Format == "text" {
			zapCfg.Encoding = "console"
		}
		if lvl, lvlErr := zapcore.ParseLevel(cfg.Logging.Level); lvlErr == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(lvl)
		}
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildRegistry assembles the solver registry under the configured
// fold policy.
func buildRegistry() (*solve.Registry, error) {
	policy, err := solve.ParsePolicy(cfg.Solve.Policy)
	if err != nil {
		return nil, err
	}
	reg := solve.NewRegistry()
	if err := aoc2015.Register(reg, policy); err != nil {
		return nil, err
	}
	return reg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "advent.yaml", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Puzzle input directory (default: data)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Answer cache database path")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "Skip malformed input lines instead of failing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(answersCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
