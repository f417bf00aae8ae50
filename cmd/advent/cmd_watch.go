// Package main implements the watch command for the advent CLI.
// This file handles re-running a solver when its input file changes.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adventnerd/internal/input"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd re-runs one solver on every input change
var watchCmd = &cobra.Command{
	Use:   "watch <year> <day>",
	Short: "Re-run a solver whenever its input file changes",
	Long: `Watches the puzzle input file for the given year and day and re-runs
the solver after every save. Useful while pasting or editing inputs.
Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	year, day, err := parseYearDay(args)
	if err != nil {
		return err
	}

	// Solve once up front so a broken setup fails before waiting.
	if err := solveAndPrint(year, day); err != nil {
		return err
	}

	path := input.Path(cfg.DataDir, year, day)
	watcher, err := input.NewWatcher(path, 500*time.Millisecond, func() {
		if err := solveAndPrint(year, day); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}, logger)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	logger.Info("watching puzzle input", zap.String("path", path))
	fmt.Printf("Watching %s (Ctrl-C to stop)\n", path)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("received shutdown signal")
	return nil
}

func init() {
	watchCmd.Flags().IntVar(&runPart, "part", 0, "Run only this part (1 or 2; default both)")
}

func solveAndPrint(year, day int) error {
	results, err := solvePuzzle(year, day, runPart)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("%d day %d part %d: %s\n", year, day, r.Part, r.Answer)
	}
	return nil
}
