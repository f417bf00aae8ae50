// Package main implements the run command for the advent CLI.
// This file handles solving one puzzle and recording its answers.
package main

import (
	"fmt"
	"strconv"

	"adventnerd/internal/input"
	"adventnerd/internal/solve"
	"adventnerd/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runPart int

// runCmd executes one puzzle's solver
var runCmd = &cobra.Command{
	Use:   "run <year> <day>",
	Short: "Run one puzzle's solver and record its answers",
	Long: `Loads the puzzle input for the given year and day from the data
directory, runs both parts (or one, with --part), prints the answers,
and records them in the answer cache.

Example:
  advent run 2015 1
  advent run 2015 2 --part 2 --lenient`,
	Args: cobra.ExactArgs(2),
	RunE: runSolver,
}

// partResult is one solved part, ready to print and record.
type partResult struct {
	Part   int
	Answer string
}

func runSolver(cmd *cobra.Command, args []string) error {
	year, day, err := parseYearDay(args)
	if err != nil {
		return err
	}

	results, err := solvePuzzle(year, day, runPart)
	if err != nil {
		return err
	}

	st, err := store.NewAnswerStore(cfg.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, r := range results {
		fmt.Printf("%d day %d part %d: %s\n", year, day, r.Part, r.Answer)
		if _, err := st.Record(year, day, r.Part, r.Answer); err != nil {
			return err
		}
	}
	return nil
}

// solvePuzzle loads the input for one puzzle and runs its parts.
// part 0 means both parts.
func solvePuzzle(year, day, part int) ([]partResult, error) {
	if part < 0 || part > 2 {
		return nil, fmt.Errorf("part %d out of range (1 or 2)", part)
	}

	reg, err := buildRegistry()
	if err != nil {
		return nil, err
	}

	solver, ok := reg.Lookup(year, day)
	if !ok {
		return nil, fmt.Errorf("no solver registered for %d day %d (try 'advent list')", year, day)
	}

	text, err := input.Load(cfg.DataDir, year, day)
	if err != nil {
		return nil, err
	}

	logger.Debug("running solver",
		zap.Int("year", year),
		zap.Int("day", day),
		zap.String("name", solver.Name),
		zap.String("policy", cfg.Solve.Policy))

	parts := []struct {
		n  int
		fn solve.Func
	}{
		{1, solver.Part1},
		{2, solver.Part2},
	}

	var results []partResult
	for _, p := range parts {
		if part != 0 && part != p.n {
			continue
		}
		answer, err := p.fn(text)
		if err != nil {
			return nil, fmt.Errorf("%d day %d part %d: %w", year, day, p.n, err)
		}
		results = append(results, partResult{Part: p.n, Answer: answer})
	}
	return results, nil
}

func parseYearDay(args []string) (year, day int, err error) {
	year, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	day, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid day %q: %w", args[1], err)
	}
	if day < 1 || day > 25 {
		return 0, 0, fmt.Errorf("day %d out of range (1-25)", day)
	}
	return year, day, nil
}

func init() {
	runCmd.Flags().IntVar(&runPart, "part", 0, "Run only this part (1 or 2; default both)")
}
