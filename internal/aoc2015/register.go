// Package aoc2015 wires the 2015 puzzle solvers into a solve.Registry.
package aoc2015

import (
	"adventnerd/internal/aoc2015/day01"
	"adventnerd/internal/aoc2015/day02"
	"adventnerd/internal/solve"
)

// Register adds every 2015 solver to the registry. The policy applies
// to record-oriented puzzles (day 2); the day 1 character scanner is
// fail-fast regardless of policy, since a partial floor count is
// meaningless.
func Register(r *solve.Registry, policy solve.Policy) error {
	solvers := []*solve.Solver{
		{
			Year:  2015,
			Day:   1,
			Name:  "Not Quite Lisp",
			Part1: solve.Int64(day01.Part1),
			Part2: solve.Int(day01.Part2),
		},
		{
			Year: 2015,
			Day:  2,
			Name: "I Was Told There Would Be No Math",
			Part1: solve.Int64(func(input string) (int64, error) {
				return day02.TotalPaper(input, policy)
			}),
			Part2: solve.Int64(func(input string) (int64, error) {
				return day02.TotalRibbon(input, policy)
			}),
		},
	}

	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}
