// Package day02 solves Advent of Code 2015 day 2, "I Was Told There
// Would Be No Math".
//
// Each input line holds the dimensions of one present as "LxWxH".
// Part one sums the wrapping paper needed for every present, part two
// the ribbon. Both totals take an explicit fold policy: the exported
// Part1/Part2 entry points are strict (the first malformed line aborts
// the computation), while TotalPaper/TotalRibbon also accept
// solve.Lenient to skip malformed lines and sum the rest.
package day02

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"adventnerd/internal/solve"
)

var (
	// ErrMissingDimension indicates a line with fewer than three fields.
	ErrMissingDimension = errors.New("3 dimensions are required")

	// ErrExtraDimension indicates a line with more than three fields.
	ErrExtraDimension = errors.New("more than 3 dimensions provided")
)

// InvalidDimensionError reports a field that could not be parsed as an
// unsigned integer fitting in int64. It wraps the strconv error, so
// errors.Is(err, strconv.ErrRange) distinguishes an oversized value
// from a non-numeric (or negative) one.
type InvalidDimensionError struct {
	Token string
	Err   error
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension %q: %v", e.Token, e.Err)
}

func (e *InvalidDimensionError) Unwrap() error { return e.Err }

// Dimensions are the length, width and height of one present, in feet.
type Dimensions struct {
	Length int64
	Width  int64
	Height int64
}

// ParseDimensions parses one "LxWxH" line. Exactly three fields are
// required, each an unsigned integer no larger than an int64 can hold.
func ParseDimensions(line string) (Dimensions, error) {
	fields := strings.Split(line, "x")
	if len(fields) < 3 {
		return Dimensions{}, ErrMissingDimension
	}
	if len(fields) > 3 {
		return Dimensions{}, ErrExtraDimension
	}

	var vals [3]int64
	for i, field := range fields {
		// Unsigned parse with bit size 63: rejects signs outright and
		// still guarantees the value fits in int64.
		v, err := strconv.ParseUint(field, 10, 63)
		if err != nil {
			return Dimensions{}, &InvalidDimensionError{Token: field, Err: err}
		}
		vals[i] = int64(v)
	}
	return Dimensions{Length: vals[0], Width: vals[1], Height: vals[2]}, nil
}

// Paper returns the square feet of wrapping paper one present needs:
// its surface area plus the area of its smallest side as slack.
func Paper(d Dimensions) int64 {
	lw := d.Length * d.Width
	wh := d.Width * d.Height
	hl := d.Height * d.Length
	return 2*(lw+wh+hl) + min(lw, wh, hl)
}

// Ribbon returns the feet of ribbon one present needs: the smallest
// face perimeter to wrap it, plus its volume for the bow.
func Ribbon(d Dimensions) int64 {
	lw := d.Length + d.Width
	wh := d.Width + d.Height
	hl := d.Height + d.Length
	return 2*min(lw, wh, hl) + d.Length*d.Width*d.Height
}

// Part1 is the strict entry point for part one: the total wrapping
// paper over all presents, aborting on the first malformed line.
func Part1(input string) (int64, error) {
	return TotalPaper(input, solve.Strict)
}

// Part2 is the strict entry point for part two: the total ribbon over
// all presents, aborting on the first malformed line.
func Part2(input string) (int64, error) {
	return TotalRibbon(input, solve.Strict)
}

// TotalPaper folds the wrapping-paper formula over every input line
// under the given policy.
func TotalPaper(input string, policy solve.Policy) (int64, error) {
	return foldLines(input, policy, Paper)
}

// TotalRibbon folds the ribbon formula over every input line under the
// given policy.
func TotalRibbon(input string, policy solve.Policy) (int64, error) {
	return foldLines(input, policy, Ribbon)
}

// foldLines parses each line into Dimensions and sums formula over the
// parsed records. Under solve.Strict the first parse failure aborts
// the fold, annotated with its 1-based line number; under
// solve.Lenient the offending line is skipped.
func foldLines(input string, policy solve.Policy, formula func(Dimensions) int64) (int64, error) {
	trimmed := strings.TrimRight(input, "\r\n")
	if trimmed == "" {
		return 0, nil
	}

	var sum int64
	for i, line := range strings.Split(trimmed, "\n") {
		// Tolerate CRLF inputs.
		d, err := ParseDimensions(strings.TrimSuffix(line, "\r"))
		if err != nil {
			if policy == solve.Lenient {
				continue
			}
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += formula(d)
	}
	return sum, nil
}
