// Package day01 solves Advent of Code 2015 day 1, "Not Quite Lisp".
//
// Santa follows one instruction per character of the first input line:
// '(' goes up one floor, ')' goes down one. Part one asks for the
// floor he ends on, part two for the position of the first instruction
// that takes him below floor 0.
//
// Both parts are fail-fast: any character outside the instruction
// alphabet aborts the computation with an InvalidCharacterError rather
// than being treated as a zero delta.
package day01

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoInput indicates the puzzle input was empty.
	ErrNoInput = errors.New("no input data found")

	// ErrNeverEntersBasement indicates the running floor total never
	// dropped below zero over the full instruction stream.
	ErrNeverEntersBasement = errors.New("directions never enter the basement")
)

// InvalidCharacterError reports an instruction character outside the
// recognized alphabet, along with its 1-based position in the stream.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// Part1 returns the floor Santa ends on after following every
// instruction.
func Part1(input string) (int64, error) {
	var floor int64
	err := scanDirections(input, func(_ int, delta int64) bool {
		floor += delta
		return true
	})
	if err != nil {
		return 0, err
	}
	return floor, nil
}

// Part2 returns the 1-based position of the first instruction that
// takes Santa below floor 0. It fails with ErrNeverEntersBasement if
// no prefix of the instructions ever goes negative.
func Part2(input string) (int, error) {
	var floor int64
	entered := 0
	err := scanDirections(input, func(pos int, delta int64) bool {
		floor += delta
		if floor < 0 {
			entered = pos
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if entered == 0 {
		return 0, ErrNeverEntersBasement
	}
	return entered, nil
}

// scanDirections maps each character of the first input line to its
// floor delta and feeds it to fn together with its 1-based position.
// fn returning false stops the scan early. The scan fails on the first
// character outside the instruction alphabet.
func scanDirections(input string, fn func(pos int, delta int64) bool) error {
	if input == "" {
		return ErrNoInput
	}

	// Only the first line carries instructions. Tolerate CRLF inputs.
	line, _, _ := strings.Cut(input, "\n")
	line = strings.TrimSuffix(line, "\r")

	pos := 0
	for _, ch := range line {
		pos++
		var delta int64
		switch ch {
		case '(':
			delta = 1
		case ')':
			delta = -1
		default:
			return &InvalidCharacterError{Char: ch, Pos: pos}
		}
		if !fn(pos, delta) {
			return nil
		}
	}
	return nil
}
