package day02

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventnerd/internal/solve"
)

func TestParseDimensions(t *testing.T) {
	d, err := ParseDimensions("2x3x4")
	require.NoError(t, err)
	assert.Equal(t, Dimensions{Length: 2, Width: 3, Height: 4}, d)
}

func TestParseDimensionsErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"missing field", "2x3", ErrMissingDimension},
		{"extra field", "2x3x4x5", ErrExtraDimension},
		{"single field", "234", ErrMissingDimension},
		{"empty line", "", ErrMissingDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDimensions(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseDimensionsInvalidTokens(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		token string
		rng   bool // expect a range violation rather than a syntax one
	}{
		{"negative value", "-1x3x4", "-1", false},
		{"non-numeric", "ax3x4", "a", false},
		{"empty field", "2xx4", "", false},
		{"too large", "9223372036854775808x1x1", "9223372036854775808", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDimensions(tt.line)
			require.Error(t, err)

			var invalid *InvalidDimensionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.token, invalid.Token)
			assert.Equal(t, tt.rng, errors.Is(err, strconv.ErrRange))
		})
	}
}

func TestPaper(t *testing.T) {
	tests := []struct {
		d    Dimensions
		want int64
	}{
		{Dimensions{2, 3, 4}, 58},
		{Dimensions{1, 1, 10}, 43},
	}

	for _, tt := range tests {
		if got := Paper(tt.d); got != tt.want {
			t.Errorf("Paper(%+v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestRibbon(t *testing.T) {
	tests := []struct {
		d    Dimensions
		want int64
	}{
		{Dimensions{2, 3, 4}, 34},
		{Dimensions{1, 1, 10}, 14},
	}

	for _, tt := range tests {
		if got := Ribbon(tt.d); got != tt.want {
			t.Errorf("Ribbon(%+v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestPart1Examples(t *testing.T) {
	got, err := Part1("2x3x4")
	require.NoError(t, err)
	assert.Equal(t, int64(58), got)

	got, err = Part1("1x1x10")
	require.NoError(t, err)
	assert.Equal(t, int64(43), got)

	// Multi-line with trailing newline, as inputs come off disk.
	got, err = Part1("2x3x4\n1x1x10\n")
	require.NoError(t, err)
	assert.Equal(t, int64(101), got)
}

func TestPart2Examples(t *testing.T) {
	got, err := Part2("2x3x4")
	require.NoError(t, err)
	assert.Equal(t, int64(34), got)

	got, err = Part2("1x1x10")
	require.NoError(t, err)
	assert.Equal(t, int64(14), got)

	got, err = Part2("2x3x4\n1x1x10\n")
	require.NoError(t, err)
	assert.Equal(t, int64(48), got)
}

func TestStrictModeAborts(t *testing.T) {
	for _, bad := range []string{"2x3x4x5", "2x3", "-1x3x4"} {
		input := "2x3x4\n" + bad + "\n1x1x10"
		_, err := TotalPaper(input, solve.Strict)
		require.Error(t, err, "input with line %q", bad)
		assert.Contains(t, err.Error(), "line 2")

		_, err = TotalRibbon(input, solve.Strict)
		require.Error(t, err, "input with line %q", bad)
	}
}

func TestLenientModeSkips(t *testing.T) {
	input := strings.Join([]string{"2x3x4", "2x3x4x5", "2x3", "-1x3x4", "1x1x10"}, "\n")

	got, err := TotalPaper(input, solve.Lenient)
	require.NoError(t, err)
	assert.Equal(t, int64(101), got, "only the two valid lines should be summed")

	got, err = TotalRibbon(input, solve.Lenient)
	require.NoError(t, err)
	assert.Equal(t, int64(48), got)
}

func TestCRLFInput(t *testing.T) {
	got, err := Part1("2x3x4\r\n1x1x10\r\n")
	require.NoError(t, err)
	assert.Equal(t, int64(101), got)

	got, err = Part2("2x3x4\r\n1x1x10\r\n")
	require.NoError(t, err)
	assert.Equal(t, int64(48), got)
}

func TestEmptyInputSumsToZero(t *testing.T) {
	for _, input := range []string{"", "\n", "\r\n"} {
		got, err := TotalPaper(input, solve.Strict)
		require.NoError(t, err)
		assert.Zero(t, got)
	}
}
