// Package input loads puzzle input files from the local data
// directory and can watch one for changes. The solver core treats the
// returned text as opaque; filesystem layout is this package's
// concern only.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Path resolves the conventional location of one puzzle input:
// <dataDir>/<year>/day<day>.txt.
func Path(dataDir string, year, day int) string {
	return filepath.Join(dataDir, strconv.Itoa(year), fmt.Sprintf("day%d.txt", day))
}

// Load returns the contents of the input file for the given year and
// day, verbatim.
func Load(dataDir string, year, day int) (string, error) {
	path := Path(dataDir, year, day)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read puzzle input %s: %w", path, err)
	}
	return string(data), nil
}
