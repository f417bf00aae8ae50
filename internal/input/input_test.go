package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestPath(t *testing.T) {
	got := Path("data", 2015, 1)
	want := filepath.Join("data", "2015", "day1.txt")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	dataDir := t.TempDir()
	dayDir := filepath.Join(dataDir, "2015")
	if err := os.MkdirAll(dayDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dayDir, "day1.txt"), []byte("(())\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(dataDir, 2015, 1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "(())\n" {
		t.Errorf("Load = %q, want %q", got, "(())\n")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), 2015, 1)
	if err == nil {
		t.Fatal("Load of missing file did not fail")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}
