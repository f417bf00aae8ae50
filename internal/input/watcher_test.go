package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day1.txt")
	if err := os.WriteFile(path, []byte("(\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 8)
	w, err := NewWatcher(path, time.Millisecond, func() {
		fired <- struct{}{}
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("((\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire after input write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day1.txt")
	if err := os.WriteFile(path, []byte("(\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 8)
	w, err := NewWatcher(path, time.Millisecond, func() {
		fired <- struct{}{}
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "day2.txt"), []byte("2x3x4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Fatal("watcher fired for a sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherMissingFile(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "absent.txt"), time.Millisecond, func() {}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err == nil {
		w.Stop()
		t.Fatal("Start succeeded for a missing file")
	}
	// A failed Start closes the fsnotify handle itself; goleak in
	// TestMain catches any event goroutine left behind.
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day1.txt")
	if err := os.WriteFile(path, []byte("(\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, time.Millisecond, func() {}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	w.Stop()
	w.Stop()
}
