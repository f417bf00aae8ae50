package input

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher invokes a callback whenever one puzzle input file changes.
// It watches the parent directory rather than the file itself, because
// editors commonly replace files via rename and that would drop a
// watch held on the file.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	logger   *zap.Logger

	debounceDur time.Duration
	lastFired   time.Time

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher creates a watcher for the input file at path. onChange
// fires after a write or create event on that file, debounced so rapid
// editor saves collapse into one invocation.
func NewWatcher(path string, debounce time.Duration, onChange func(), logger *zap.Logger) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("input watcher requires an onChange callback")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:     fw,
		path:        filepath.Clean(path),
		onChange:    onChange,
		logger:      logger,
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking; the event loop runs in a
// goroutine until Stop is called. The watched file must already exist
// so a typo in the path fails loudly instead of waiting forever.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if _, err := os.Stat(w.path); err != nil {
		_ = w.watcher.Close()
		return fmt.Errorf("cannot watch %s: %w", w.path, err)
	}

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		_ = w.watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.running = true

	w.logger.Debug("input watcher started",
		zap.String("path", w.path),
		zap.Duration("debounce", w.debounceDur))

	go w.loop()
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.shouldFire() {
				continue
			}
			w.logger.Debug("input file changed", zap.String("op", event.Op.String()))
			w.onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("input watcher error", zap.Error(err))
		}
	}
}

// shouldFire applies the debounce window to the current event.
func (w *Watcher) shouldFire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if now.Sub(w.lastFired) < w.debounceDur {
		return false
	}
	w.lastFired = now
	return true
}
