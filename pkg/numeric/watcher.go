package numeric

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/ircsend/pkg/log"
)

// WatcherConfig holds options for a Watcher.
type WatcherConfig struct {
	// DebounceDelay is the delay to wait after a file change before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// Base, when set, is merged under every reloaded table.
	Base Table

	// Logger receives reload results. Default: no-op.
	Logger log.Logger
}

// DefaultWatcherConfig returns a WatcherConfig with sensible defaults.
func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{
		DebounceDelay: 100 * time.Millisecond,
	}
}

// Watcher reloads a numeric table file whenever it is written or recreated.
// Invalid reloads are logged and skipped, so the consumer keeps the last
// table it accepted.
type Watcher struct {
	path     string
	debounce time.Duration
	base     Table
	logger   log.Logger
	onChange func(Table)
}

// NewWatcher creates a watcher for path. onChange is called from the
// watcher's goroutine with each valid reloaded table.
func NewWatcher(path string, onChange func(Table), cfg WatcherConfig) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: cfg.DebounceDelay,
		base:     cfg.Base,
		logger:   cfg.Logger,
		onChange: onChange,
	}
}

// Run watches the file's directory until ctx is cancelled.
// It returns an error only if the watch cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.logger.Info("numeric table watcher started", log.String("path", w.path))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("numeric table watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) reload() {
	t, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("numeric table reload rejected", log.String("path", w.path), log.Err(err))
		return
	}
	if w.base != nil {
		t = Merge(w.base, t)
	}
	w.logger.Info("numeric table reloaded", log.String("path", w.path), log.Int("entries", len(t)))
	w.onChange(t)
}
