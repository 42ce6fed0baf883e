package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher reloads a Store whenever its config file changes on disk
type Watcher struct {
	path     string
	store    *Store
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(*Settings)

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches the directory containing path. The directory is
// watched rather than the file so that editors which replace the file on
// save are still noticed.
func NewWatcher(path string, store *Store) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	return &Watcher{
		path:     absPath,
		store:    store,
		watcher:  fsWatcher,
		debounce: defaultDebounce,
	}, nil
}

// OnReload registers a callback invoked after each successful reload
func (w *Watcher) OnReload(fn func(*Settings)) {
	w.onReload = fn
}

// Run processes file events until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	slog.Debug("Watching config file", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Config watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	settings, err := Load(w.path)
	if err != nil {
		// Keep serving the previous snapshot until the file is fixed.
		slog.Error("Failed to reload config", "path", w.path, "error", err)
		return
	}

	w.store.Set(settings)
	slog.Info("Reloaded config", "path", w.path, "fold_class_and_interface", settings.Fold.FoldClassAndInterface.String())

	if w.onReload != nil {
		w.onReload(settings)
	}
}
