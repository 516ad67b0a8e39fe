package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docproof/internal/logger"
)

// PromptWatcher reloads a PromptStore whenever a template file in its
// directory is written, created, renamed or removed.
type PromptWatcher struct {
	store   *PromptStore
	watcher *fsnotify.Watcher

	// onReload is called after each reload. Used by tests.
	onReload func(name string)
}

// NewPromptWatcher creates the prompt directory if needed and starts
// watching it. Call Run to process events and Close to stop.
func NewPromptWatcher(store *PromptStore) (*PromptWatcher, error) {
	if err := store.Init(); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(store.Dir()); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", store.Dir(), err)
	}

	return &PromptWatcher{store: store, watcher: w}, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *PromptWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(ev.Name) != ".txt" {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.store.Reload()
			logger.Debug("prompt %s changed, cache cleared", filepath.Base(ev.Name))
			if w.onReload != nil {
				w.onReload(ev.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("prompt watcher: %v", err)
		}
	}
}

// Close stops watching.
func (w *PromptWatcher) Close() error {
	return w.watcher.Close()
}
