package core

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/EmundoT/cmdtarget/internal/types"
)

// WatchDebounce is how long the watcher waits for writes to settle
var WatchDebounce = 1 * time.Second

// TableWatcher reloads a TableTarget whenever its table file changes
type TableWatcher struct {
	store    TableStore
	target   *TableTarget
	ui       UICallback
	onReload func(types.CommandTable, error)
}

// NewTableWatcher creates a watcher. onReload may be nil; it is called after
// every reload attempt with the new table or the load error.
func NewTableWatcher(store TableStore, target *TableTarget, ui UICallback, onReload func(types.CommandTable, error)) *TableWatcher {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	return &TableWatcher{store: store, target: target, ui: ui, onReload: onReload}
}

// Run watches until ctx is cancelled
func (w *TableWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	tablePath := filepath.Clean(w.store.Path())

	// Watch the directory so a deleted and recreated file is still seen
	tableDir := filepath.Dir(tablePath)
	if err := watcher.Add(tableDir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", tableDir, err)
	}

	// Reloads run on this goroutine, so they never overlap and none runs
	// after Run returns
	var debounceTimer *time.Timer
	var debounce <-chan time.Time
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != tablePath {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				// Debounce: reset timer on each event
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.NewTimer(WatchDebounce)
				debounce = debounceTimer.C
			}

		case <-debounce:
			debounce = nil
			if ctx.Err() != nil {
				return nil
			}
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v\n", err)
		}
	}
}

func (w *TableWatcher) reload() {
	if _, err := os.Stat(w.store.Path()); err != nil {
		w.ui.ShowWarning("File Not Found", "Command table was deleted or is inaccessible")
		w.notify(types.CommandTable{}, err)
		return
	}

	table, err := w.store.Load()
	if err == nil {
		err = w.target.Replace(table)
	}
	if err != nil {
		w.ui.ShowError("Reload Failed", err.Error())
		w.notify(types.CommandTable{}, err)
		return
	}

	n := len(table.Commands)
	w.ui.ShowSuccess(fmt.Sprintf("Reloaded %d %s from %s", n, Pluralize(n, "command", "commands"), filepath.Base(w.store.Path())))
	w.notify(table, nil)
}

func (w *TableWatcher) notify(table types.CommandTable, err error) {
	if w.onReload != nil {
		w.onReload(table, err)
	}
}
