package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/etnz/heath"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debouncer coalesces rapid events into a single callback invocation.
type debouncer struct {
	window   time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	callback func()
}

func newDebouncer(window time.Duration, callback func()) *debouncer {
	return &debouncer{window: window, callback: callback}
}

// Trigger resets the timer. The callback fires once the window elapses
// with no further trigger.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.callback)
}

// Stop cancels any pending callback.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// isLedgerFile reports whether a change to path can change a report.
func isLedgerFile(path string) bool {
	name := filepath.Base(path)
	return name == heath.ProjectsFile || filepath.Ext(name) == ".txt"
}

// watchFolder calls render whenever a ledger file of folder changes, and
// every refresh interval so that values read "now" stay current. It blocks
// until ctx is done.
func watchFolder(ctx context.Context, folder string, debounce, refresh time.Duration, render func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create folder watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(folder); err != nil {
		return fmt.Errorf("watch %s: %w", folder, err)
	}

	// render is never called concurrently.
	var mu sync.Mutex
	safeRender := func() {
		mu.Lock()
		defer mu.Unlock()
		render()
	}
	d := newDebouncer(debounce, safeRender)
	defer d.Stop()

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Trigger()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isLedgerFile(event.Name) || event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("ledger file changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			d.Trigger()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
