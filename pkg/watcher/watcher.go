// Package watcher re-runs centerline extraction whenever a plan or config
// file changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PlanWatcher watches plan and config files and triggers a callback when one
// of them changes. Editors typically emit bursts of write events while
// saving, so callbacks are debounced.
type PlanWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	onChange func(string)
	watched  map[string]bool
	debounce time.Duration
	timer    *time.Timer
}

// New creates a watcher with the given debounce interval
func New(debounce time.Duration) (*PlanWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &PlanWatcher{
		watcher:  w,
		watched:  make(map[string]bool),
		debounce: debounce,
	}, nil
}

// Watch registers the files to watch and the callback invoked on change.
// The callback receives the path of the file that changed.
func (pw *PlanWatcher) Watch(files []string, onChange func(string)) error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := pw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		pw.watched[absPath] = true
	}

	pw.onChange = onChange
	return nil
}

// Start begins delivering change events. It returns immediately; events are
// handled on a background goroutine until Close is called.
func (pw *PlanWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-pw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					pw.handleChange(event.Name)
				}

			case err, ok := <-pw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// handleChange schedules the debounced callback for a changed file
func (pw *PlanWatcher) handleChange(path string) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if !pw.watched[path] || pw.onChange == nil {
		return
	}

	if pw.timer != nil {
		pw.timer.Stop()
	}
	callback := pw.onChange
	pw.timer = time.AfterFunc(pw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher
func (pw *PlanWatcher) Close() error {
	return pw.watcher.Close()
}
