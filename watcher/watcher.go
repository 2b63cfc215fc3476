// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

// Package watcher re-runs suites when files under the watched roots
// change. Used by the tunit watch command.
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/testunit/cmd/utils"
)

// Listener is an interface for receivers of filesystem events.
type Listener interface {
	// Refresh is invoked by the watcher on relevant filesystem events.
	Refresh() error
}

// DiscerningListener allows the receiver to selectively watch files.
// Both methods receive the full path so listeners can exclude entire
// subtrees, their own output directories in particular.
type DiscerningListener interface {
	Listener
	WatchDir(path string, info os.FileInfo) bool
	WatchFile(path string) bool
}

// Watcher allows listeners to register to be notified of changes under
// watched roots. Events are debounced: a burst of changes produces one
// Refresh after the refresh interval passes quietly.
type Watcher struct {
	watchers        []*fsnotify.Watcher
	listeners       []Listener
	notifyMutex     sync.Mutex
	refreshInterval time.Duration
}

// NewWatcher creates a watcher with the given debounce interval.
func NewWatcher(refreshInterval time.Duration) *Watcher {
	if refreshInterval <= 0 {
		refreshInterval = time.Second
	}
	return &Watcher{refreshInterval: refreshInterval}
}

// Listen registers for events within the given root directories
// (recursively) and starts forwarding them to the listener.
func (w *Watcher) Listen(listener Listener, roots ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return utils.NewRunIfError(err, "Watcher: Failed to create watcher")
	}

	// Replace the unbuffered Event channel with a buffered one,
	// otherwise bursts of change events only come out one at a time.
	watcher.Events = make(chan fsnotify.Event, 100)
	watcher.Errors = make(chan error, 10)

	for _, p := range roots {
		// is the directory / file a symlink?
		f, lerr := os.Lstat(p)
		if lerr == nil && f.Mode()&os.ModeSymlink == os.ModeSymlink {
			realPath, slerr := filepath.EvalSymlinks(p)
			if slerr != nil {
				return utils.NewRunIfError(slerr, "Watcher: Failed to resolve symlink", "path", p)
			}
			p = realPath
		}

		fi, serr := os.Stat(p)
		if serr != nil {
			utils.Logger.Warn("Watcher: Skipping missing watch path", "path", p, "error", serr)
			continue
		}

		// If it is a file, watch that specific file.
		if !fi.IsDir() {
			if aerr := watcher.Add(p); aerr != nil {
				return utils.NewRunIfError(aerr, "Watcher: Failed to watch", "path", p)
			}
			continue
		}

		// Else, walk the directory tree.
		walkErr := filepath.Walk(p, func(path string, info os.FileInfo, werr error) error {
			if werr != nil {
				utils.Logger.Warn("Watcher: Error walking path", "error", werr)
				return nil
			}
			if !info.IsDir() {
				return nil
			}
			if dl, ok := listener.(DiscerningListener); ok && !dl.WatchDir(path, info) {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		})
		if walkErr != nil {
			return utils.NewRunIfError(walkErr, "Watcher: Failed to walk directory", "path", p)
		}
	}

	go w.notifyWhenUpdated(listener, watcher)

	w.watchers = append(w.watchers, watcher)
	w.listeners = append(w.listeners, listener)
	return nil
}

// Close shuts down the underlying fsnotify watchers.
func (w *Watcher) Close() {
	for _, watcher := range w.watchers {
		_ = watcher.Close()
	}
}

// notifyWhenUpdated forwards debounced change events to the listener.
func (w *Watcher) notifyWhenUpdated(listener Listener, watcher *fsnotify.Watcher) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !refreshRequired(ev, listener) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.refreshInterval)
				timerC = timer.C
			} else {
				timer.Reset(w.refreshInterval)
			}
		case <-timerC:
			timer = nil
			timerC = nil

			// Serialize Refresh calls across all registered watchers.
			w.notifyMutex.Lock()
			if err := listener.Refresh(); err != nil {
				utils.Logger.Error("Watcher: Listener refresh reported error", "error", err)
			}
			w.notifyMutex.Unlock()
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			continue
		}
	}
}

// refreshRequired filters out events no listener cares about.
func refreshRequired(ev fsnotify.Event, listener Listener) bool {
	// Ignore changes to dotfiles.
	if strings.HasPrefix(filepath.Base(ev.Name), ".") {
		return false
	}

	if dl, ok := listener.(DiscerningListener); ok {
		if !dl.WatchFile(ev.Name) || ev.Op&fsnotify.Chmod == fsnotify.Chmod {
			return false
		}
	}
	return true
}
