// Package watch re-runs a callback when declaration files change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors emit for one save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a fixed set of files.
type Watcher struct {
	w        *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
}

// New watches paths. Their parent directories are watched so that files
// replaced by rename (as most editors save) keep being tracked.
func New(paths []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	fw := &Watcher{w: w, files: make(map[string]bool), debounce: DefaultDebounce}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("watch: %s: %w", p, err)
		}
		fw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch: %s: %w", dir, err)
		}
	}
	return fw, nil
}

func (fw *Watcher) Close() error { return fw.w.Close() }

// Run calls onChange with the absolute path of each changed file until ctx
// is cancelled. Events for one file within the debounce window are merged.
// Calls to onChange never overlap.
func (fw *Watcher) Run(ctx context.Context, onChange func(path string), onError func(error)) error {
	var mu, callMu sync.Mutex
	timers := make(map[string]*time.Timer)
	defer func() {
		mu.Lock()
		for _, t := range timers {
			t.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			path := filepath.Clean(ev.Name)
			if !fw.files[path] {
				continue
			}
			mu.Lock()
			if t, ok := timers[path]; ok {
				t.Reset(fw.debounce)
			} else {
				timers[path] = time.AfterFunc(fw.debounce, func() {
					mu.Lock()
					delete(timers, path)
					mu.Unlock()
					callMu.Lock()
					defer callMu.Unlock()
					if ctx.Err() == nil {
						onChange(path)
					}
				})
			}
			mu.Unlock()

		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Watch is New followed by Run.
func Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	fw, err := New(paths)
	if err != nil {
		return err
	}
	defer fw.Close()
	return fw.Run(ctx, onChange, nil)
}
