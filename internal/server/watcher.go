package server

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 300 * time.Millisecond

// Watcher re-runs a callback when the content tree changes, debounced so an
// editor save burst triggers a single run. It gives authors immediate
// feedback on contract violations without owning any build step.
type Watcher struct {
	dir      string
	onChange func(ctx context.Context)
}

// NewWatcher creates a watcher over dir that invokes onChange after changes.
func NewWatcher(dir string, onChange func(ctx context.Context)) *Watcher {
	return &Watcher{dir: dir, onChange: onChange}
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := addDirsRecursive(watcher, w.dir); err != nil {
		return err
	}

	changed := make(chan struct{}, 1)
	trigger := newDebouncer(changed)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			w.onChange(ctx)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if shouldIgnoreEvent(event.Name) {
				continue
			}
			// New directories need to be watched too.
			if event.Op.Has(fsnotify.Create) {
				if st, err := os.Stat(event.Name); err == nil && st.IsDir() {
					_ = addDirsRecursive(watcher, event.Name)
				}
			}
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		}
	}
}

// newDebouncer returns a trigger that, after the debounce delay, sends one
// notification to ch (dropping duplicates while one is pending).
func newDebouncer(ch chan struct{}) func() {
	var mu sync.Mutex
	var timer *time.Timer

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounceDelay, func() {
			select {
			case ch <- struct{}{}:
			default:
			}
		})
	}
}

func addDirsRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// shouldIgnoreEvent filters editor temp files and hidden paths.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	for _, suffix := range []string{".swp", ".swx", "~"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}
