package catalog

import (
	"os"
	"sync"
	"time"
)

// FileWatcher polls file modification times and triggers a callback on
// change. A file appearing or disappearing also counts as a change.
type FileWatcher struct {
	Paths    []string
	Interval time.Duration
	onChange func(string) // called with path that changed

	stopCh   chan struct{}
	stopOnce sync.Once
	lastSeen map[string]time.Time // zero time: file missing
}

// NewFileWatcher creates a watcher for given paths and interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &FileWatcher{
		Paths:    paths,
		Interval: interval,
		onChange: onChange,
		stopCh:   make(chan struct{}),
		lastSeen: make(map[string]time.Time),
	}
}

// Start primes the mtime cache and begins polling in a goroutine.
func (w *FileWatcher) Start() {
	w.scanAll(true)
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scanAll(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher. It is safe to call more than once.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// scanAll checks mtimes and invokes onChange for files that changed since last scan.
func (w *FileWatcher) scanAll(prime bool) {
	for _, p := range w.Paths {
		var mt time.Time
		if fi, err := os.Stat(p); err == nil {
			mt = fi.ModTime()
		}
		last, ok := w.lastSeen[p]
		w.lastSeen[p] = mt
		if prime || !ok {
			continue
		}
		if !mt.Equal(last) && w.onChange != nil {
			w.onChange(p)
		}
	}
}
