package catalog

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader reads balance override files, merges them in order (later files
// win) onto the built-in catalog and caches the result.
type Loader struct {
	paths []string
	base  *Catalog

	mu    sync.RWMutex
	cache *Catalog
}

// NewLoader creates a loader over the given override files. A typical setup
// is one shared file plus an optional local one.
func NewLoader(paths ...string) *Loader {
	return &Loader{paths: paths, base: Default()}
}

// Paths returns the override files, for a FileWatcher.
func (l *Loader) Paths() []string { return append([]string(nil), l.paths...) }

// Load returns the merged catalog, reading from disk on a cache miss.
// Missing files count as empty overrides.
func (l *Loader) Load() (*Catalog, error) {
	l.mu.RLock()
	if c := l.cache; c != nil {
		l.mu.RUnlock()
		return c, nil
	}
	l.mu.RUnlock()

	cat, err := l.build()
	if err != nil {
		return nil, err
	}
	l.store(cat)
	return cat, nil
}

// build reads and merges every file onto the built-in catalog without
// touching the cache.
func (l *Loader) build() (*Catalog, error) {
	var merged RawOverrides
	for _, p := range l.paths {
		raw, err := readYAML(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		merged = mergeRaw(merged, raw)
	}
	return Apply(l.base, merged)
}

func (l *Loader) store(cat *Catalog) {
	l.mu.Lock()
	l.cache = cat
	l.mu.Unlock()
}

// Current returns the cached catalog, or the built-in one if nothing has
// loaded successfully yet.
func (l *Loader) Current() *Catalog {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.cache == nil {
		return l.base
	}
	return l.cache
}

// Reload re-reads the files and swaps the result in. Readers keep the
// previous catalog until then, and for good if the reload fails.
func (l *Loader) Reload() (*Catalog, error) {
	cat, err := l.build()
	if err != nil {
		return nil, err
	}
	l.store(cat)
	return cat, nil
}

// readYAML loads one overrides file. Missing files return zero overrides, no error.
func readYAML(path string) (RawOverrides, error) {
	var raw RawOverrides
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawOverrides{}, nil
		}
		return RawOverrides{}, err
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return RawOverrides{}, err
	}
	return raw, nil
}
