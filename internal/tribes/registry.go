package tribes

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/i18n"
)

var (
	ErrNeutralTribe  = errors.New("the neutral tribe cannot be deleted")
	ErrEmptyName     = errors.New("tribe name must not be empty")
	ErrInvalidColor  = errors.New("tribe color must look like #rrggbb")
	ErrUnknownPreset = errors.New("unknown tribe preset")
	ErrNotFound      = errors.New("tribe not found")
)

const defaultColor = "#888888"

var (
	hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	nonSlug  = regexp.MustCompile(`[^a-z0-9_]+`)
)

// Patch is a partial tribe update; nil fields are left alone.
type Patch struct {
	Name        *string `json:"name,omitempty"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

// file is the on-disk shape of a registry.
type file struct {
	Preset Preset          `yaml:"preset"`
	Tribes []catalog.Tribe `yaml:"tribes"`
}

// Registry is the mutable tribe table. Abilities refer to tribes by id
// only, so deleting an entry never invalidates a card; the engines just
// stop finding it.
type Registry struct {
	path   string
	logger *zap.Logger

	mu     sync.RWMutex
	preset Preset
	tribes []catalog.Tribe
	subs   map[int]func([]catalog.Tribe)
	nextID int
}

// New starts a registry from preset. With a non-empty path every mutation
// is written to that file.
func New(preset Preset, path string, logger *zap.Logger) (*Registry, error) {
	ts, ok := presetTribes(preset)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		path:   path,
		logger: logger.Named("tribes"),
		preset: preset,
		tribes: ts,
		subs:   make(map[int]func([]catalog.Tribe)),
	}, nil
}

// Open loads the registry saved at path, falling back to preset when the
// file does not exist yet.
func Open(path string, preset Preset, logger *zap.Logger) (*Registry, error) {
	r, err := New(preset, path, logger)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Info("no saved tribes, using preset", zap.String("preset", string(preset)))
			return r, nil
		}
		return nil, fmt.Errorf("read tribes: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse tribes %s: %w", path, err)
	}
	if f.Preset != "" {
		r.preset = f.Preset
	}
	r.tribes = ensureNeutral(f.Tribes)
	r.logger.Info("tribes loaded", zap.String("path", path), zap.Int("count", len(r.tribes)))
	return r, nil
}

func ensureNeutral(ts []catalog.Tribe) []catalog.Tribe {
	for _, t := range ts {
		if t.ID == catalog.TribeNeutral {
			return ts
		}
	}
	return append(ts, neutral())
}

func cloneTribe(t catalog.Tribe) catalog.Tribe {
	t.Name = maps.Clone(t.Name)
	t.Description = maps.Clone(t.Description)
	return t
}

func cloneAll(ts []catalog.Tribe) []catalog.Tribe {
	out := make([]catalog.Tribe, len(ts))
	for i, t := range ts {
		out[i] = cloneTribe(t)
	}
	return out
}

// Preset reports which preset the table started from.
func (r *Registry) Preset() Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.preset
}

// List returns a copy of the table in display order.
func (r *Registry) List() []catalog.Tribe {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.tribes)
}

// Tribe looks up one tribe by id. It satisfies catalog.TribeSource; a nil
// *Registry finds nothing.
func (r *Registry) Tribe(id catalog.TribeID) (catalog.Tribe, bool) {
	if r == nil {
		return catalog.Tribe{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return catalog.Tribe{}, false
	}
	return cloneTribe(r.tribes[i]), true
}

func (r *Registry) index(id catalog.TribeID) int {
	return slices.IndexFunc(r.tribes, func(t catalog.Tribe) bool { return t.ID == id })
}

func newID(name string) catalog.TribeID {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), "_")
	slug = strings.Trim(nonSlug.ReplaceAllString(slug, ""), "_")
	if slug == "" {
		slug = "tribe"
	}
	return catalog.TribeID(slug + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func checkColor(c string) (string, error) {
	if c == "" {
		return defaultColor, nil
	}
	if !hexColor.MatchString(c) {
		return "", ErrInvalidColor
	}
	return c, nil
}

// Add creates a tribe with a generated id ("<slug>_<8 hex>").
func (r *Registry) Add(name, color string) (catalog.Tribe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.Tribe{}, ErrEmptyName
	}
	color, err := checkColor(color)
	if err != nil {
		return catalog.Tribe{}, err
	}
	t := catalog.Tribe{ID: newID(name), Name: i18n.Plain(name), Color: color}

	err = r.mutate(func(ts []catalog.Tribe) ([]catalog.Tribe, error) {
		return append(ts, t), nil
	})
	if err != nil {
		return catalog.Tribe{}, err
	}
	r.logger.Info("tribe added", zap.String("id", string(t.ID)), zap.String("name", name))
	return cloneTribe(t), nil
}

// Update applies p to the tribe with the given id.
func (r *Registry) Update(id catalog.TribeID, p Patch) (catalog.Tribe, error) {
	var updated catalog.Tribe
	err := r.mutate(func(ts []catalog.Tribe) ([]catalog.Tribe, error) {
		i := slices.IndexFunc(ts, func(t catalog.Tribe) bool { return t.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		t := ts[i]
		if p.Name != nil {
			name := strings.TrimSpace(*p.Name)
			if name == "" {
				return nil, ErrEmptyName
			}
			t.Name = i18n.Plain(name)
		}
		if p.Color != nil {
			c, err := checkColor(*p.Color)
			if err != nil {
				return nil, err
			}
			t.Color = c
		}
		if p.Description != nil {
			t.Description = i18n.Plain(strings.TrimSpace(*p.Description))
		}
		ts[i] = t
		updated = t
		return ts, nil
	})
	if err != nil {
		return catalog.Tribe{}, err
	}
	r.logger.Info("tribe updated", zap.String("id", string(id)))
	return cloneTribe(updated), nil
}

// Delete removes a tribe. The neutral tribe is permanent.
func (r *Registry) Delete(id catalog.TribeID) error {
	if id == catalog.TribeNeutral {
		return ErrNeutralTribe
	}
	err := r.mutate(func(ts []catalog.Tribe) ([]catalog.Tribe, error) {
		i := slices.IndexFunc(ts, func(t catalog.Tribe) bool { return t.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return slices.Delete(ts, i, i+1), nil
	})
	if err != nil {
		return err
	}
	r.logger.Info("tribe deleted", zap.String("id", string(id)))
	return nil
}

// Reset replaces the whole table with a preset.
func (r *Registry) Reset(p Preset) error {
	ts, ok := presetTribes(p)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, p)
	}
	err := r.mutate(func([]catalog.Tribe) ([]catalog.Tribe, error) { return ts, nil }, p)
	if err != nil {
		return err
	}
	r.logger.Info("tribes reset", zap.String("preset", string(p)))
	return nil
}

// Subscribe registers fn to receive the new table after every mutation.
// The returned func removes the subscription.
func (r *Registry) Subscribe(fn func([]catalog.Tribe)) (cancel func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// mutate runs fn on a copy of the table, persists the result and only then
// swaps it in. Subscribers are called after the lock is released.
func (r *Registry) mutate(fn func([]catalog.Tribe) ([]catalog.Tribe, error), preset ...Preset) error {
	r.mu.Lock()
	next, err := fn(cloneAll(r.tribes))
	if err != nil {
		r.mu.Unlock()
		return err
	}
	next = ensureNeutral(next)
	p := r.preset
	if len(preset) > 0 {
		p = preset[0]
	}
	if err := r.save(file{Preset: p, Tribes: next}); err != nil {
		r.mu.Unlock()
		r.logger.Warn("persist tribes failed", zap.String("path", r.path), zap.Error(err))
		return fmt.Errorf("persist tribes: %w", err)
	}
	r.tribes = next
	r.preset = p
	subs := slices.Collect(maps.Values(r.subs))
	snapshot := cloneAll(next)
	r.mu.Unlock()

	for _, fn := range subs {
		fn(cloneAll(snapshot))
	}
	return nil
}

// save writes the table atomically (temp file + rename). No-op without a path.
func (r *Registry) save(f file) error {
	if r.path == "" {
		return nil
	}
	b, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
