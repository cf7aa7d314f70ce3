package tribes

import (
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/i18n"
)

func ids(ts []catalog.Tribe) []catalog.TribeID {
	out := make([]catalog.TribeID, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestPresets(t *testing.T) {
	r, err := New(Midgard, "", nil)
	require.NoError(t, err)
	assert.Equal(t, []catalog.TribeID{"tribe_1", "tribe_2", "tribe_3", "tribe_4", "tribe_5", "tribe_6", "neutral"}, ids(r.List()))

	aesir, ok := r.Tribe("tribe_1")
	require.True(t, ok)
	assert.Equal(t, "Aesir", i18n.Resolve(aesir.Name, i18n.ES))

	g, err := New(Generic, "", nil)
	require.NoError(t, err)
	assert.Equal(t, []catalog.TribeID{"general", "neutral"}, ids(g.List()))

	tt, err := New(Tabletop, "", nil)
	require.NoError(t, err)
	rl, _ := tt.Tribe("rules_lawyer")
	assert.Equal(t, "Abogado de Reglas", i18n.Resolve(rl.Name, i18n.ES))

	_, err = New("chess", "", nil)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestAddUpdateDelete(t *testing.T) {
	r, err := New(Generic, "", nil)
	require.NoError(t, err)

	tr, err := r.Add("  Sea Folk ", "")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^sea_folk_[0-9a-f]{8}$`), string(tr.ID))
	assert.Equal(t, "#888888", tr.Color)
	assert.Equal(t, "Sea Folk", i18n.Resolve(tr.Name, i18n.EN))

	_, err = r.Add("   ", "#ffffff")
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = r.Add("Crows", "black")
	assert.ErrorIs(t, err, ErrInvalidColor)

	name, color := "Tide Folk", "#00aaff"
	up, err := r.Update(tr.ID, Patch{Name: &name, Color: &color})
	require.NoError(t, err)
	assert.Equal(t, tr.ID, up.ID, "ids are stable across renames")
	got, _ := r.Tribe(tr.ID)
	assert.Equal(t, "Tide Folk", i18n.Resolve(got.Name, i18n.EN))
	assert.Equal(t, "#00aaff", got.Color)

	_, err = r.Update("ghost", Patch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Delete(tr.ID))
	_, ok := r.Tribe(tr.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, r.Delete(tr.ID), ErrNotFound)
}

func TestNeutralIsPermanent(t *testing.T) {
	r, err := New(Midgard, "", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Delete(catalog.TribeNeutral), ErrNeutralTribe)

	require.NoError(t, r.Reset(Generic))
	_, ok := r.Tribe(catalog.TribeNeutral)
	assert.True(t, ok)
	assert.Equal(t, Generic, r.Preset())
	assert.ErrorIs(t, r.Reset("nope"), ErrUnknownPreset)
}

func TestListReturnsCopies(t *testing.T) {
	r, err := New(Midgard, "", nil)
	require.NoError(t, err)
	ts := r.List()
	ts[0].Name[i18n.EN] = "Changed"
	ts[0].Color = "#000000"

	fresh, _ := r.Tribe("tribe_1")
	assert.Equal(t, "Aesir", i18n.Resolve(fresh.Name, i18n.EN))
	assert.Equal(t, "#d32f2f", fresh.Color)
}

func TestPersistAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tribes.yaml")

	r, err := Open(path, Midgard, nil)
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing written before the first mutation")

	added, err := r.Add("Giants", "#abcdef")
	require.NoError(t, err)
	require.NoError(t, r.Delete("tribe_6"))

	again, err := Open(path, Generic, nil)
	require.NoError(t, err)
	assert.Equal(t, Midgard, again.Preset())
	list := ids(again.List())
	assert.Contains(t, list, added.ID)
	assert.NotContains(t, list, catalog.TribeID("tribe_6"))
	assert.Contains(t, list, catalog.TribeNeutral)
}

func TestOpenRestoresMissingNeutral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tribes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
preset: generic
tribes:
  - id: general
    name: {en: General}
    color: "#888888"
`), 0o644))

	r, err := Open(path, Midgard, nil)
	require.NoError(t, err)
	assert.Equal(t, []catalog.TribeID{"general", "neutral"}, ids(r.List()))
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r, err := New(Generic, "", zap.New(core))
	require.NoError(t, err)

	var mu sync.Mutex
	var seen [][]catalog.TribeID
	cancel := r.Subscribe(func(ts []catalog.Tribe) {
		mu.Lock()
		seen = append(seen, ids(ts))
		mu.Unlock()
	})

	tr, err := r.Add("Wolves", "")
	require.NoError(t, err)
	require.NoError(t, r.Delete(tr.ID))
	cancel()
	_, err = r.Add("Bears", "")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.Contains(t, seen[0], tr.ID)
	assert.NotContains(t, seen[1], tr.ID)

	assert.Equal(t, 1, logs.FilterMessage("tribe deleted").Len())
	assert.Equal(t, 2, logs.FilterMessage("tribe added").Len())
}

func TestSourceInterface(t *testing.T) {
	r, err := New(Midgard, "", nil)
	require.NoError(t, err)
	var src catalog.TribeSource = r
	_, ok := src.Tribe("tribe_3")
	assert.True(t, ok)
}

func TestNilRegistrySource(t *testing.T) {
	var r *Registry
	var src catalog.TribeSource = r
	_, ok := src.Tribe("tribe_3")
	assert.False(t, ok)
}
