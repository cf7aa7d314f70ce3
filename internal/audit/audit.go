// Package audit sweeps the cost engine with random cards to show the shape
// of the mana curve a catalog produces. A sweep is deterministic for a
// given seed, so two catalogs can be compared card for card.
package audit

import (
	cryptoRand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/xtding233/cardforge/internal/balance"
	"github.com/xtding233/cardforge/internal/card"
	"github.com/xtding233/cardforge/internal/catalog"
)

const (
	MaxTrials = 100_000

	defaultMaxStat      = 8
	defaultMaxAbilities = 2
	maxValue            = 5
	maxKeywords         = 2
)

var (
	ErrUnknownType = errors.New("unknown card type")
	ErrBadParams   = errors.New("invalid audit params")
)

// Params describes one sweep.
type Params struct {
	Trials int
	// Seed 0 draws from crypto/rand and is not reproducible.
	Seed uint64
	// Type restricts the sweep to one card type; empty picks a type per card.
	Type         catalog.CardType
	MaxStat      int // <=0 means 8
	MaxAbilities int // <0 is invalid; 0 means 2
}

func (p Params) normalized(cat *catalog.Catalog) (Params, error) {
	if p.Trials < 0 || p.Trials > MaxTrials {
		return p, fmt.Errorf("%w: trials must be in [0, %d], got %d", ErrBadParams, MaxTrials, p.Trials)
	}
	if p.MaxAbilities < 0 {
		return p, fmt.Errorf("%w: max abilities must be >= 0, got %d", ErrBadParams, p.MaxAbilities)
	}
	if p.Type != "" {
		if _, ok := cat.CardType(p.Type); !ok {
			return p, fmt.Errorf("%w: %q", ErrUnknownType, p.Type)
		}
	}
	if p.MaxStat <= 0 {
		p.MaxStat = defaultMaxStat
	}
	if p.MaxAbilities == 0 {
		p.MaxAbilities = defaultMaxAbilities
	}
	return p, nil
}

// Run prices p.Trials random cards against cat and summarizes their costs.
func Run(cat *catalog.Catalog, p Params) (Stats, error) {
	p, err := p.normalized(cat)
	if err != nil {
		return Stats{}, err
	}
	if p.Trials == 0 {
		return calcStats(nil), nil
	}

	g := newGenerator(cat, newRand(p.Seed), p)

	samples := make([]int, p.Trials)
	capped := 0
	for i := range samples {
		r := balance.Calculate(g.card(), cat)
		samples[i] = r.ManaCost
		if r.Capped() {
			capped++
		}
	}
	st := calcStats(samples)
	st.CappedShare = float64(capped) / float64(p.Trials)
	return st, nil
}

// newRand returns a PCG stream for a non-zero seed and a ChaCha8 stream
// keyed from crypto/rand otherwise.
func newRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, 0))
	}
	var key [32]byte
	cryptoRand.Read(key[:])
	return rand.New(rand.NewChaCha8(key))
}

// generator builds random cards out of the catalog's tables.
type generator struct {
	rng *rand.Rand
	p   Params

	types    []catalog.CardTypeDef
	rarities []catalog.Rarity
	keywords []catalog.Keyword
	triggers []catalog.Trigger
	targets  []catalog.Target
	conds    []catalog.Condition
	effects  []catalog.Effect
}

func newGenerator(cat *catalog.Catalog, rng *rand.Rand, p Params) *generator {
	g := &generator{
		rng:      rng,
		p:        p,
		types:    cat.CardTypes(),
		rarities: cat.Rarities(),
		keywords: cat.Keywords(),
		triggers: cat.Triggers(),
		targets:  cat.Targets(),
		conds:    cat.Conditions(),
		effects:  cat.Effects(),
	}
	if p.Type != "" {
		def, _ := cat.CardType(p.Type)
		g.types = []catalog.CardTypeDef{def}
	}
	return g
}

// n returns an int in [0, k); k <= 1 yields 0.
func (g *generator) n(k int) int {
	if k <= 1 {
		return 0
	}
	return g.rng.IntN(k)
}

// between returns an int in [lo, hi].
func (g *generator) between(lo, hi int) int { return lo + g.n(hi-lo+1) }

func (g *generator) card() card.Card {
	def := g.types[g.n(len(g.types))]
	c := card.Card{
		Type:     def.ID,
		Rarity:   g.rarities[g.n(len(g.rarities))].ID,
		Tribe:    catalog.TribeNeutral,
		Keywords: card.KeywordSet{},
	}
	if def.HasStats {
		c.Stats = card.Stats{Attack: g.between(0, g.p.MaxStat), Health: g.between(1, g.p.MaxStat)}
	}
	for range g.n(maxKeywords + 1) {
		k := g.keywords[g.n(len(g.keywords))]
		if k.Stackable {
			c.Keywords[k.ID] += g.between(1, 3)
		} else {
			c.Keywords[k.ID] = 1
		}
	}
	for range g.n(g.p.MaxAbilities + 1) {
		c.Abilities = append(c.Abilities, g.ability())
	}
	return c
}

func (g *generator) ability() card.Ability {
	eff := g.effects[g.n(len(g.effects))]
	a := card.Ability{
		Trigger:   g.triggers[g.n(len(g.triggers))].ID,
		Condition: g.conds[g.n(len(g.conds))].ID,
		Effect:    eff.ID,
		Target:    g.targets[g.n(len(g.targets))].ID,
	}
	if a.Condition == catalog.ConditionNone {
		a.Condition = ""
	}
	switch eff.Input {
	case catalog.InputValue, catalog.InputStats:
		a.Payload = card.Numeric{Value: g.between(1, maxValue)}
	case catalog.InputKeyword:
		a.Payload = card.KeywordRef{Keyword: g.keywords[g.n(len(g.keywords))].ID}
	case catalog.InputTribe:
		a.Payload = card.TribeRef{Tribe: catalog.TribeNeutral}
	case catalog.InputToken:
		a.Payload = card.Token{Name: "Token", Attack: g.between(0, maxValue), Health: g.between(1, maxValue)}
	}
	return a
}
