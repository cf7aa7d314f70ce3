// Package balance converts a card into value points (VP) and a mana cost.
//
// The engine is a pure function of the card and the catalog: it never
// fails, never logs, and treats unknown ids as neutral (multiplier 1.0,
// cost 0).
package balance

import (
	"fmt"
	"math"

	"github.com/xtding233/cardforge/internal/card"
	"github.com/xtding233/cardforge/internal/catalog"
)

// StatsVP is the value of a stat line.
func StatsVP(s card.Stats, cat *catalog.Catalog) float64 {
	b := cat.Balance()
	return float64(s.Attack)*b.AttackUnit + float64(s.Health)*b.HealthUnit
}

// KeywordsVP sums keyword costs; stackable keywords cost per point.
func KeywordsVP(ks card.KeywordSet, cat *catalog.Catalog) float64 {
	var vp float64
	for _, id := range ks.IDs(cat) {
		k, ok := cat.Keyword(id)
		if !ok {
			continue
		}
		if k.Stackable {
			vp += k.Cost * float64(ks.Count(id))
		} else {
			vp += k.Cost
		}
	}
	return vp
}

// AbilityVP prices one ability line:
//
//	(base + effect value) * trigger * target * condition
//
// The effect value depends on the effect: a granted keyword's cost, the
// card's own stat VP for a self copy, or unit * Value() otherwise. Token
// and weapon effects fall in the last group because Value() is already the
// attack+health sum. Unknown effects are worth 0.
func AbilityVP(a card.Ability, c card.Card, cat *catalog.Catalog) float64 {
	eff, ok := cat.Effect(a.Effect)
	if !ok {
		return 0
	}
	raw := eff.Base
	switch {
	case eff.Input == catalog.InputKeyword:
		if ref, ok := a.Payload.(card.KeywordRef); ok {
			raw += cat.KeywordCost(ref.Keyword)
		}
	case eff.SelfCopy:
		raw += StatsVP(c.Stats, cat)
	default:
		raw += eff.Unit * float64(a.Value())
	}

	cond := catalog.ConditionID("")
	if a.HasCondition() {
		cond = a.Condition
	}
	return raw * cat.TriggerMultiplier(a.Trigger) * cat.TargetMultiplier(a.Target) * cat.ConditionMultiplier(cond)
}

// Calculate prices a card. The order of steps is fixed: additive parts,
// rarity discount (clamped at 0), type modifier, one floor, clamp.
func Calculate(c card.Card, cat *catalog.Catalog) Report {
	b := cat.Balance()
	r := Report{Warnings: []string{}}

	running := b.BaseCardVP
	r.Breakdown.Base = b.BaseCardVP

	r.Breakdown.Stats = StatsVP(c.Stats, cat)
	running += r.Breakdown.Stats

	r.Breakdown.Keywords = KeywordsVP(c.Keywords, cat)
	running += r.Breakdown.Keywords

	for _, a := range c.Abilities {
		vp := AbilityVP(a, c, cat)
		r.AbilityVP = append(r.AbilityVP, vp)
		r.Breakdown.Abilities += vp
	}
	running += r.Breakdown.Abilities

	r.Breakdown.RarityDiscount = cat.RarityDiscount(c.Rarity)
	running -= r.Breakdown.RarityDiscount
	if running < 0 {
		running = 0
	}

	before := running
	running *= cat.TypeModifier(c.Type)
	r.Breakdown.TypeMod = running - before

	r.TotalVP = running
	raw := math.Floor(running / b.VPPerMana)
	r.Uncapped = saturate(raw)
	mana := r.Uncapped
	if raw > float64(b.MaxMana) {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Cost capped at %d. Real cost: %d", b.MaxMana, r.Uncapped))
		mana = b.MaxMana
	}
	if mana < b.MinMana {
		mana = b.MinMana
	}
	r.ManaCost = mana
	return r
}

// saturate converts f to int, clamping to the int range. NaN reads as 0.
func saturate(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}
