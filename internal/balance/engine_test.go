package balance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/cardforge/internal/card"
	"github.com/xtding233/cardforge/internal/catalog"
)

const eps = 1e-9

func minion(atk, hp int) card.Card {
	return card.Card{
		Type:   catalog.Minion,
		Rarity: catalog.RarityCommon,
		Tribe:  catalog.TribeNeutral,
		Stats:  card.Stats{Attack: atk, Health: hp},
	}
}

func TestEmptyCardsPerType(t *testing.T) {
	cat := catalog.Default()
	for _, typ := range []catalog.CardType{catalog.Minion, catalog.Spell, catalog.Weapon} {
		r := Calculate(card.Card{Type: typ, Rarity: catalog.RarityCommon}, cat)
		assert.InDelta(t, 1.0*cat.TypeModifier(typ), r.TotalVP, eps, typ)
		assert.Equal(t, 0, r.ManaCost, typ)
		assert.Empty(t, r.Warnings)
	}
}

func TestVanillaMinion(t *testing.T) {
	r := Calculate(minion(3, 4), catalog.Default())
	assert.Equal(t, 1.0, r.Breakdown.Base)
	assert.Equal(t, 7.0, r.Breakdown.Stats)
	assert.Equal(t, 0.0, r.Breakdown.TypeMod)
	assert.InDelta(t, 8.0, r.TotalVP, eps)
	assert.Equal(t, 4, r.ManaCost)
}

func TestDamageSpell(t *testing.T) {
	c := card.Card{
		Type:   catalog.Spell,
		Rarity: catalog.RarityCommon,
		Abilities: []card.Ability{{
			Trigger: catalog.TriggerOnPlay,
			Effect:  catalog.EffectDealDamage,
			Target:  catalog.TargetAny,
			Payload: card.Numeric{Value: 3},
		}},
	}
	r := Calculate(c, catalog.Default())
	require.Len(t, r.AbilityVP, 1)
	assert.InDelta(t, 8.4, r.AbilityVP[0], eps)
	assert.InDelta(t, 8.4, r.Breakdown.Abilities, eps)
	assert.InDelta(t, 7.52, r.TotalVP, eps)
	assert.InDelta(t, -1.88, r.Breakdown.TypeMod, eps, "spells record a negative delta")
	assert.Equal(t, 3, r.ManaCost)
}

func TestWeaponTypeModIsPositiveDelta(t *testing.T) {
	c := card.Card{Type: catalog.Weapon, Rarity: catalog.RarityCommon, Stats: card.Stats{Attack: 3, Health: 2}}
	r := Calculate(c, catalog.Default())
	assert.InDelta(t, 1.2, r.Breakdown.TypeMod, eps)
	assert.InDelta(t, 7.2, r.TotalVP, eps)
	assert.Equal(t, 3, r.ManaCost)
}

func TestRarityOrdering(t *testing.T) {
	cat := catalog.Default()
	base := minion(4, 5)
	base.Keywords = card.NewKeywordSet(catalog.KeywordTaunt)

	var costs []int
	for _, rar := range []catalog.RarityID{catalog.RarityCommon, catalog.RarityRare, catalog.RarityEpic, catalog.RarityLegendary} {
		c := base
		c.Rarity = rar
		costs = append(costs, Calculate(c, cat).ManaCost)
	}
	for i := 1; i < len(costs); i++ {
		assert.GreaterOrEqual(t, costs[i-1], costs[i])
	}
	assert.Equal(t, []int{5, 5, 4, 4}, costs)
}

func TestDiscountNeverGoesNegative(t *testing.T) {
	c := card.Card{Type: catalog.Spell, Rarity: catalog.RarityLegendary}
	r := Calculate(c, catalog.Default())
	assert.Equal(t, 3.0, r.Breakdown.RarityDiscount)
	assert.Equal(t, 0.0, r.TotalVP)
	assert.Equal(t, 0.0, r.Breakdown.TypeMod)
	assert.Equal(t, 0, r.ManaCost)
}

func TestCapWarning(t *testing.T) {
	r := Calculate(minion(12, 12), catalog.Default())
	assert.Equal(t, 10, r.ManaCost)
	assert.True(t, r.Capped())
	assert.Equal(t, 12, r.Uncapped)
	assert.Equal(t, []string{"Cost capped at 10. Real cost: 12"}, r.Warnings)

	ok := Calculate(minion(9, 10), catalog.Default())
	assert.Equal(t, 10, ok.ManaCost)
	assert.Empty(t, ok.Warnings, "exactly MAX is not capped")
}

func TestHugeValueStaysCapped(t *testing.T) {
	c := minion(1, 1)
	c.Abilities = []card.Ability{{
		Trigger: catalog.TriggerOnPlay,
		Effect:  catalog.EffectDealDamage,
		Target:  catalog.TargetAllEnemies,
		Payload: card.Numeric{Value: math.MaxInt / 2},
	}}
	r := Calculate(c, catalog.Default())
	assert.Equal(t, 10, r.ManaCost)
	assert.True(t, r.Capped())
	assert.Equal(t, math.MaxInt, r.Uncapped)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "Cost capped at 10.")

	c.Stats = card.Stats{Attack: math.MaxInt, Health: math.MaxInt}
	c.Abilities = nil
	r = Calculate(c, catalog.Default())
	assert.Equal(t, 10, r.ManaCost)
	assert.NotEmpty(t, r.Warnings)
}

func TestIdempotent(t *testing.T) {
	c := minion(2, 3)
	c.Keywords = card.NewKeywordSet(catalog.KeywordLifesteal, catalog.KeywordSpellDamage)
	c.Abilities = []card.Ability{
		{Trigger: catalog.TriggerOnDeath, Effect: catalog.EffectDrawCard, Target: catalog.TargetNone, Payload: card.Numeric{Value: 1}},
	}
	cat := catalog.Default()
	assert.Equal(t, Calculate(c, cat), Calculate(c, cat))
}

func TestKeywordCosts(t *testing.T) {
	cat := catalog.Default()
	ks := card.KeywordSet{catalog.KeywordTaunt: 2, catalog.KeywordSpellDamage: 3, "flying": 1}
	// taunt counts once; spell damage is per point; unknown is free
	assert.InDelta(t, 1.0+1.5*3, KeywordsVP(ks, cat), eps)
}

func TestTokenSplitInvariance(t *testing.T) {
	cat := catalog.Default()
	ab := func(atk, hp int) card.Ability {
		return card.Ability{
			Trigger: catalog.TriggerOnPlay,
			Effect:  catalog.EffectSummonToken,
			Target:  catalog.TargetNone,
			Payload: card.Token{Name: "Wolf", Attack: atk, Health: hp},
		}
	}
	c := minion(1, 1)
	a := AbilityVP(ab(2, 2), c, cat)
	b := AbilityVP(ab(1, 3), c, cat)
	assert.Equal(t, a, b)
	assert.InDelta(t, 1.0+2.0*4, a, eps)
}

func TestAbilityBranches(t *testing.T) {
	cat := catalog.Default()
	c := minion(3, 3)

	kw := card.Ability{Trigger: catalog.TriggerOnPlay, Effect: catalog.EffectGiveKeyword, Target: catalog.TargetSelf,
		Payload: card.KeywordRef{Keyword: catalog.KeywordDivineShield}}
	assert.InDelta(t, 2.5, AbilityVP(kw, c, cat), eps)

	kw.Payload = card.KeywordRef{Keyword: "flying"}
	assert.InDelta(t, 0.0, AbilityVP(kw, c, cat), eps)

	cp := card.Ability{Trigger: catalog.TriggerOnDeath, Effect: catalog.EffectSummonCopy, Target: catalog.TargetNone,
		Payload: card.Numeric{Value: 99}}
	assert.InDelta(t, 6.0*0.8, AbilityVP(cp, c, cat), eps, "self copy uses the card's stats, not value")

	weapon := card.Ability{Trigger: catalog.TriggerOnPlay, Effect: catalog.EffectEquipWeapon, Target: catalog.TargetNone,
		Payload: card.Numeric{Value: 5}}
	assert.InDelta(t, 1.0+1.5*5, AbilityVP(weapon, c, cat), eps)

	tribal := card.Ability{Trigger: catalog.TriggerOnPlay, Effect: catalog.EffectDiscoverTribe, Target: catalog.TargetNone,
		Condition: catalog.ConditionHoldingTribe, ConditionTribe: "tribe_1", Payload: card.TribeRef{Tribe: "tribe_1"}}
	assert.InDelta(t, 2.0*0.8, AbilityVP(tribal, c, cat), eps)
}

func TestUnknownIdsDegrade(t *testing.T) {
	cat := catalog.Default()
	c := minion(1, 1)

	a := card.Ability{Trigger: "on_sneeze", Effect: catalog.EffectDealDamage, Target: "everyone",
		Condition: "if_raining", Payload: card.Numeric{Value: 2}}
	assert.InDelta(t, 5.0, AbilityVP(a, c, cat), eps)

	a.Effect = "explode"
	assert.Equal(t, 0.0, AbilityVP(a, c, cat))

	r := Calculate(card.Card{Type: "hero", Rarity: "mythic", Stats: card.Stats{Attack: 2, Health: 2}}, cat)
	assert.InDelta(t, 5.0, r.TotalVP, eps)
	assert.Equal(t, 2, r.ManaCost)
}

func TestOverriddenBalance(t *testing.T) {
	maxMana, vp := 7, 1.0
	cat, err := catalog.Apply(catalog.Default(), catalog.RawOverrides{
		Balance: &catalog.RawBalance{MaxMana: &maxMana, VPPerMana: &vp},
	})
	require.NoError(t, err)
	r := Calculate(minion(3, 4), cat)
	assert.Equal(t, 7, r.ManaCost)
	assert.Equal(t, []string{"Cost capped at 7. Real cost: 8"}, r.Warnings)
}
