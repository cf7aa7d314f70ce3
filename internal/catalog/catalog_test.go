package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/cardforge/internal/i18n"
)

func TestDefaultTables(t *testing.T) {
	c := Default()
	assert.Same(t, c, Default())

	assert.Len(t, c.Triggers(), 10)
	assert.Len(t, c.Targets(), 13)
	assert.Len(t, c.Conditions(), 8)
	assert.Len(t, c.Effects(), 19)
	assert.Len(t, c.Keywords(), 12)
	assert.Len(t, c.Rarities(), 4)
	assert.Len(t, c.CardTypes(), 3)

	// display order is declaration order
	assert.Equal(t, TriggerOnPlay, c.Triggers()[0].ID)
	assert.Equal(t, TriggerPassive, c.Triggers()[9].ID)
	assert.Equal(t, RarityLegendary, c.Rarities()[3].ID)

	b := c.Balance()
	assert.Equal(t, 2.0, b.VPPerMana)
	assert.Equal(t, 1.0, b.BaseCardVP)
	assert.Equal(t, 0, b.MinMana)
	assert.Equal(t, 10, b.MaxMana)
}

func TestEffectInputs(t *testing.T) {
	c := Default()
	cases := map[EffectID]InputKind{
		EffectDealDamage:        InputValue,
		EffectDestroyMinion:     InputNone,
		EffectGiveStats:         InputStats,
		EffectEquipWeapon:       InputStats,
		EffectGiveKeyword:       InputKeyword,
		EffectSummonToken:       InputToken,
		EffectDiscoverTribe:     InputTribe,
		EffectSummonTribeRandom: InputTribe,
	}
	for id, want := range cases {
		e, ok := c.Effect(id)
		require.True(t, ok, id)
		assert.Equal(t, want, e.Input, id)
	}

	copyEff, _ := c.Effect(EffectSummonCopy)
	assert.True(t, copyEff.SelfCopy)
	tok, _ := c.Effect(EffectSummonToken)
	assert.True(t, tok.RequiresTokenName())
	assert.False(t, tok.RequiresValue())
	assert.Equal(t, "token", tok.Input.String())
}

func TestSoftFailLookups(t *testing.T) {
	c := Default()

	assert.Equal(t, 1.3, c.TriggerMultiplier(TriggerOnSpellCast))
	assert.Equal(t, 1.0, c.TriggerMultiplier("no_such_trigger"))
	assert.Equal(t, 1.2, c.TargetMultiplier(TargetAny))
	assert.Equal(t, 1.0, c.TargetMultiplier(""))
	assert.Equal(t, 1.0, c.ConditionMultiplier(""))
	assert.Equal(t, 1.0, c.ConditionMultiplier("missing"))
	assert.Equal(t, 0.0, c.KeywordCost("flying"))
	assert.Equal(t, 0.0, c.RarityDiscount("mythic"))
	assert.Equal(t, 1.0, c.TypeModifier("hero"))

	assert.Equal(t, 2.5, c.KeywordCost(KeywordDivineShield))
	assert.Equal(t, 3.0, c.RarityDiscount(RarityLegendary))
	assert.Equal(t, 0.8, c.TypeModifier(Spell))
	assert.Equal(t, 1.2, c.TypeModifier(Weapon))
}

func TestConditionsSpanBothTables(t *testing.T) {
	c := Default()

	generic, ok := c.Condition(ConditionHandEmpty)
	require.True(t, ok)
	assert.False(t, generic.Tribal)

	tribal, ok := c.Condition(ConditionHoldingTribe)
	require.True(t, ok)
	assert.True(t, tribal.Tribal)
	assert.Equal(t, 0.8, c.ConditionMultiplier(ConditionHoldingTribe))
	assert.Equal(t, 0.75, c.ConditionMultiplier(ConditionFriendlyTribeDied))
}

func TestListing(t *testing.T) {
	l := Default().Listing(i18n.ES)
	assert.Equal(t, i18n.ES, l.Language)
	require.Len(t, l.Keywords, 12)
	assert.Equal(t, "Provocar", l.Keywords[0].Name)

	var none, holding Option
	for _, o := range l.Conditions {
		switch o.ID {
		case string(ConditionNone):
			none = o
		case string(ConditionHoldingTribe):
			holding = o
		}
	}
	assert.Equal(t, "Sin Condición", none.Name)
	assert.Equal(t, "Genérico", none.Group)
	assert.Equal(t, "Tribal", holding.Group)

	var token EffectOption
	for _, e := range l.Effects {
		if e.ID == string(EffectSummonToken) {
			token = e
		}
	}
	assert.Equal(t, "Invocar Ficha", token.Name)
	assert.True(t, token.RequiresTokenName)
	assert.Equal(t, 2.0, token.Unit)
}
