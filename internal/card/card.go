// Package card holds the card and ability model the engines read.
package card

import (
	"slices"

	"github.com/xtding233/cardforge/internal/catalog"
)

type Stats struct {
	Attack int `json:"attack"`
	Health int `json:"health"`
}

// KeywordSet maps a keyword to its count. Plain keywords have count 1;
// stackable ones (Spell Damage +2) carry more.
type KeywordSet map[catalog.KeywordID]int

func NewKeywordSet(ids ...catalog.KeywordID) KeywordSet {
	s := make(KeywordSet, len(ids))
	for _, id := range ids {
		s[id]++
	}
	return s
}

func (s KeywordSet) Has(id catalog.KeywordID) bool { return s[id] > 0 }

func (s KeywordSet) Count(id catalog.KeywordID) int { return max(s[id], 0) }

// IDs returns the active keywords in catalog order, followed by ids the
// catalog does not know, sorted.
func (s KeywordSet) IDs(cat *catalog.Catalog) []catalog.KeywordID {
	var out, unknown []catalog.KeywordID
	for _, k := range cat.Keywords() {
		if s.Has(k.ID) {
			out = append(out, k.ID)
		}
	}
	for id, n := range s {
		if _, ok := cat.Keyword(id); !ok && n > 0 {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(unknown)
	return append(out, unknown...)
}

// Payload is the one auxiliary input an ability carries. Which variant is
// valid follows from the effect's catalog.InputKind.
type Payload interface {
	isPayload()
}

// Numeric is a magnitude. For stat effects (buffs, weapons) it is the
// attack+health sum.
type Numeric struct{ Value int }

type KeywordRef struct{ Keyword catalog.KeywordID }

type TribeRef struct{ Tribe catalog.TribeID }

type Token struct {
	Name   string
	Attack int
	Health int
}

func (Numeric) isPayload() {}
func (KeywordRef) isPayload() {}
func (TribeRef) isPayload() {}
func (Token) isPayload() {}

type Ability struct {
	FlavorName     string
	Trigger        catalog.TriggerID
	Condition      catalog.ConditionID
	ConditionTribe catalog.TribeID
	Effect         catalog.EffectID
	Target         catalog.TargetID
	TargetTribe    catalog.TribeID
	Payload        Payload
}

// Value is the ability's numeric input: the magnitude, or a token's stat
// sum. Other payloads have no value.
func (a Ability) Value() int {
	switch p := a.Payload.(type) {
	case Numeric:
		return p.Value
	case Token:
		return p.Attack + p.Health
	}
	return 0
}

// HasCondition reports whether a condition clause applies. Empty and
// "none" both mean unconditional.
func (a Ability) HasCondition() bool {
	return a.Condition != "" && a.Condition != catalog.ConditionNone
}

type Card struct {
	Name       string
	Type       catalog.CardType
	Rarity     catalog.RarityID
	Tribe      catalog.TribeID
	Stats      Stats
	Keywords   KeywordSet
	Abilities  []Ability
	FlavorText string
}
