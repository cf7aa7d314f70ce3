package card

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/xtding233/cardforge/internal/catalog"
)

var ErrInvalidDocument = errors.New("invalid card document")

// TokenDoc is the token a summon effect creates.
type TokenDoc struct {
	Name   string `json:"name" jsonschema:"description=Token display name"`
	Attack int    `json:"attack" jsonschema:"minimum=0"`
	Health int    `json:"health" jsonschema:"minimum=0"`
}

// AbilityDoc is the flat JSON shape of an ability. keyword, effectTribe and
// tokenData may all be present; only the one the effect asks for is used.
type AbilityDoc struct {
	FlavorName     string    `json:"flavorName,omitempty" jsonschema:"description=Optional display name shown before the trigger"`
	Trigger        string    `json:"trigger" jsonschema:"required,minLength=1"`
	Condition      string    `json:"condition,omitempty"`
	ConditionParam string    `json:"conditionParam,omitempty" jsonschema:"description=Tribe id for tribal conditions"`
	Effect         string    `json:"effect" jsonschema:"required,minLength=1"`
	Value          int       `json:"value" jsonschema:"description=Magnitude or attack+health sum for stat effects"`
	Keyword        string    `json:"keyword,omitempty"`
	EffectTribe    string    `json:"effectTribe,omitempty"`
	TokenData      *TokenDoc `json:"tokenData,omitempty"`
	Target         string    `json:"target" jsonschema:"required"`
	TargetParam    string    `json:"targetParam,omitempty" jsonschema:"description=Tribe id for tribal targets"`
}

// CardDoc is the JSON card document accepted by the API.
type CardDoc struct {
	Name       string         `json:"name,omitempty"`
	Type       string         `json:"type" jsonschema:"required,enum=minion,enum=spell,enum=weapon"`
	Rarity     string         `json:"rarity" jsonschema:"required,enum=common,enum=rare,enum=epic,enum=legendary"`
	Tribe      string         `json:"tribe,omitempty"`
	Stats      Stats          `json:"stats"`
	Keywords   map[string]int `json:"keywords,omitempty" jsonschema:"description=Keyword id to count; 1 for plain keywords"`
	Abilities  []AbilityDoc   `json:"abilities,omitempty"`
	FlavorText string         `json:"flavorText,omitempty"`
}

// Build selects the active payload from the effect's input kind. Unknown
// effects keep the raw value so costs still degrade softly.
func (d AbilityDoc) Build(cat *catalog.Catalog) Ability {
	a := Ability{
		FlavorName:     strings.TrimSpace(d.FlavorName),
		Trigger:        catalog.TriggerID(d.Trigger),
		Condition:      catalog.ConditionID(d.Condition),
		ConditionTribe: catalog.TribeID(d.ConditionParam),
		Effect:         catalog.EffectID(d.Effect),
		Target:         catalog.TargetID(d.Target),
		TargetTribe:    catalog.TribeID(d.TargetParam),
	}
	if a.Condition == catalog.ConditionNone {
		a.Condition = ""
	}

	eff, ok := cat.Effect(a.Effect)
	if !ok {
		a.Payload = Numeric{Value: d.Value}
		return a
	}
	switch eff.Input {
	case catalog.InputKeyword:
		a.Payload = KeywordRef{Keyword: catalog.KeywordID(d.Keyword)}
	case catalog.InputTribe:
		a.Payload = TribeRef{Tribe: catalog.TribeID(d.EffectTribe)}
	case catalog.InputToken:
		tok := Token{Name: "Token", Attack: 1, Health: 1}
		if d.TokenData != nil {
			tok = Token{Name: d.TokenData.Name, Attack: d.TokenData.Attack, Health: d.TokenData.Health}
			if strings.TrimSpace(tok.Name) == "" {
				tok.Name = "Token"
			}
		}
		a.Payload = tok
	case catalog.InputValue, catalog.InputStats:
		a.Payload = Numeric{Value: d.Value}
	}
	return a
}

// Validate reports structural problems in the document: missing ids,
// negative stats. It does not check ids against the catalog.
func (d CardDoc) Validate() error {
	var errs []string
	if d.Type == "" {
		errs = append(errs, "type is required")
	}
	if d.Stats.Attack < 0 || d.Stats.Health < 0 {
		errs = append(errs, "stats must be >= 0")
	}
	for _, k := range slices.Sorted(maps.Keys(d.Keywords)) {
		if d.Keywords[k] < 0 {
			errs = append(errs, fmt.Sprintf("keywords.%s must be >= 0", k))
		}
	}
	for i, a := range d.Abilities {
		if a.Trigger == "" {
			errs = append(errs, fmt.Sprintf("abilities[%d].trigger is required", i))
		}
		if a.Effect == "" {
			errs = append(errs, fmt.Sprintf("abilities[%d].effect is required", i))
		}
		if t := a.TokenData; t != nil && (t.Attack < 0 || t.Health < 0) {
			errs = append(errs, fmt.Sprintf("abilities[%d].tokenData stats must be >= 0", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(errs, "; "))
	}
	return nil
}

// Build validates the document and normalizes it the way the editor does
// before pricing: spells carry no stats, rarity defaults to common and
// tribe to neutral.
func (d CardDoc) Build(cat *catalog.Catalog) (Card, error) {
	if err := d.Validate(); err != nil {
		return Card{}, err
	}
	c := Card{
		Name:       d.Name,
		Type:       catalog.CardType(d.Type),
		Rarity:     catalog.RarityID(d.Rarity),
		Tribe:      catalog.TribeID(d.Tribe),
		Stats:      d.Stats,
		Keywords:   make(KeywordSet, len(d.Keywords)),
		FlavorText: d.FlavorText,
	}
	if c.Rarity == "" {
		c.Rarity = catalog.RarityCommon
	}
	if c.Tribe == "" {
		c.Tribe = catalog.TribeNeutral
	}
	if def, ok := cat.CardType(c.Type); ok && !def.HasStats {
		c.Stats = Stats{}
	}
	for id, n := range d.Keywords {
		if n <= 0 {
			continue
		}
		k, ok := cat.Keyword(catalog.KeywordID(id))
		if ok && !k.Stackable {
			n = 1
		}
		c.Keywords[catalog.KeywordID(id)] = n
	}
	for _, ad := range d.Abilities {
		c.Abilities = append(c.Abilities, ad.Build(cat))
	}
	return c, nil
}

// FromAbility converts back to the flat document.
func FromAbility(a Ability) AbilityDoc {
	d := AbilityDoc{
		FlavorName:     a.FlavorName,
		Trigger:        string(a.Trigger),
		Condition:      string(a.Condition),
		ConditionParam: string(a.ConditionTribe),
		Effect:         string(a.Effect),
		Target:         string(a.Target),
		TargetParam:    string(a.TargetTribe),
		Value:          a.Value(),
	}
	switch p := a.Payload.(type) {
	case KeywordRef:
		d.Keyword = string(p.Keyword)
	case TribeRef:
		d.EffectTribe = string(p.Tribe)
	case Token:
		d.TokenData = &TokenDoc{Name: p.Name, Attack: p.Attack, Health: p.Health}
	}
	return d
}

func FromCard(c Card) CardDoc {
	d := CardDoc{
		Name:       c.Name,
		Type:       string(c.Type),
		Rarity:     string(c.Rarity),
		Tribe:      string(c.Tribe),
		Stats:      c.Stats,
		FlavorText: c.FlavorText,
	}
	if len(c.Keywords) > 0 {
		d.Keywords = make(map[string]int, len(c.Keywords))
		for id, n := range c.Keywords {
			d.Keywords[string(id)] = n
		}
	}
	for _, a := range c.Abilities {
		d.Abilities = append(d.Abilities, FromAbility(a))
	}
	return d
}
