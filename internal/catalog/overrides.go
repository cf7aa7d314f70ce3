package catalog

import (
	"fmt"
	"maps"
)

// RawOverrides is the balance overrides file as loaded from YAML. Every field
// is optional; nil or absent means "keep the built-in value". Overrides can
// re-price existing entries but never add new ids.
type RawOverrides struct {
	Version    string                   `yaml:"version"`
	Balance    *RawBalance              `yaml:"balance,omitempty"`
	CardTypes  map[CardType]float64     `yaml:"card_types,omitempty"`
	Keywords   map[KeywordID]RawKeyword `yaml:"keywords,omitempty"`
	Triggers   map[TriggerID]float64    `yaml:"triggers,omitempty"`
	Targets    map[TargetID]float64     `yaml:"targets,omitempty"`
	Conditions map[ConditionID]float64  `yaml:"conditions,omitempty"`
	Effects    map[EffectID]RawEffect   `yaml:"effects,omitempty"`
	Rarities   map[RarityID]RawRarity   `yaml:"rarities,omitempty"`
	Notes      string                   `yaml:"notes,omitempty"`
}

type RawBalance struct {
	VPPerMana  *float64 `yaml:"vp_per_mana"`
	BaseCardVP *float64 `yaml:"base_card_vp"`
	MinMana    *int     `yaml:"min_mana"`
	MaxMana    *int     `yaml:"max_mana"`
	AttackUnit *float64 `yaml:"attack_unit"`
	HealthUnit *float64 `yaml:"health_unit"`
}

type RawKeyword struct {
	Cost      *float64 `yaml:"cost"`
	Stackable *bool    `yaml:"stackable,omitempty"`
}

type RawEffect struct {
	Base *float64 `yaml:"base"`
	Unit *float64 `yaml:"unit"`
}

type RawRarity struct {
	Discount *float64 `yaml:"discount"`
	Color    string   `yaml:"color,omitempty"`
}

// mergeRaw layers b on top of a: set fields in b win, maps merge per id.
func mergeRaw(a, b RawOverrides) RawOverrides {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	switch {
	case out.Balance == nil && b.Balance != nil:
		c := *b.Balance
		out.Balance = &c
	case out.Balance != nil && b.Balance != nil:
		c := *out.Balance
		if b.Balance.VPPerMana != nil {
			c.VPPerMana = b.Balance.VPPerMana
		}
		if b.Balance.BaseCardVP != nil {
			c.BaseCardVP = b.Balance.BaseCardVP
		}
		if b.Balance.MinMana != nil {
			c.MinMana = b.Balance.MinMana
		}
		if b.Balance.MaxMana != nil {
			c.MaxMana = b.Balance.MaxMana
		}
		if b.Balance.AttackUnit != nil {
			c.AttackUnit = b.Balance.AttackUnit
		}
		if b.Balance.HealthUnit != nil {
			c.HealthUnit = b.Balance.HealthUnit
		}
		out.Balance = &c
	}

	out.CardTypes = mergeMap(a.CardTypes, b.CardTypes, nil)
	out.Triggers = mergeMap(a.Triggers, b.Triggers, nil)
	out.Targets = mergeMap(a.Targets, b.Targets, nil)
	out.Conditions = mergeMap(a.Conditions, b.Conditions, nil)
	out.Keywords = mergeMap(a.Keywords, b.Keywords, func(x, y RawKeyword) RawKeyword {
		if y.Cost != nil {
			x.Cost = y.Cost
		}
		if y.Stackable != nil {
			x.Stackable = y.Stackable
		}
		return x
	})
	out.Effects = mergeMap(a.Effects, b.Effects, func(x, y RawEffect) RawEffect {
		if y.Base != nil {
			x.Base = y.Base
		}
		if y.Unit != nil {
			x.Unit = y.Unit
		}
		return x
	})
	out.Rarities = mergeMap(a.Rarities, b.Rarities, func(x, y RawRarity) RawRarity {
		if y.Discount != nil {
			x.Discount = y.Discount
		}
		if y.Color != "" {
			x.Color = y.Color
		}
		return x
	})
	return out
}

// mergeMap copies a and lays b over it. With a nil combine, b's value
// replaces a's outright.
func mergeMap[K comparable, V any](a, b map[K]V, combine func(V, V) V) map[K]V {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := maps.Clone(a)
	if out == nil {
		out = make(map[K]V, len(b))
	}
	for k, v := range b {
		if prev, ok := out[k]; ok && combine != nil {
			out[k] = combine(prev, v)
			continue
		}
		out[k] = v
	}
	return out
}

// Apply validates raw against base and returns a new catalog with the
// overrides laid over base. base itself is left untouched.
func Apply(base *Catalog, raw RawOverrides) (*Catalog, error) {
	if err := ValidateOverrides(base, raw); err != nil {
		return nil, err
	}
	out := base.clone()
	if raw.Version != "" {
		out.version = raw.Version
	}

	if rb := raw.Balance; rb != nil {
		b := &out.balance
		setIf(&b.VPPerMana, rb.VPPerMana)
		setIf(&b.BaseCardVP, rb.BaseCardVP)
		setIf(&b.MinMana, rb.MinMana)
		setIf(&b.MaxMana, rb.MaxMana)
		setIf(&b.AttackUnit, rb.AttackUnit)
		setIf(&b.HealthUnit, rb.HealthUnit)
		if b.MaxMana < b.MinMana {
			return nil, fmt.Errorf("catalog validation failed: balance.max_mana (%d) < balance.min_mana (%d)", b.MaxMana, b.MinMana)
		}
	}

	for id, m := range raw.CardTypes {
		d, _ := out.cardTypes.get(id)
		d.Modifier = m
		out.cardTypes.replace(d)
	}
	for id, m := range raw.Triggers {
		t, _ := out.triggers.get(id)
		t.Multiplier = m
		out.triggers.replace(t)
	}
	for id, m := range raw.Targets {
		t, _ := out.targets.get(id)
		t.Multiplier = m
		out.targets.replace(t)
	}
	for id, m := range raw.Conditions {
		cd, _ := out.conditions.get(id)
		cd.Multiplier = m
		out.conditions.replace(cd)
	}
	for id, rk := range raw.Keywords {
		k, _ := out.keywords.get(id)
		setIf(&k.Cost, rk.Cost)
		setIf(&k.Stackable, rk.Stackable)
		out.keywords.replace(k)
	}
	for id, re := range raw.Effects {
		e, _ := out.effects.get(id)
		setIf(&e.Base, re.Base)
		setIf(&e.Unit, re.Unit)
		out.effects.replace(e)
	}
	for id, rr := range raw.Rarities {
		r, _ := out.rarities.get(id)
		setIf(&r.Discount, rr.Discount)
		if rr.Color != "" {
			r.Color = rr.Color
		}
		out.rarities.replace(r)
	}
	return out, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
