package catalog

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateOverrides checks semantic constraints of raw against the tables
// in base. All problems are reported together.
func ValidateOverrides(base *Catalog, raw RawOverrides) error {
	var errs []string

	// balance
	if b := raw.Balance; b != nil {
		if b.VPPerMana != nil && *b.VPPerMana <= 0 {
			errs = append(errs, "balance.vp_per_mana must be > 0")
		}
		if b.BaseCardVP != nil && *b.BaseCardVP < 0 {
			errs = append(errs, "balance.base_card_vp must be >= 0")
		}
		if b.MinMana != nil && *b.MinMana < 0 {
			errs = append(errs, "balance.min_mana must be >= 0")
		}
		if b.MaxMana != nil && *b.MaxMana < 1 {
			errs = append(errs, "balance.max_mana must be >= 1")
		}
		if b.MinMana != nil && b.MaxMana != nil && *b.MaxMana < *b.MinMana {
			errs = append(errs, "balance.max_mana must be >= balance.min_mana")
		}
		if b.AttackUnit != nil && *b.AttackUnit < 0 {
			errs = append(errs, "balance.attack_unit must be >= 0")
		}
		if b.HealthUnit != nil && *b.HealthUnit < 0 {
			errs = append(errs, "balance.health_unit must be >= 0")
		}
	}

	for _, id := range sortedKeys(raw.CardTypes) {
		if _, ok := base.CardType(id); !ok {
			errs = append(errs, fmt.Sprintf("card_types.%s: unknown card type", id))
		} else if raw.CardTypes[id] <= 0 {
			errs = append(errs, fmt.Sprintf("card_types.%s must be > 0", id))
		}
	}
	for _, id := range sortedKeys(raw.Triggers) {
		if _, ok := base.Trigger(id); !ok {
			errs = append(errs, fmt.Sprintf("triggers.%s: unknown trigger", id))
		} else if raw.Triggers[id] <= 0 {
			errs = append(errs, fmt.Sprintf("triggers.%s must be > 0", id))
		}
	}
	for _, id := range sortedKeys(raw.Targets) {
		if _, ok := base.Target(id); !ok {
			errs = append(errs, fmt.Sprintf("targets.%s: unknown target", id))
		} else if raw.Targets[id] <= 0 {
			errs = append(errs, fmt.Sprintf("targets.%s must be > 0", id))
		}
	}
	for _, id := range sortedKeys(raw.Conditions) {
		if _, ok := base.Condition(id); !ok {
			errs = append(errs, fmt.Sprintf("conditions.%s: unknown condition", id))
		} else if raw.Conditions[id] <= 0 {
			errs = append(errs, fmt.Sprintf("conditions.%s must be > 0", id))
		}
	}
	for _, id := range sortedKeys(raw.Keywords) {
		k := raw.Keywords[id]
		if _, ok := base.Keyword(id); !ok {
			errs = append(errs, fmt.Sprintf("keywords.%s: unknown keyword", id))
		} else if k.Cost != nil && *k.Cost < 0 {
			errs = append(errs, fmt.Sprintf("keywords.%s.cost must be >= 0", id))
		}
	}
	for _, id := range sortedKeys(raw.Effects) {
		e := raw.Effects[id]
		if _, ok := base.Effect(id); !ok {
			errs = append(errs, fmt.Sprintf("effects.%s: unknown effect", id))
			continue
		}
		if e.Base != nil && *e.Base < 0 {
			errs = append(errs, fmt.Sprintf("effects.%s.base must be >= 0", id))
		}
		if e.Unit != nil && *e.Unit < 0 {
			errs = append(errs, fmt.Sprintf("effects.%s.unit must be >= 0", id))
		}
	}
	for _, id := range sortedKeys(raw.Rarities) {
		r := raw.Rarities[id]
		if _, ok := base.Rarity(id); !ok {
			errs = append(errs, fmt.Sprintf("rarities.%s: unknown rarity", id))
			continue
		}
		if r.Discount != nil && *r.Discount < 0 {
			errs = append(errs, fmt.Sprintf("rarities.%s.discount must be >= 0", id))
		}
		if r.Color != "" && !hexColor.MatchString(r.Color) {
			errs = append(errs, fmt.Sprintf("rarities.%s.color must look like #rrggbb", id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// map order is random; sort so the error text is stable
func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
