// types.go
package catalog

import "github.com/xtding233/cardforge/internal/i18n"

// Typed ids, one per table. Abilities and cards store ids, never entries, so a
// table change (or a deleted tribe) is picked up on the next lookup.
type (
	TriggerID   string
	TargetID    string
	ConditionID string
	EffectID    string
	KeywordID   string
	RarityID    string
	CardType    string
	TribeID     string
)

// Balance holds the global constants of the value-point economy.
type Balance struct {
	VPPerMana  float64 `json:"vpPerMana" yaml:"vp_per_mana"`
	BaseCardVP float64 `json:"baseCardVP" yaml:"base_card_vp"`
	MinMana    int     `json:"minMana" yaml:"min_mana"`
	MaxMana    int     `json:"maxMana" yaml:"max_mana"`
	AttackUnit float64 `json:"attackUnit" yaml:"attack_unit"`
	HealthUnit float64 `json:"healthUnit" yaml:"health_unit"`
}

// InputKind says which auxiliary input an effect needs from the ability.
type InputKind uint8

const (
	InputNone    InputKind = iota // destroy, silence, ...
	InputValue                    // a magnitude (damage, cards drawn)
	InputStats                    // an attack+health sum (buffs, weapons)
	InputKeyword                  // a keyword id
	InputTribe                    // a tribe id
	InputToken                    // token name and stats
)

func (k InputKind) String() string {
	switch k {
	case InputValue:
		return "value"
	case InputStats:
		return "stats"
	case InputKeyword:
		return "keyword"
	case InputTribe:
		return "tribe"
	case InputToken:
		return "token"
	default:
		return "none"
	}
}

type Trigger struct {
	ID          TriggerID
	Name        i18n.Text
	Description i18n.Text
	Multiplier  float64
}

type Target struct {
	ID                TargetID
	Name              i18n.Text
	Multiplier        float64
	RequiresSelection bool
	Tribal            bool
}

type Condition struct {
	ID         ConditionID
	Name       i18n.Text
	Multiplier float64
	Tribal     bool
}

// Effect is the action an ability performs. Its raw cost is
// Base + Unit*magnitude, except where Input or SelfCopy say otherwise.
type Effect struct {
	ID       EffectID
	Name     i18n.Text
	Base     float64
	Unit     float64
	Input    InputKind
	SelfCopy bool
	Tribal   bool
	Label    string
}

func (e Effect) RequiresValue() bool { return e.Input == InputValue }
func (e Effect) RequiresStats() bool { return e.Input == InputStats }
func (e Effect) RequiresKeywordSelect() bool { return e.Input == InputKeyword }
func (e Effect) RequiresTribeSelect() bool { return e.Input == InputTribe }
func (e Effect) RequiresTokenName() bool { return e.Input == InputToken }

type Keyword struct {
	ID          KeywordID
	Name        i18n.Text
	Description i18n.Text
	Cost        float64
	// Stackable keywords carry a count (Spell Damage +2) and cost Cost per point.
	Stackable bool
}

type Rarity struct {
	ID       RarityID
	Name     i18n.Text
	Discount float64
	Color    string
}

type CardTypeDef struct {
	ID          CardType
	Name        i18n.Text
	Description i18n.Text
	Modifier    float64
	HasStats    bool
	// UI dictionary key for the second stat (health or durability).
	HealthLabel string
}

// Tribe is a user-editable faction tag. The table lives in the tribes
// registry; the engines reach it through TribeSource.
type Tribe struct {
	ID          TribeID   `json:"id" yaml:"id"`
	Name        i18n.Text `json:"name" yaml:"name"`
	Color       string    `json:"color" yaml:"color"`
	Description i18n.Text `json:"description,omitempty" yaml:"description,omitempty"`
}

// TribeSource resolves tribe ids against the live tribe table.
type TribeSource interface {
	Tribe(id TribeID) (Tribe, bool)
}

func (t Trigger) key() TriggerID { return t.ID }
func (t Target) key() TargetID { return t.ID }
func (c Condition) key() ConditionID { return c.ID }
func (e Effect) key() EffectID { return e.ID }
func (k Keyword) key() KeywordID { return k.ID }
func (r Rarity) key() RarityID { return r.ID }
func (d CardTypeDef) key() CardType { return d.ID }
func (t Trigger) multiplier() float64 { return t.Multiplier }
func (t Target) multiplier() float64 { return t.Multiplier }
func (c Condition) multiplier() float64 { return c.Multiplier }
