package catalog

import "sync"

type entry[K ~string] interface {
	key() K
}

// table keeps entries in display order with an index by id.
type table[K ~string, V entry[K]] struct {
	order []K
	byID  map[K]V
}

func newTable[K ~string, V entry[K]](entries []V) table[K, V] {
	t := table[K, V]{
		order: make([]K, 0, len(entries)),
		byID:  make(map[K]V, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.byID[e.key()]; !dup {
			t.order = append(t.order, e.key())
		}
		t.byID[e.key()] = e
	}
	return t
}

func (t table[K, V]) get(id K) (V, bool) {
	v, ok := t.byID[id]
	return v, ok
}

func (t table[K, V]) list() []V {
	out := make([]V, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

func (t table[K, V]) clone() table[K, V] {
	return newTable[K, V](t.list())
}

// replace swaps an existing entry; unknown ids are ignored.
func (t *table[K, V]) replace(v V) {
	if _, ok := t.byID[v.key()]; ok {
		t.byID[v.key()] = v
	}
}

// lookup is the one soft-fail path: an unknown id yields fallback.
func lookup[K ~string, V entry[K], R any](t table[K, V], id K, pick func(V) R, fallback R) R {
	v, ok := t.get(id)
	if !ok {
		return fallback
	}
	return pick(v)
}

func multiplierOf[V interface{ multiplier() float64 }](v V) float64 { return v.multiplier() }

// Catalog is an immutable set of rule tables plus the balance constants.
// Build one with Default or Apply; it is safe for concurrent reads.
type Catalog struct {
	version string
	balance Balance

	triggers   table[TriggerID, Trigger]
	targets    table[TargetID, Target]
	conditions table[ConditionID, Condition]
	effects    table[EffectID, Effect]
	keywords   table[KeywordID, Keyword]
	rarities   table[RarityID, Rarity]
	cardTypes  table[CardType, CardTypeDef]
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in catalog. The value is shared; it is never
// modified after construction.
func Default() *Catalog {
	defaultOnce.Do(func() {
		conds := append(append([]Condition(nil), defaultGenericConditions...), defaultTribalConditions...)
		defaultCat = &Catalog{
			version:    "builtin",
			balance:    DefaultBalance,
			triggers:   newTable[TriggerID](defaultTriggers),
			targets:    newTable[TargetID](defaultTargets),
			conditions: newTable[ConditionID](conds),
			effects:    newTable[EffectID](defaultEffects),
			keywords:   newTable[KeywordID](defaultKeywords),
			rarities:   newTable[RarityID](defaultRarities),
			cardTypes:  newTable[CardType](defaultCardTypes),
		}
	})
	return defaultCat
}

func (c *Catalog) clone() *Catalog {
	return &Catalog{
		version:    c.version,
		balance:    c.balance,
		triggers:   c.triggers.clone(),
		targets:    c.targets.clone(),
		conditions: c.conditions.clone(),
		effects:    c.effects.clone(),
		keywords:   c.keywords.clone(),
		rarities:   c.rarities.clone(),
		cardTypes:  c.cardTypes.clone(),
	}
}

// Version identifies the overrides the catalog was built from.
func (c *Catalog) Version() string { return c.version }

func (c *Catalog) Balance() Balance { return c.balance }

func (c *Catalog) Trigger(id TriggerID) (Trigger, bool) { return c.triggers.get(id) }
func (c *Catalog) Target(id TargetID) (Target, bool) { return c.targets.get(id) }
func (c *Catalog) Effect(id EffectID) (Effect, bool) { return c.effects.get(id) }
func (c *Catalog) Keyword(id KeywordID) (Keyword, bool) { return c.keywords.get(id) }
func (c *Catalog) Rarity(id RarityID) (Rarity, bool) { return c.rarities.get(id) }
func (c *Catalog) CardType(id CardType) (CardTypeDef, bool) { return c.cardTypes.get(id) }
func (c *Catalog) Condition(id ConditionID) (Condition, bool) { return c.conditions.get(id) }

func (c *Catalog) Triggers() []Trigger { return c.triggers.list() }
func (c *Catalog) Targets() []Target { return c.targets.list() }
func (c *Catalog) Conditions() []Condition { return c.conditions.list() }
func (c *Catalog) Effects() []Effect { return c.effects.list() }
func (c *Catalog) Keywords() []Keyword { return c.keywords.list() }
func (c *Catalog) Rarities() []Rarity { return c.rarities.list() }
func (c *Catalog) CardTypes() []CardTypeDef { return c.cardTypes.list() }

// TriggerMultiplier is 1.0 for unknown or empty ids, as are the target and
// condition variants.
func (c *Catalog) TriggerMultiplier(id TriggerID) float64 {
	return lookup(c.triggers, id, multiplierOf[Trigger], 1.0)
}

func (c *Catalog) TargetMultiplier(id TargetID) float64 {
	return lookup(c.targets, id, multiplierOf[Target], 1.0)
}

func (c *Catalog) ConditionMultiplier(id ConditionID) float64 {
	return lookup(c.conditions, id, multiplierOf[Condition], 1.0)
}

// KeywordCost is the flat cost of one point of a keyword; 0 when unknown.
func (c *Catalog) KeywordCost(id KeywordID) float64 {
	return lookup(c.keywords, id, func(k Keyword) float64 { return k.Cost }, 0)
}

func (c *Catalog) RarityDiscount(id RarityID) float64 {
	return lookup(c.rarities, id, func(r Rarity) float64 { return r.Discount }, 0)
}

func (c *Catalog) TypeModifier(id CardType) float64 {
	return lookup(c.cardTypes, id, func(d CardTypeDef) float64 { return d.Modifier }, 1.0)
}
