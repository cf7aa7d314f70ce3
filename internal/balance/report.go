package balance

// Breakdown itemizes where a card's value points came from.
type Breakdown struct {
	Base           float64 `json:"base"`
	Stats          float64 `json:"stats"`
	Keywords       float64 `json:"keywords"`
	Abilities      float64 `json:"abilities"`
	RarityDiscount float64 `json:"rarityDiscount"`
	// TypeMod is the VP the type modifier added (positive) or removed
	// (negative), not the modifier itself.
	TypeMod float64 `json:"typeMod"`
}

// Report is the result of pricing one card.
type Report struct {
	ManaCost  int       `json:"manaCost"`
	TotalVP   float64   `json:"totalVP"`
	Breakdown Breakdown `json:"breakdown"`
	// Uncapped is floor(TotalVP / VPPerMana) before clamping.
	Uncapped int `json:"uncappedMana"`
	// Per-ability VP in card order, for the balance log.
	AbilityVP []float64 `json:"abilityVP,omitempty"`
	Warnings  []string  `json:"warnings"`
}

// Capped reports whether the mana cost hit the ceiling.
func (r Report) Capped() bool { return r.Uncapped > r.ManaCost }
