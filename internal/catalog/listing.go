package catalog

import "github.com/xtding233/cardforge/internal/i18n"

// Option is one resolved catalog entry as a picker shows it. Value carries
// the entry's pricing number: multiplier, cost, discount or type modifier.
type Option struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Value       float64 `json:"value"`
	Group       string  `json:"group,omitempty"`
	Color       string  `json:"color,omitempty"`
	Stackable   bool    `json:"stackable,omitempty"`
	Selection   bool    `json:"requiresSelection,omitempty"`
}

type EffectOption struct {
	Option
	Base                  float64 `json:"base"`
	Unit                  float64 `json:"unit"`
	Input                 string  `json:"input"`
	Label                 string  `json:"label,omitempty"`
	RequiresValue         bool    `json:"requiresValue,omitempty"`
	RequiresStats         bool    `json:"requiresStats,omitempty"`
	RequiresKeywordSelect bool    `json:"requiresKeywordSelect,omitempty"`
	RequiresTribeSelect   bool    `json:"requiresTribeSelect,omitempty"`
	RequiresTokenName     bool    `json:"requiresTokenName,omitempty"`
}

// Listing is every table in display order with names resolved for one
// language.
type Listing struct {
	Language   i18n.Lang      `json:"language"`
	Version    string         `json:"version"`
	Balance    Balance        `json:"balance"`
	CardTypes  []Option       `json:"cardTypes"`
	Rarities   []Option       `json:"rarities"`
	Keywords   []Option       `json:"keywords"`
	Triggers   []Option       `json:"triggers"`
	Targets    []Option       `json:"targets"`
	Conditions []Option       `json:"conditions"`
	Effects    []EffectOption `json:"effects"`
}

func group(tribal bool, lang i18n.Lang) string {
	if tribal {
		return i18n.UIText("ui_ab_grp_tribal", lang)
	}
	return i18n.UIText("ui_ab_grp_generic", lang)
}

// Listing resolves the catalog for lang.
func (c *Catalog) Listing(lang i18n.Lang) Listing {
	l := Listing{Language: lang, Version: c.version, Balance: c.balance}

	for _, d := range c.CardTypes() {
		l.CardTypes = append(l.CardTypes, Option{
			ID: string(d.ID), Name: i18n.Resolve(d.Name, lang),
			Description: i18n.Resolve(d.Description, lang), Value: d.Modifier,
		})
	}
	for _, r := range c.Rarities() {
		l.Rarities = append(l.Rarities, Option{
			ID: string(r.ID), Name: i18n.Resolve(r.Name, lang), Value: r.Discount, Color: r.Color,
		})
	}
	for _, k := range c.Keywords() {
		l.Keywords = append(l.Keywords, Option{
			ID: string(k.ID), Name: i18n.Resolve(k.Name, lang),
			Description: i18n.Resolve(k.Description, lang), Value: k.Cost, Stackable: k.Stackable,
		})
	}
	for _, t := range c.Triggers() {
		l.Triggers = append(l.Triggers, Option{
			ID: string(t.ID), Name: i18n.Resolve(t.Name, lang),
			Description: i18n.Resolve(t.Description, lang), Value: t.Multiplier,
		})
	}
	for _, t := range c.Targets() {
		l.Targets = append(l.Targets, Option{
			ID: string(t.ID), Name: i18n.Resolve(t.Name, lang), Value: t.Multiplier,
			Group: group(t.Tribal, lang), Selection: t.RequiresSelection,
		})
	}
	for _, cd := range c.Conditions() {
		name := i18n.Resolve(cd.Name, lang)
		if cd.ID == ConditionNone {
			name = i18n.UIText("ui_ab_opt_none", lang)
		}
		l.Conditions = append(l.Conditions, Option{
			ID: string(cd.ID), Name: name, Value: cd.Multiplier, Group: group(cd.Tribal, lang),
		})
	}
	for _, e := range c.Effects() {
		l.Effects = append(l.Effects, EffectOption{
			Option: Option{
				ID: string(e.ID), Name: i18n.Resolve(e.Name, lang), Value: e.Base,
				Group: group(e.Tribal, lang),
			},
			Base:                  e.Base,
			Unit:                  e.Unit,
			Input:                 e.Input.String(),
			Label:                 e.Label,
			RequiresValue:         e.RequiresValue(),
			RequiresStats:         e.RequiresStats(),
			RequiresKeywordSelect: e.RequiresKeywordSelect(),
			RequiresTribeSelect:   e.RequiresTribeSelect(),
			RequiresTokenName:     e.RequiresTokenName(),
		})
	}
	return l
}
