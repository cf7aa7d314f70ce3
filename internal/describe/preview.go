package describe

import (
	"github.com/xtding233/cardforge/internal/balance"
	"github.com/xtding233/cardforge/internal/card"
	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/i18n"
)

// Preview bundles everything the editor shows for one card.
type Preview struct {
	Language     i18n.Lang      `json:"language"`
	Card         card.CardDoc   `json:"card"`
	Report       balance.Report `json:"report"`
	RulesText    string         `json:"rulesText"`
	KeywordsLine string         `json:"keywordsLine"`
	Abilities    []string       `json:"abilities"`
	BalanceLog   string         `json:"balanceLog"`
}

// Render prices c and renders all of its text in lang.
func Render(c card.Card, cat *catalog.Catalog, tribes catalog.TribeSource, lang i18n.Lang) Preview {
	r := balance.Calculate(c, cat)
	return Preview{
		Language:     lang,
		Card:         card.FromCard(c),
		Report:       r,
		RulesText:    RulesText(c, cat, tribes, lang),
		KeywordsLine: KeywordsLine(c.Keywords, cat, lang),
		Abilities:    Lines(c, cat, tribes, lang),
		BalanceLog:   BalanceLog(r, lang),
	}
}
