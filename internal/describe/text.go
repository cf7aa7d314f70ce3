package describe

import (
	"strconv"
	"strings"

	"github.com/xtding233/cardforge/internal/balance"
	"github.com/xtding233/cardforge/internal/card"
	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/i18n"
)

// KeywordsLine renders the card's keywords in catalog order as
// "<b>Taunt</b> (<i>...</i>), ...". Stacks above one show "Name +N".
// Unknown keywords are skipped.
func KeywordsLine(ks card.KeywordSet, cat *catalog.Catalog, lang i18n.Lang) string {
	var parts []string
	for _, id := range ks.IDs(cat) {
		k, ok := cat.Keyword(id)
		if !ok {
			continue
		}
		name := i18n.Resolve(k.Name, lang)
		if n := ks.Count(id); k.Stackable && n > 1 {
			name += " +" + strconv.Itoa(n)
		}
		parts = append(parts, "<b>"+name+"</b> (<i>"+i18n.Resolve(k.Description, lang)+"</i>)")
	}
	return strings.Join(parts, ", ")
}

// Lines renders each ability in card order.
func Lines(c card.Card, cat *catalog.Catalog, tribes catalog.TribeSource, lang i18n.Lang) []string {
	out := make([]string, 0, len(c.Abilities))
	for _, a := range c.Abilities {
		out = append(out, Ability(a, cat, tribes, lang))
	}
	return out
}

// RulesText is the full text box: the keyword line, then one line per
// ability, separated by <br>.
func RulesText(c card.Card, cat *catalog.Catalog, tribes catalog.TribeSource, lang i18n.Lang) string {
	var lines []string
	if kw := KeywordsLine(c.Keywords, cat, lang); kw != "" {
		lines = append(lines, kw)
	}
	lines = append(lines, Lines(c, cat, tribes, lang)...)
	return strings.Join(lines, "<br>")
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func oneDecimal(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

// BalanceLog renders a report's breakdown for display. Zero parts are
// omitted, except the base.
func BalanceLog(r balance.Report, lang i18n.Lang) string {
	ui := func(key string) string { return i18n.UIText(key, lang) }
	b := r.Breakdown

	var sb strings.Builder
	sb.WriteString("<strong>" + ui("ui_log_mana") + ": " + strconv.Itoa(r.ManaCost) + "</strong><br>")
	sb.WriteString("<small>" + ui("ui_log_vp") + ": " + oneDecimal(r.TotalVP) + "</small><hr>")
	sb.WriteString(ui("ui_log_base") + ": " + num(b.Base) + "<br>")
	if b.Stats != 0 {
		sb.WriteString(ui("ui_log_stats") + ": " + num(b.Stats) + "<br>")
	}
	if b.Keywords != 0 {
		sb.WriteString(ui("ui_log_keywords") + ": " + num(b.Keywords) + "<br>")
	}
	if b.Abilities != 0 {
		sb.WriteString(ui("ui_log_abilities") + ": " + oneDecimal(b.Abilities) + "<br>")
	}
	if b.RarityDiscount != 0 {
		sb.WriteString(`<span class="discount">` + ui("ui_log_discount") + ": -" + num(b.RarityDiscount) + "</span><br>")
	}
	if b.TypeMod != 0 {
		sb.WriteString(ui("ui_log_typemod") + ": " + oneDecimal(b.TypeMod) + "<br>")
	}
	if r.Capped() {
		sb.WriteString(`<hr><span class="warning">` + ui("ui_log_capped") + " " + strconv.Itoa(r.ManaCost) + ". " +
			ui("ui_log_realcost") + ": " + strconv.Itoa(r.Uncapped) + "</span>")
	}
	return sb.String()
}
