// Package describe renders rules text for cards and abilities.
//
// Output is HTML-light: <b> and <i> around clauses, <br> between lines.
// Like the cost engine it never fails; unknown ids fall back to generic
// labels or drop their clause.
package describe

import (
	"strconv"
	"strings"

	"github.com/xtding233/cardforge/internal/card"
	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/i18n"
)

// Words the catalog names use as placeholders, in both languages.
var (
	tribeWords   = []string{"[Tribe]", "[Tribu]"}
	tokenWords   = []string{"Token", "Ficha"}
	keywordWords = []string{"Keyword", "Palabra Clave"}
)

// replaceFirst swaps the first placeholder found in s for repl, once.
// repl is not scanned again.
func replaceFirst(s string, olds []string, repl string) string {
	for _, old := range olds {
		if i := strings.Index(s, old); i >= 0 {
			return s[:i] + repl + s[i+len(old):]
		}
	}
	return s
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// tribeName resolves a tribe through the live table; deleted or missing
// tribes read as the generic "Tribe". tribes may be nil; a typed-nil
// source must handle a nil receiver the way *tribes.Registry does.
func tribeName(tribes catalog.TribeSource, id catalog.TribeID, lang i18n.Lang) string {
	if id != "" && tribes != nil {
		if t, ok := tribes.Tribe(id); ok {
			if s := i18n.Resolve(t.Name, lang); s != "" {
				return s
			}
		}
	}
	return i18n.UIText("ui_fallback_tribe", lang)
}

func withTribe(name string, tribes catalog.TribeSource, id catalog.TribeID, lang i18n.Lang) string {
	if !containsAny(name, tribeWords) {
		return name
	}
	return replaceFirst(name, tribeWords, tribeName(tribes, id, lang))
}

// Ability renders one ability as a sentence:
//
//	[lead-in] [(condition)] effect [to target].
func Ability(a card.Ability, cat *catalog.Catalog, tribes catalog.TribeSource, lang i18n.Lang) string {
	var sb strings.Builder
	sb.WriteString(leadIn(a, cat, lang))
	sb.WriteString(condition(a, cat, tribes, lang))
	sb.WriteString(effect(a, cat, tribes, lang))
	sb.WriteString(target(a, cat, tribes, lang))
	sb.WriteString(".")
	return sb.String()
}

func leadIn(a card.Ability, cat *catalog.Catalog, lang i18n.Lang) string {
	name := ""
	if t, ok := cat.Trigger(a.Trigger); ok {
		name = i18n.Resolve(t.Name, lang)
	}
	if name == "" {
		name = i18n.UIText("ui_fallback_ability", lang)
	}
	passive := a.Trigger == catalog.TriggerPassive

	switch {
	case a.FlavorName != "" && passive:
		return "<b>" + a.FlavorName + "</b>: "
	case a.FlavorName != "":
		return "<b>" + a.FlavorName + "</b> (" + name + "): "
	case passive:
		return ""
	default:
		return "<b>" + name + ":</b> "
	}
}

func condition(a card.Ability, cat *catalog.Catalog, tribes catalog.TribeSource, lang i18n.Lang) string {
	if !a.HasCondition() {
		return ""
	}
	c, ok := cat.Condition(a.Condition)
	if !ok {
		return ""
	}
	name := withTribe(i18n.Resolve(c.Name, lang), tribes, a.ConditionTribe, lang)
	return "<i>(" + name + ")</i> "
}

func effect(a card.Ability, cat *catalog.Catalog, tribes catalog.TribeSource, lang i18n.Lang) string {
	eff, ok := cat.Effect(a.Effect)
	if !ok {
		return i18n.UIText("ui_fallback_effect", lang)
	}
	name := i18n.Resolve(eff.Name, lang)
	value := strconv.Itoa(a.Value())

	// first match wins
	switch p := a.Payload.(type) {
	case card.TribeRef:
		if p.Tribe != "" && containsAny(name, tribeWords) {
			return replaceFirst(name, tribeWords, tribeName(tribes, p.Tribe, lang))
		}
	case card.Token:
		if eff.Input == catalog.InputToken {
			tok := strconv.Itoa(p.Attack) + "/" + strconv.Itoa(p.Health) + " " + p.Name
			return replaceFirst(name, tokenWords, tok)
		}
	case card.KeywordRef:
		if eff.Input == catalog.InputKeyword && p.Keyword != "" {
			kw := ""
			if k, ok := cat.Keyword(p.Keyword); ok {
				kw = i18n.Resolve(k.Name, lang)
			}
			if kw == "" {
				kw = i18n.UIText("ui_fallback_keyword", lang)
			}
			return replaceFirst(name, keywordWords, kw)
		}
	}
	if strings.Contains(name, "X") {
		return strings.Replace(name, "X", value, 1)
	}
	if eff.RequiresValue() {
		return name + " " + value
	}
	return name
}

func target(a card.Ability, cat *catalog.Catalog, tribes catalog.TribeSource, lang i18n.Lang) string {
	if a.Target == "" || a.Target == catalog.TargetNone {
		return ""
	}
	t, ok := cat.Target(a.Target)
	if !ok {
		return ""
	}
	prep := " to "
	if lang == i18n.ES {
		prep = " a "
	}
	return prep + withTribe(i18n.Resolve(t.Name, lang), tribes, a.TargetTribe, lang)
}
