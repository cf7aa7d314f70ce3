package card

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/xtding233/cardforge/internal/catalog"
)

// ParseExport reads a card saved by the editor's "Save JSON" button. The
// export is looser than CardDoc: keywords are {"taunt": true} or
// {"spell_damage": 2}, numbers may arrive as strings, and unrelated fields
// (image data URLs) are ignored.
func ParseExport(data []byte, cat *catalog.Catalog) (Card, error) {
	if !gjson.ValidBytes(data) {
		return Card{}, fmt.Errorf("%w: not valid JSON", ErrInvalidDocument)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Card{}, fmt.Errorf("%w: top level must be an object", ErrInvalidDocument)
	}

	d := CardDoc{
		Name:       root.Get("name").String(),
		Type:       root.Get("type").String(),
		Rarity:     root.Get("rarity").String(),
		Tribe:      root.Get("tribe").String(),
		FlavorText: root.Get("flavorText").String(),
		Stats: Stats{
			Attack: int(root.Get("stats.attack").Int()),
			Health: int(root.Get("stats.health").Int()),
		},
	}
	if d.Type == "" {
		d.Type = string(catalog.Minion)
	}

	kw := root.Get("keywords")
	if kw.IsObject() {
		d.Keywords = map[string]int{}
		kw.ForEach(func(k, v gjson.Result) bool {
			if n := keywordCount(v); n > 0 {
				d.Keywords[k.String()] = n
			}
			return true
		})
	} else if kw.IsArray() {
		d.Keywords = map[string]int{}
		kw.ForEach(func(_, v gjson.Result) bool {
			d.Keywords[v.String()]++
			return true
		})
	}

	root.Get("abilities").ForEach(func(_, v gjson.Result) bool {
		d.Abilities = append(d.Abilities, parseAbility(v))
		return true
	})
	return d.Build(cat)
}

func keywordCount(v gjson.Result) int {
	switch v.Type {
	case gjson.True:
		return 1
	case gjson.Number, gjson.String:
		return int(v.Int())
	}
	return 0
}

func parseAbility(v gjson.Result) AbilityDoc {
	a := AbilityDoc{
		FlavorName:     v.Get("flavorName").String(),
		Trigger:        v.Get("trigger").String(),
		Condition:      v.Get("condition").String(),
		ConditionParam: v.Get("conditionParam").String(),
		Effect:         v.Get("effect").String(),
		Value:          int(v.Get("value").Int()),
		Keyword:        v.Get("keyword").String(),
		EffectTribe:    v.Get("effectTribe").String(),
		Target:         v.Get("target").String(),
		TargetParam:    v.Get("targetParam").String(),
	}
	if tok := v.Get("tokenData"); tok.IsObject() {
		a.TokenData = &TokenDoc{
			Name:   tok.Get("name").String(),
			Attack: int(tok.Get("attack").Int()),
			Health: int(tok.Get("health").Int()),
		}
	}
	return a
}
