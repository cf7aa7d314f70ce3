package i18n

import (
	"errors"
	"sort"
)

// Lang is a language code such as "en" or "es".
type Lang string

const (
	EN Lang = "en"
	ES Lang = "es"

	// Default is used when a record lacks the requested language.
	Default = EN
)

var ErrUnsupportedLanguage = errors.New("unsupported language; must be en or es")

// Supported lists the languages the catalog carries names for.
func Supported() []Lang { return []Lang{EN, ES} }

// Parse accepts a language code and reports whether it is supported.
func Parse(code string) (Lang, bool) {
	switch Lang(code) {
	case EN, ES:
		return Lang(code), true
	}
	return "", false
}

// Text is a bilingual display record, e.g. {en: "Taunt", es: "Provocar"}.
type Text map[Lang]string

// Plain wraps a single string as a default-language record.
// User-entered names (tribes) only ever have one.
func Plain(s string) Text {
	if s == "" {
		return nil
	}
	return Text{Default: s}
}

// Resolve picks the string for lang, then the default language, then any
// available value. Empty records resolve to "".
func Resolve(t Text, lang Lang) string {
	if len(t) == 0 {
		return ""
	}
	if s := t[lang]; s != "" {
		return s
	}
	if s := t[Default]; s != "" {
		return s
	}
	// map order is random; sort so the "any" fallback is stable
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s := t[Lang(k)]; s != "" {
			return s
		}
	}
	return ""
}
