package i18n

import "sync"

// Resolver holds the active language for a caller (a server instance, a
// websocket session) and translates records and UI keys with it.
type Resolver struct {
	mu   sync.RWMutex
	lang Lang
}

// NewResolver starts on lang, or on Default if lang is unsupported.
func NewResolver(lang Lang) *Resolver {
	if _, ok := Parse(string(lang)); !ok {
		lang = Default
	}
	return &Resolver{lang: lang}
}

// Code returns the active language.
func (r *Resolver) Code() Lang {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

// SetLanguage switches the active language. Unknown codes are rejected and
// leave the current language unchanged.
func (r *Resolver) SetLanguage(code string) error {
	lang, ok := Parse(code)
	if !ok {
		return ErrUnsupportedLanguage
	}
	r.mu.Lock()
	r.lang = lang
	r.mu.Unlock()
	return nil
}

// Toggle flips between English and Spanish and returns the new language.
func (r *Resolver) Toggle() Lang {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lang == EN {
		r.lang = ES
	} else {
		r.lang = EN
	}
	return r.lang
}

// Translate resolves a bilingual record in the active language.
func (r *Resolver) Translate(t Text) string {
	return Resolve(t, r.Code())
}

// UI looks up a static interface string in the active language.
func (r *Resolver) UI(key string) string {
	return UIText(key, r.Code())
}
