// Package locale resolves raw bilingual content documents down to a single
// display language. A localized value is any map whose key set is exactly the
// two supported language codes; Resolve unwraps those wherever they appear.
package locale

import "strings"

// Language selects which branch of a localized value is shown. It is a
// runtime setting threaded through as an explicit parameter, never ambient
// state, and it is not persisted with any section document.
type Language string

const (
	English    Language = "en"
	Indonesian Language = "id"
)

// DefaultLanguage is the fallback when a requested language is unknown.
const DefaultLanguage = English

// Languages lists the supported codes in canonical order.
func Languages() []Language {
	return []Language{English, Indonesian}
}

// Parse normalises a raw language code, falling back to English.
func Parse(raw string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case English:
		return English
	case Indonesian:
		return Indonesian
	default:
		return DefaultLanguage
	}
}

// Valid reports whether lang is one of the supported codes.
func (l Language) Valid() bool {
	return l == English || l == Indonesian
}

// IsLocalized reports whether value is shaped as a localized container: a map
// with exactly the two supported language keys. A map that coincidentally uses
// those key names for other semantics is indistinguishable and will be
// unwrapped; that is a documented constraint of the schema convention.
func IsLocalized(value map[string]any) bool {
	if len(value) != 2 {
		return false
	}
	_, hasEN := value[string(English)]
	_, hasID := value[string(Indonesian)]
	return hasEN && hasID
}

// Resolve walks an arbitrary decoded JSON value and replaces every localized
// container with its branch for lang, recursing through maps and slices.
// The input is never mutated and the result contains no localized containers,
// so Resolve is idempotent over its own output.
func Resolve(value any, lang Language) any {
	if !lang.Valid() {
		lang = DefaultLanguage
	}
	return resolve(value, lang)
}

func resolve(value any, lang Language) any {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		if IsLocalized(v) {
			// Unwrap one level and keep resolving: localized values nested
			// inside localized values should not occur in well-formed data,
			// but resolving through them is harmless.
			return resolve(v[string(lang)], lang)
		}
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = resolve(item, lang)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = resolve(item, lang)
		}
		return out
	default:
		return value
	}
}
