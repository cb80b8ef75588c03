package i18n

import "fmt"

// TranslateFunc resolves a message key to display text. Implementations
// return the key itself (bracket-wrapped) on lookup miss and never panic.
type TranslateFunc func(key string) string

// Bundle resolves message keys against the string tables for one language,
// falling back to English, then to the bracket-wrapped key.
type Bundle struct {
	lang Lang
}

// NewBundle returns a bundle for the given language.
func NewBundle(lang Lang) *Bundle {
	return &Bundle{lang: ParseLang(string(lang), LangEnglish)}
}

// Lang returns the bundle's language.
func (b *Bundle) Lang() Lang {
	return b.lang
}

// T resolves key in the bundle's language. A miss in the language table falls
// back to the English table; a miss there yields "[key]" so missing copy is
// visible instead of silent.
func (b *Bundle) T(key string) string {
	if table, ok := tables[b.lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := tables[LangEnglish][key]; ok {
		return v
	}
	return fmt.Sprintf("[%s]", key)
}

// SafeT resolves key through t and substitutes fallback when the lookup
// missed (empty or bracket-wrapped result) or when t panics.
func SafeT(t TranslateFunc, key, fallback string) (out string) {
	defer func() {
		if recover() != nil {
			out = fallback
		}
	}()
	v := t(key)
	if v == "" || (len(v) > 0 && v[0] == '[') {
		return fallback
	}
	return v
}
