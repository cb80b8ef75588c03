// Package i18n owns the application language state: supported languages,
// text direction, the translation bundle, and locale-aware formatting.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang identifies a supported UI language.
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// Direction is the text direction implied by a language.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// ParseLang normalizes an arbitrary string to a supported language,
// falling back to def for anything unrecognized.
func ParseLang(s string, def Lang) Lang {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case LangEnglish:
		return LangEnglish
	case LangArabic:
		return LangArabic
	default:
		return def
	}
}

// IsSupported reports whether s names a supported language.
func IsSupported(s string) bool {
	l := Lang(strings.ToLower(strings.TrimSpace(s)))
	return l == LangEnglish || l == LangArabic
}

// Direction returns the text direction for the language.
func (l Lang) Direction() Direction {
	if l == LangArabic {
		return DirectionRTL
	}
	return DirectionLTR
}

// IsRTL reports whether the language renders right-to-left.
func (l Lang) IsRTL() bool {
	return l.Direction() == DirectionRTL
}

// Tag returns the BCP 47 tag used for locale-aware formatting.
func (l Lang) Tag() language.Tag {
	if l == LangArabic {
		return language.Arabic
	}
	return language.English
}
