// Package translate decides when narrative text needs converting between
// English and Arabic and runs the conversion when the UI language flips.
package translate

import (
	"strings"

	"sanad/internal/i18n"
)

// IsArabicText reports whether s contains any Arabic-script characters.
// Covers the Arabic, Arabic Supplement, and Arabic Extended-A blocks.
func IsArabicText(s string) bool {
	for _, r := range s {
		if (r >= 0x0600 && r <= 0x06FF) ||
			(r >= 0x0750 && r <= 0x077F) ||
			(r >= 0x08A0 && r <= 0x08FF) {
			return true
		}
	}
	return false
}

// NeedsTranslation reports whether text should be translated toward target.
// Texts shorter than two characters are left alone.
func NeedsTranslation(text string, target i18n.Lang) bool {
	if len(strings.TrimSpace(text)) < 2 {
		return false
	}
	hasArabic := IsArabicText(text)
	if target == i18n.LangArabic {
		return !hasArabic
	}
	return hasArabic
}
