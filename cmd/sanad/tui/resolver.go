package tui

import (
	"sanad/internal/i18n"
	"sanad/internal/validate"
)

// newResolver binds the validation resolver to the live locale so error
// messages always render in the current language.
func newResolver(locale *i18n.Locale) *validate.Resolver {
	return validate.NewResolver(locale.T)
}
