package validate

import (
	"sanad/internal/form"
	"sanad/internal/i18n"
)

// ResolvedError pairs a validation failure's stable key with localized
// display text.
type ResolvedError struct {
	Key     string
	Message string
}

// Resolver wraps the raw schema so every failure's message key passes
// through a translation function before it reaches the UI. The schema stays
// language-agnostic; only the resolver re-renders when the language changes.
type Resolver struct {
	t i18n.TranslateFunc
}

// NewResolver builds a resolver over the given translation function.
func NewResolver(t i18n.TranslateFunc) *Resolver {
	return &Resolver{t: t}
}

// SetTranslator swaps the translation function, e.g. on language change.
func (r *Resolver) SetTranslator(t i18n.TranslateFunc) {
	r.t = t
}

// translate resolves a key, falling back to the raw key when the lookup
// misses (bracket-wrapped or empty result) or the translator panics.
func (r *Resolver) translate(key string) (msg string) {
	defer func() {
		if recover() != nil {
			msg = key
		}
	}()
	if r.t == nil {
		return key
	}
	v := r.t(key)
	if v == "" || (len(v) > 0 && v[0] == '[') {
		return key
	}
	return v
}

// Resolve localizes a list of field errors into a field-keyed map.
// Exactly one entry per field; the first error for a field wins.
func (r *Resolver) Resolve(errs []FieldError) map[form.Field]ResolvedError {
	out := make(map[form.Field]ResolvedError, len(errs))
	for _, e := range errs {
		if _, seen := out[e.Field]; seen {
			continue
		}
		out[e.Field] = ResolvedError{Key: e.Key, Message: r.translate(e.Key)}
	}
	return out
}

// ValidateFields validates the subset and resolves the failures in one call.
func (r *Resolver) ValidateFields(values *form.SubmissionForm, fields []form.Field) map[form.Field]ResolvedError {
	return r.Resolve(Fields(values, fields))
}

// ValidateStep validates one step and resolves the failures.
func (r *Resolver) ValidateStep(values *form.SubmissionForm, step form.Step) map[form.Field]ResolvedError {
	return r.Resolve(Step(values, step))
}

// ValidateFull validates the whole form and resolves the failures.
func (r *Resolver) ValidateFull(values *form.SubmissionForm) map[form.Field]ResolvedError {
	return r.Resolve(Full(values))
}
