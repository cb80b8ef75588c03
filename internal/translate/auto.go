package translate

import (
	"context"
	"sync"

	"sanad/internal/form"
	"sanad/internal/i18n"
	"sanad/internal/logging"
)

// Translator converts text toward a target language, passing the original
// through on any failure.
type Translator interface {
	Translate(ctx context.Context, text string, target i18n.Lang) string
}

// NarrativeFields are the free-text fields translated on language switch,
// in the order they are processed.
var NarrativeFields = []form.Field{
	form.FieldFinancialSituation,
	form.FieldEmploymentCircumstance,
	form.FieldReasonForApplying,
}

// AutoTranslator re-renders the narrative fields when the UI language
// changes. The first activation is skipped so that initial hydration does
// not trigger a translation pass; a newer activation cancels the run in
// flight and its remaining results are discarded.
type AutoTranslator struct {
	svc Translator

	mu          sync.Mutex
	first       bool
	translating bool
	gen         int
	cancel      context.CancelFunc
}

// NewAutoTranslator builds an AutoTranslator around svc.
func NewAutoTranslator(svc Translator) *AutoTranslator {
	return &AutoTranslator{svc: svc, first: true}
}

// Translating reports whether a translation pass is running.
func (a *AutoTranslator) Translating() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.translating
}

// OnLanguageChange starts an asynchronous translation pass toward target.
// get reads the current value of a field and apply writes a translated one;
// both are invoked from the worker goroutine. Returns false when the pass
// was skipped (first activation).
func (a *AutoTranslator) OnLanguageChange(target i18n.Lang, get func(form.Field) string, apply func(form.Field, string)) bool {
	a.mu.Lock()
	if a.first {
		a.first = false
		a.mu.Unlock()
		return false
	}
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.gen++
	myGen := a.gen
	a.translating = true
	a.mu.Unlock()

	go func() {
		defer a.finish(myGen)
		a.run(ctx, myGen, target, get, apply)
	}()
	return true
}

// RunSync is the synchronous variant for callers that own their event loop:
// the pass runs to completion before returning. The first-activation skip
// and generation bookkeeping behave as in OnLanguageChange.
func (a *AutoTranslator) RunSync(ctx context.Context, target i18n.Lang, get func(form.Field) string, apply func(form.Field, string)) bool {
	a.mu.Lock()
	if a.first {
		a.first = false
		a.mu.Unlock()
		return false
	}
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.gen++
	myGen := a.gen
	a.translating = true
	a.mu.Unlock()

	defer a.finish(myGen)
	a.run(ctx, myGen, target, get, apply)
	return true
}

func (a *AutoTranslator) run(ctx context.Context, gen int, target i18n.Lang, get func(form.Field) string, apply func(form.Field, string)) {
	for _, field := range NarrativeFields {
		if ctx.Err() != nil {
			return
		}
		current := get(field)
		if !NeedsTranslation(current, target) {
			continue
		}
		translated := a.svc.Translate(ctx, current, target)
		if !a.current(gen) || ctx.Err() != nil {
			logging.Translate("discarding stale translation for %s", field)
			return
		}
		if translated != "" && translated != current {
			apply(field, translated)
		}
	}
}

func (a *AutoTranslator) current(gen int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen == gen
}

func (a *AutoTranslator) finish(gen int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gen == gen {
		a.translating = false
	}
}

// Stop cancels any pass in flight.
func (a *AutoTranslator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.gen++
	a.translating = false
}
