// Package stepper orchestrates the three-page application flow: step
// gating, error visibility, focus, draft autosave, and final submission.
package stepper

import (
	"sanad/internal/draft"
	"sanad/internal/form"
	"sanad/internal/i18n"
	"sanad/internal/logging"
	"sanad/internal/validate"
)

// Mode distinguishes a fresh application from editing an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Options configures a Controller.
type Options struct {
	Mode     Mode
	DraftKey string
	// Initial seeds the form, e.g. an existing submission in edit mode.
	Initial  form.SubmissionForm
	Resolver *validate.Resolver
	Drafts   *draft.Store

	// OnSubmit receives the validated form. An error keeps the draft and
	// leaves the flow on the final step.
	OnSubmit func(form.SubmissionForm) error
	// OnSubmitSuccess runs after a successful submit in every mode.
	OnSubmitSuccess func()
	// OnRedirect runs after a successful submit in create mode only.
	OnRedirect func()
}

// Controller holds the live state of one application flow.
type Controller struct {
	opts      Options
	index     int
	values    form.SubmissionForm
	errors    map[form.Field]validate.ResolvedError
	touched   map[form.Field]bool
	submitted bool
	focus     form.Field
}

// New hydrates any persisted draft over the initial values and positions
// the flow on the first step.
func New(opts Options) *Controller {
	if opts.Mode == "" {
		opts.Mode = ModeCreate
	}
	c := &Controller{
		opts:    opts,
		errors:  make(map[form.Field]validate.ResolvedError),
		touched: make(map[form.Field]bool),
	}
	c.values = opts.Initial
	if opts.Drafts != nil {
		c.values = opts.Drafts.Hydrate(opts.DraftKey, opts.Initial)
	}
	c.enterStep()
	return c
}

// Step returns the active step.
func (c *Controller) Step() form.Step { return form.StepAt(c.index) }

// Index returns the zero-based active step index.
func (c *Controller) Index() int { return c.index }

// IsLastStep reports whether the flow is on the final step.
func (c *Controller) IsLastStep() bool { return c.index >= len(form.Steps)-1 }

// Values returns a copy of the current form values.
func (c *Controller) Values() form.SubmissionForm { return c.values }

// Value reads one field.
func (c *Controller) Value(f form.Field) string { return c.values.Value(f) }

// Focus returns the field that should hold input focus, if any.
func (c *Controller) Focus() form.Field { return c.focus }

// Submitted reports whether a final submit has been attempted.
func (c *Controller) Submitted() bool { return c.submitted }

// Errors returns the visible validation errors.
func (c *Controller) Errors() map[form.Field]validate.ResolvedError { return c.errors }

// Error returns the visible error for one field.
func (c *Controller) Error(f form.Field) (validate.ResolvedError, bool) {
	e, ok := c.errors[f]
	return e, ok
}

// Touched reports whether the field has been interacted with or flagged by
// a failed step validation.
func (c *Controller) Touched(f form.Field) bool { return c.touched[f] }

// SetValue updates one field, schedules a draft write, and re-validates the
// field when it already shows an error so the message clears as soon as the
// input becomes valid.
func (c *Controller) SetValue(f form.Field, v string) {
	c.values.SetValue(f, v)
	if c.opts.Drafts != nil {
		c.opts.Drafts.Persist(c.opts.DraftKey, c.values)
	}
	if _, visible := c.errors[f]; visible {
		c.revalidateField(f)
	}
}

func (c *Controller) revalidateField(f form.Field) {
	result := c.opts.Resolver.ValidateFields(&c.values, []form.Field{f})
	if err, ok := result[f]; ok {
		c.errors[f] = err
	} else {
		delete(c.errors, f)
	}
}

// enterStep clears errors for fields outside the active step and moves
// focus to its first field.
func (c *Controller) enterStep() {
	active := form.FieldsByStep[c.Step()]
	inSet := make(map[form.Field]bool, len(active))
	for _, f := range active {
		inSet[f] = true
	}
	for f := range c.errors {
		if !inSet[f] {
			delete(c.errors, f)
		}
	}
	c.focus = form.FirstField(c.Step())
	logging.StepperDebug("entered step %s", c.Step())
}

// Next validates the active step. On success it advances; on failure it
// marks the step's fields touched, shows the errors, and focuses the first
// failing field. Returns whether the step advanced.
func (c *Controller) Next() bool {
	if !c.validateStep() {
		return false
	}
	if c.IsLastStep() {
		return false
	}
	c.index++
	c.enterStep()
	return true
}

// Prev moves back one step without validating.
func (c *Controller) Prev() bool {
	if c.index == 0 {
		return false
	}
	c.index--
	c.enterStep()
	return true
}

// GoToIndex jumps to a step index, clamped to the valid range. No gating:
// callers use it for back-navigation from the step indicator.
func (c *Controller) GoToIndex(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(form.Steps) {
		i = len(form.Steps) - 1
	}
	if i == c.index {
		return
	}
	c.index = i
	c.enterStep()
}

func (c *Controller) validateStep() bool {
	step := c.Step()
	errs := c.opts.Resolver.ValidateStep(&c.values, step)
	fields := form.FieldsByStep[step]

	for f := range c.errors {
		if _, still := errs[f]; !still {
			delete(c.errors, f)
		}
	}
	for f, e := range errs {
		c.errors[f] = e
	}
	if len(errs) == 0 {
		return true
	}

	for _, f := range fields {
		c.touched[f] = true
	}
	for _, f := range fields {
		if _, bad := errs[f]; bad {
			c.focus = f
			break
		}
	}
	logging.Stepper("step %s blocked with %d error(s)", step, len(errs))
	return false
}

// OnLanguageChange swaps the resolver's translator and silently re-renders
// any visible errors in the new language. Focus does not move.
func (c *Controller) OnLanguageChange(t i18n.TranslateFunc) {
	c.opts.Resolver.SetTranslator(t)
	if len(c.errors) == 0 && !c.submitted {
		return
	}
	var errs map[form.Field]validate.ResolvedError
	if c.submitted {
		errs = c.opts.Resolver.ValidateFull(&c.values)
	} else {
		errs = c.opts.Resolver.ValidateStep(&c.values, c.Step())
	}
	visible := make(map[form.Field]validate.ResolvedError, len(c.errors))
	for f := range c.errors {
		if e, ok := errs[f]; ok {
			visible[f] = e
		}
	}
	c.errors = visible
}

// Submit runs only from the final step: it revalidates the entire form, and
// on success hands the values to OnSubmit, clears the draft, and fires the
// post-submit hooks. Returns nil only when the submission went through.
func (c *Controller) Submit() error {
	if !c.IsLastStep() {
		c.Next()
		return ErrNotLastStep
	}
	c.submitted = true

	errs := c.opts.Resolver.ValidateFull(&c.values)
	if len(errs) > 0 {
		c.errors = errs
		for f := range errs {
			c.touched[f] = true
		}
		for _, f := range form.Fields {
			if _, bad := errs[f]; bad {
				c.focus = f
				c.index = form.StepIndex(form.StepOf(f))
				break
			}
		}
		logging.Stepper("submit blocked with %d error(s)", len(errs))
		return ErrValidation
	}

	if c.opts.OnSubmit != nil {
		if err := c.opts.OnSubmit(c.values); err != nil {
			logging.Stepper("submit failed: %v", err)
			return err
		}
	}

	if c.opts.Drafts != nil {
		c.opts.Drafts.Clear(c.opts.DraftKey)
	}
	if c.opts.OnSubmitSuccess != nil {
		c.opts.OnSubmitSuccess()
	}
	if c.opts.Mode == ModeCreate && c.opts.OnRedirect != nil {
		c.opts.OnRedirect()
	}
	logging.Stepper("submitted (%s mode)", c.opts.Mode)
	return nil
}
