// Package tui renders the three-step application wizard in the terminal:
// one page per step, autosaving drafts as fields change, with AI drafting
// on the narrative fields and auto-translation on language switch.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sanad/internal/assist"
	"sanad/internal/draft"
	"sanad/internal/form"
	"sanad/internal/i18n"
	"sanad/internal/stepper"
	"sanad/internal/translate"
)

// InputMode is the wizard's input state machine.
type InputMode int

const (
	// InputModeForm is the default: keys edit the focused field.
	InputModeForm InputMode = iota
	// InputModeAssist shows the suggestion dialog for a narrative field.
	InputModeAssist
)

// Options wires the wizard to the application services.
type Options struct {
	Mode     stepper.Mode
	DraftKey string
	Initial  form.SubmissionForm
	Locale   *i18n.Locale
	Drafts   *draft.Store
	Assist   *assist.Service
	Auto     *translate.AutoTranslator

	OnSubmit  func(form.SubmissionForm) error
	OnSetLang func(i18n.Lang)
}

// Model is the bubbletea model for the wizard.
type Model struct {
	opts Options
	ctl  *stepper.Controller

	// UI components
	inputs  map[form.Field]*textinput.Model
	areas   map[form.Field]*textarea.Model
	spinner spinner.Model
	styles  Styles

	mode         InputMode
	focus        form.Field
	width        int
	height       int
	translating  bool
	translateGen int
	submittedOK  bool
	submitErr    error
	quitting     bool

	// Assist dialog state
	assistField  form.Field
	assistKey    assist.FieldKey
	suggestion   string
	generating   bool
	assistGen    int
	assistCancel context.CancelFunc
}

// New builds the wizard model. The stepper controller hydrates any saved
// draft during construction.
func New(opts Options) *Model {
	m := &Model{
		opts:    opts,
		inputs:  make(map[form.Field]*textinput.Model),
		areas:   make(map[form.Field]*textarea.Model),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  DefaultStyles(),
	}

	m.ctl = stepper.New(stepper.Options{
		Mode:     opts.Mode,
		DraftKey: opts.DraftKey,
		Initial:  opts.Initial,
		Resolver: newResolver(opts.Locale),
		Drafts:   opts.Drafts,
		OnSubmit: opts.OnSubmit,
		OnSubmitSuccess: func() {
			m.submittedOK = true
		},
	})

	for _, f := range form.Fields {
		if isNarrative(f) {
			ta := textarea.New()
			ta.SetHeight(4)
			ta.CharLimit = 2000
			ta.SetValue(m.ctl.Value(f))
			m.areas[f] = &ta
			continue
		}
		ti := textinput.New()
		ti.CharLimit = 200
		ti.SetValue(m.ctl.Value(f))
		p := &ti
		m.inputs[f] = p
	}

	m.focus = m.ctl.Focus()
	m.applyFocus()
	return m
}

// Init primes the auto-translator (its first activation is a skip, matching
// form load) and starts the spinner.
func (m *Model) Init() tea.Cmd {
	m.opts.Auto.RunSync(context.Background(), m.opts.Locale.Lang(),
		func(form.Field) string { return "" },
		func(form.Field, string) {})
	return m.spinner.Tick
}

// SubmittedOK reports whether the form was submitted successfully before
// the program exited.
func (m *Model) SubmittedOK() bool { return m.submittedOK }

func isNarrative(f form.Field) bool {
	for _, n := range translate.NarrativeFields {
		if n == f {
			return true
		}
	}
	return false
}

func (m *Model) applyFocus() {
	for f, ti := range m.inputs {
		if f == m.focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
	for f, ta := range m.areas {
		if f == m.focus {
			ta.Focus()
		} else {
			ta.Blur()
		}
	}
}

// stepFields returns the ordered fields of the active step.
func (m *Model) stepFields() []form.Field {
	return form.FieldsByStep[m.ctl.Step()]
}
