package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"sanad/internal/assist"
	"sanad/internal/form"
	"sanad/internal/i18n"
)

// assistResultMsg carries a finished draft back into the event loop.
type assistResultMsg struct {
	field form.Field
	text  string
	gen   int
}

// translatedMsg carries the results of one auto-translation pass. A pass
// superseded by a newer language toggle arrives with a stale generation and
// is dropped whole.
type translatedMsg struct {
	results map[form.Field]string
	gen     int
}

// Update is the bubbletea update loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.generating || m.translating {
			return m, cmd
		}
		return m, nil

	case assistResultMsg:
		if msg.gen != m.assistGen || m.mode != InputModeAssist {
			return m, nil
		}
		m.generating = false
		m.suggestion = msg.text
		return m, nil

	case translatedMsg:
		if msg.gen != m.translateGen {
			return m, nil
		}
		m.translating = false
		for f, text := range msg.results {
			m.ctl.SetValue(f, text)
			m.syncComponent(f)
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == InputModeAssist {
			return m.updateAssist(msg)
		}
		return m.updateForm(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.opts.Drafts.Flush()
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		if _, isArea := m.areas[m.focus]; isArea && msg.String() == "down" {
			break // arrow keys move the cursor inside a textarea
		}
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		if _, isArea := m.areas[m.focus]; isArea && msg.String() == "up" {
			break
		}
		m.moveFocus(-1)
		return m, nil

	case "enter":
		if _, isArea := m.areas[m.focus]; isArea {
			break // newline inside a textarea
		}
		return m.advance()

	case "ctrl+n":
		return m.advance()

	case "ctrl+b":
		if m.ctl.Prev() {
			m.focus = m.ctl.Focus()
			m.applyFocus()
		}
		return m, nil

	case "ctrl+l":
		return m, m.toggleLanguage()

	case "ctrl+a":
		if key, ok := assist.KeyForField(m.focus); ok && !m.translating {
			return m, m.openAssist(key)
		}
		return m, nil
	}

	return m, m.updateFocused(msg)
}

// updateFocused routes any other message to the focused component and syncs
// the edited value into the controller (which autosaves the draft).
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	if m.translating {
		if _, isArea := m.areas[m.focus]; isArea {
			return nil // narrative fields lock while a translation runs
		}
	}
	var cmd tea.Cmd
	if ti, ok := m.inputs[m.focus]; ok {
		*ti, cmd = ti.Update(msg)
		m.ctl.SetValue(m.focus, ti.Value())
		return cmd
	}
	if ta, ok := m.areas[m.focus]; ok {
		*ta, cmd = ta.Update(msg)
		m.ctl.SetValue(m.focus, ta.Value())
		return cmd
	}
	return nil
}

func (m *Model) moveFocus(delta int) {
	fields := m.stepFields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.focus = fields[idx]
	m.applyFocus()
}

// advance moves to the next step, or submits from the last one.
func (m *Model) advance() (tea.Model, tea.Cmd) {
	if m.ctl.IsLastStep() {
		m.submitErr = m.ctl.Submit()
		if m.submitErr == nil && m.submittedOK {
			m.quitting = true
			return m, tea.Quit
		}
		// Validation failed: the controller already repositioned focus.
		m.focus = m.ctl.Focus()
		m.applyFocus()
		return m, nil
	}
	m.ctl.Next()
	m.focus = m.ctl.Focus()
	m.applyFocus()
	return m, nil
}

// toggleLanguage flips the UI language, persists the choice, re-renders any
// visible errors, and kicks off a translation pass over the narrative
// fields.
func (m *Model) toggleLanguage() tea.Cmd {
	next := i18n.LangArabic
	if m.opts.Locale.Lang() == i18n.LangArabic {
		next = i18n.LangEnglish
	}
	m.opts.Locale.SetLang(next)
	if m.opts.OnSetLang != nil {
		m.opts.OnSetLang(next)
	}
	m.ctl.OnLanguageChange(m.opts.Locale.T)

	snapshot := make(map[form.Field]string, len(m.areas))
	for f := range m.areas {
		snapshot[f] = m.ctl.Value(f)
	}
	m.translating = true
	m.translateGen++
	gen := m.translateGen

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		results := make(map[form.Field]string)
		m.opts.Auto.RunSync(context.Background(), next,
			func(f form.Field) string { return snapshot[f] },
			func(f form.Field, text string) { results[f] = text },
		)
		return translatedMsg{results: results, gen: gen}
	})
}

func (m *Model) syncComponent(f form.Field) {
	if ti, ok := m.inputs[f]; ok {
		ti.SetValue(m.ctl.Value(f))
	}
	if ta, ok := m.areas[f]; ok {
		ta.SetValue(m.ctl.Value(f))
	}
}
