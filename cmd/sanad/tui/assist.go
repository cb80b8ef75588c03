package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"sanad/internal/assist"
	"sanad/internal/form"
)

// openAssist enters the suggestion dialog for the focused narrative field
// and starts a draft.
func (m *Model) openAssist(key assist.FieldKey) tea.Cmd {
	m.mode = InputModeAssist
	m.assistField = m.focus
	m.assistKey = key
	m.suggestion = ""
	return tea.Batch(m.spinner.Tick, m.generateCmd())
}

func (m *Model) generateCmd() tea.Cmd {
	m.generating = true
	m.assistGen++
	gen := m.assistGen

	if m.assistCancel != nil {
		m.assistCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.assistCancel = cancel

	values := m.ctl.Values()
	req := assist.Request{
		FieldKey:    m.assistKey,
		Application: values.ApplicationState(),
		Language:    m.opts.Locale.Lang(),
		SourceText:  m.ctl.Value(m.assistField),
	}
	field := m.assistField

	return func() tea.Msg {
		defer cancel()
		return assistResultMsg{
			field: field,
			text:  m.opts.Assist.Generate(ctx, req),
			gen:   gen,
		}
	}
}

func (m *Model) updateAssist(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.closeAssist()
		m.quitting = true
		return m, tea.Quit

	case "esc", "d":
		// Discard: the field keeps its current text.
		m.closeAssist()
		return m, nil

	case "r":
		if m.generating {
			return m, nil
		}
		return m, tea.Batch(m.spinner.Tick, m.generateCmd())

	case "enter", "i":
		if m.generating || m.suggestion == "" {
			return m, nil
		}
		m.ctl.SetValue(m.assistField, m.suggestion)
		m.syncComponent(m.assistField)
		m.closeAssist()
		return m, nil
	}
	return m, nil
}

// closeAssist cancels any in-flight draft and returns to the form. A result
// arriving afterwards carries a stale generation and is dropped.
func (m *Model) closeAssist() {
	if m.assistCancel != nil {
		m.assistCancel()
		m.assistCancel = nil
	}
	m.assistGen++
	m.generating = false
	m.suggestion = ""
	m.mode = InputModeForm
	m.assistField = form.Field("")
}
