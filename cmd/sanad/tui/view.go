package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sanad/internal/form"
	"sanad/internal/i18n"
)

// View renders the wizard.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderStepIndicator())
	b.WriteString("\n\n")

	if m.mode == InputModeAssist {
		b.WriteString(m.renderAssistDialog())
	} else {
		b.WriteString(m.renderFields())
	}

	if m.submitErr != nil && len(m.ctl.Errors()) == 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Could not save: %v", m.submitErr)))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.styles.Header.Render(" sanad ")
	lang := m.styles.Muted.Render(fmt.Sprintf(" [%s]", m.opts.Locale.Lang()))

	var status string
	switch {
	case m.translating:
		status = lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(), " ", m.styles.Muted.Render(m.opts.Locale.T("ui.translating")))
	case m.generating:
		status = lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(), " ", m.styles.Muted.Render(m.opts.Locale.T("assist.generating")))
	default:
		status = m.styles.Success.Render("•")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, lang, "  ", status)
}

func (m *Model) renderStepIndicator() string {
	parts := make([]string, 0, len(form.Steps))
	for i, step := range form.Steps {
		label := fmt.Sprintf("%d. %s", i+1, m.opts.Locale.T(form.TitleKeys[step]))
		if i == m.ctl.Index() {
			parts = append(parts, m.styles.StepOn.Render(label))
		} else {
			parts = append(parts, m.styles.StepOff.Render(label))
		}
	}
	sep := m.styles.StepOff.Render("  >  ")
	if m.opts.Locale.Lang() == i18n.LangArabic {
		sep = m.styles.StepOff.Render("  <  ")
	}
	return strings.Join(parts, sep)
}

func (m *Model) renderFields() string {
	var b strings.Builder
	for _, f := range m.stepFields() {
		label := m.opts.Locale.T(f.LabelKey())
		err, hasErr := m.ctl.Error(f)

		style := m.styles.Label
		if hasErr {
			style = m.styles.LabelErr
		}
		marker := "  "
		if f == m.focus {
			marker = m.styles.StepOn.Render("> ")
		}
		b.WriteString(marker + style.Render(label) + "\n")

		if ta, ok := m.areas[f]; ok {
			b.WriteString(ta.View())
		} else if ti, ok := m.inputs[f]; ok {
			b.WriteString("  " + ti.View())
		}
		b.WriteString("\n")

		if hasErr {
			b.WriteString("  " + m.styles.Error.Render(err.Message) + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderAssistDialog() string {
	t := m.opts.Locale.T
	title := m.styles.StepOn.Render(t("assist.suggestion"))
	label := m.styles.Muted.Render(m.opts.Locale.T(m.assistField.LabelKey()))

	var body string
	if m.generating {
		body = lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " ", t("assist.generating"))
	} else if m.suggestion == "" {
		body = m.styles.Error.Render(t("assist.error"))
	} else {
		body = m.suggestion
	}

	keys := m.styles.Muted.Render(fmt.Sprintf(
		"enter: %s   r: %s   esc: %s",
		t("assist.insert"), t("assist.regenerate"), t("assist.discard")))

	width := m.width - 4
	if width < 20 || width > 100 {
		width = 78
	}
	return m.styles.Dialog.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, title+"  "+label, "", body, "", keys))
}

func (m *Model) renderFooter() string {
	t := m.opts.Locale.T
	parts := []string{
		"tab: " + t("nav.nextField"),
		"ctrl+b: " + t("nav.back"),
		"ctrl+l: " + t("nav.language"),
	}
	if m.ctl.IsLastStep() {
		parts = append(parts, "enter: "+t("nav.submit"))
	} else {
		parts = append(parts, "enter: "+t("nav.next"))
	}
	if _, ok := m.areas[m.focus]; ok {
		parts = append(parts, "ctrl+a: "+t("assist.help"))
		if m.ctl.IsLastStep() {
			// Narrative fields swallow enter; ctrl+n submits from them.
			parts = append(parts, "ctrl+n: "+t("nav.submit"))
		}
	}
	return m.styles.Muted.Render(strings.Join(parts, "   "))
}
