package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the wizard.
type Styles struct {
	Header    lipgloss.Style
	StepOn    lipgloss.Style
	StepOff   lipgloss.Style
	Label     lipgloss.Style
	LabelErr  lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Dialog    lipgloss.Style
}

// DefaultStyles returns the standard theme.
func DefaultStyles() Styles {
	accent := lipgloss.Color("63")
	destructive := lipgloss.Color("196")

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(accent).
			Padding(0, 1),
		StepOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		StepOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		LabelErr: lipgloss.NewStyle().
			Foreground(destructive),
		Error: lipgloss.NewStyle().
			Foreground(destructive),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
	}
}
