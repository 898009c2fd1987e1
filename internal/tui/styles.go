package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibcompare/internal/ui"
)

// Styles groups the lipgloss styles used by the dashboard, derived from the
// active UI theme so NO_COLOR is honored.
type Styles struct {
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Header   lipgloss.Style
	Strategy lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Dim      lipgloss.Style
}

// NewStyles builds the dashboard styles from the current TUI theme.
func NewStyles() Styles {
	theme := ui.GetCurrentTUITheme()
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Underline(true),
		Strategy: lipgloss.NewStyle().Foreground(theme.Accent),
		Success:  lipgloss.NewStyle().Foreground(theme.Success),
		Error:    lipgloss.NewStyle().Foreground(theme.Error),
		Dim:      lipgloss.NewStyle().Foreground(theme.Dim),
	}
}
