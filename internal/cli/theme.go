package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Candidate lipgloss.Style
	Resolved  lipgloss.Style
	Card      lipgloss.Style
}

// newTheme binds styles to w so colour is dropped when w is not a terminal.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Title:     r.NewStyle().Bold(true),
		Label:     r.NewStyle().Faint(true),
		Muted:     r.NewStyle().Faint(true),
		Candidate: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Resolved:  r.NewStyle().Foreground(lipgloss.Color("42")),
		Card: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
