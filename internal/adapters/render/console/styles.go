package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	service lipgloss.Style
	detail  lipgloss.Style
	warning lipgloss.Style
	empty   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		service: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		detail:  r.NewStyle().Foreground(lipgloss.Color("252")),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		empty:   r.NewStyle().Faint(true),
	}
}
