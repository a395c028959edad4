// Package tui provides the full-screen terminal dashboard.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the styled components of the dashboard.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	Title      lipgloss.Style
	Axis       lipgloss.Style
	Meta       lipgloss.Style
	Footer     lipgloss.Style
	PaneActive lipgloss.Style
	PaneIdle   lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the standard dashboard style set.
func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		App:        lipgloss.NewStyle().Padding(0, 1),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Title:      lipgloss.NewStyle().Bold(true),
		Axis:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Footer:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		PaneActive: lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("12")),
		PaneIdle:   lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("8")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
