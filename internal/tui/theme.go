package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the pre-computed lipgloss styles shared by all views
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Subtle   lipgloss.Style
	Selected lipgloss.Style
	Folder   lipgloss.Style
	Module   lipgloss.Style
	Hours    lipgloss.Style
	BarFull  lipgloss.Style
	BarEmpty lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default color scheme
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Folder:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Module:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Hours:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		BarFull:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
