package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	TitleFocused   lipgloss.Style
	Card           lipgloss.Style
	CardActive     lipgloss.Style
	CardTitle      lipgloss.Style
	CardBody       lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Dot            lipgloss.Style
	DotActive      lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		TitleFocused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		CardBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true).
			Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1),
		Dot:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}

// ButtonStyle returns the style matching a navigation button's class list
func (s *Styles) ButtonStyle(disabled bool) lipgloss.Style {
	if disabled {
		return s.ButtonDisabled
	}
	return s.Button
}
