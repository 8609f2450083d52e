// Package ui renders the Library of Alexander terminal interface: a route
// shell with a Home view and a Library view.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Parchment = lipgloss.Color("#f4ecd8")
	Ink       = lipgloss.Color("#1c1a27")
	Gold      = lipgloss.Color("#d4a520")
	Plum      = lipgloss.Color("#4a2c7a")
	Faded     = lipgloss.Color("#8a8598")
	Teal      = lipgloss.Color("#2d6a4f")
	Sky       = lipgloss.Color("#00b4d8")
)

type Styles struct {
	Logo        lipgloss.Style
	NavLink     lipgloss.Style
	NavActive   lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Highlight   lipgloss.Style
	Muted       lipgloss.Style
	Button      lipgloss.Style
	ButtonAlt   lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Badge       lipgloss.Style
	Card        lipgloss.Style
	Stat        lipgloss.Style
	StatValue   lipgloss.Style
	Search      lipgloss.Style
	Empty       lipgloss.Style
	StatusColor map[string]lipgloss.Color
	Help        lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Logo:      lipgloss.NewStyle().Bold(true).Foreground(Gold),
		NavLink:   lipgloss.NewStyle().Foreground(Faded).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Bold(true).Foreground(Parchment).Background(Plum).Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Parchment),
		Subtitle:  lipgloss.NewStyle().Foreground(Faded),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(Gold),
		Muted:     lipgloss.NewStyle().Foreground(Faded),
		Button:    lipgloss.NewStyle().Bold(true).Foreground(Ink).Background(Gold).Padding(0, 1),
		ButtonAlt: lipgloss.NewStyle().Foreground(Gold).Border(lipgloss.NormalBorder()).BorderForeground(Gold).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(Faded).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Bold(true).Foreground(Ink).Background(Gold).Padding(0, 1),
		Badge:     lipgloss.NewStyle().Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Faded).
			Padding(0, 1).
			Width(cardWidth),
		Stat:      lipgloss.NewStyle().Align(lipgloss.Center).Width(22).Padding(0, 1),
		StatValue: lipgloss.NewStyle().Bold(true).Foreground(Gold),
		Search: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Faded).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().Align(lipgloss.Center).Padding(1, 2),
		StatusColor: map[string]lipgloss.Color{
			"reading":      Sky,
			"completed":    Teal,
			"want-to-read": Gold,
		},
		Help: lipgloss.NewStyle().Foreground(Faded).Italic(true),
	}
}
