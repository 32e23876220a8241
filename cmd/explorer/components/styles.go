package components

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Color definitions
var (
	PrimaryColor   = lipgloss.Color("#7D56F4")
	SecondaryColor = lipgloss.Color("#04B575")
	AccentColor    = lipgloss.Color("#FFD700")
	DangerColor    = lipgloss.Color("#F25D94")

	Gray     = lipgloss.Color("#8B8B8B")
	DarkGray = lipgloss.Color("#383838")
)

// Canvas colors
var (
	Background   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	PlayerColor  = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	DyingColor   = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	// OutlineColor frames the generated zone when zoomed out past it.
	OutlineColor = color.RGBA{R: 125, G: 86, B: 244, A: 255}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	CountStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(DarkGray).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true)

	OnStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	OffStyle = lipgloss.NewStyle().
			Foreground(Gray)

	AlertStyle = lipgloss.NewStyle().
			Foreground(DangerColor).
			Bold(true)
)

// Toggle renders a labelled on/off flag.
func Toggle(label string, on bool) string {
	if on {
		return label + " " + OnStyle.Render("ON")
	}
	return label + " " + OffStyle.Render("OFF")
}
