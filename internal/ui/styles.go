package ui

import "github.com/charmbracelet/lipgloss"

const (
	glyphLoading    = "\u25CC" // dotted circle
	glyphSuppressed = "\u263E" // last quarter moon

	// maxButtonWidth caps the label like the touch bar button did
	maxButtonWidth = 64
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorText    = lipgloss.Color("#FFFFFF")
	colorInk     = lipgloss.Color("#1A1A1A") // Text on tier backgrounds

	// colorNeutral fills the button during quiet hours
	colorNeutral = lipgloss.Color("#3A3A3A")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Foreground(colorText).
			Padding(0, 2).
			Align(lipgloss.Center).
			MaxWidth(maxButtonWidth)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
