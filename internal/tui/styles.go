package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	// UI colors
	headerBg   = lipgloss.Color("235")
	statusBg   = lipgloss.Color("236")
	helpBg     = lipgloss.Color("234")
	errorColor = lipgloss.Color("9")
	dimColor   = lipgloss.Color("8")

	// Display class colors, keyed by the logview color names
	classColorList = map[string]lipgloss.Color{
		"red":    lipgloss.Color("9"),
		"orange": lipgloss.Color("208"),
		"blue":   lipgloss.Color("12"),
		"green":  lipgloss.Color("10"),
		"gray":   lipgloss.Color("8"),
		"purple": lipgloss.Color("13"),
		"black":  lipgloss.Color("15"),
	}
)

// Styles
var (
	// Header style
	headerStyle = lipgloss.NewStyle().
			Background(headerBg).
			Padding(0, 1).
			MarginBottom(1)

	// Status bar style
	statusStyle = lipgloss.NewStyle().
			Background(statusBg).
			Padding(0, 1)

	// Help overlay style
	helpStyle = lipgloss.NewStyle().
			Background(helpBg).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	// Error indicator style
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(errorColor).
			Bold(true)

	// Dim style for timestamps
	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// Display class styles
	classStyles map[string]lipgloss.Style

	defaultClassStyle = lipgloss.NewStyle()
)

func init() {
	classStyles = make(map[string]lipgloss.Style, len(classColorList))
	for name, color := range classColorList {
		classStyles[name] = lipgloss.NewStyle().Foreground(color)
	}
}

// classStyle returns the style for a display class color name
func classStyle(color string) lipgloss.Style {
	if style, ok := classStyles[color]; ok {
		return style
	}
	return defaultClassStyle
}
