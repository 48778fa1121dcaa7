package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Red      = lipgloss.Color("#ed8796")
	Mauve    = lipgloss.Color("#c6a0f6")
	Peach    = lipgloss.Color("#f5a97f")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Teal     = lipgloss.Color("#8bd5ca")
	Sapphire = lipgloss.Color("#7dc4e4")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)

// ColumnAccents cycles through column header colors by column position
var ColumnAccents = []lipgloss.Color{
	Blue,
	Yellow,
	Mauve,
	Green,
	Peach,
	Teal,
	Sapphire,
}

// ColumnAccent returns the header color for the column at position i
func ColumnAccent(i int) lipgloss.Color {
	if i < 0 {
		i = 0
	}
	return ColumnAccents[i%len(ColumnAccents)]
}
