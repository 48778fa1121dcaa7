package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Board
	Column             lipgloss.Style
	ColumnDragging     lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardActive   lipgloss.Style
	CardGhost    lipgloss.Style
	CardOverlay  lipgloss.Style
	CardID       lipgloss.Style
	CardTitle    lipgloss.Style
	EmptyColumn  lipgloss.Style
	OverlayTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnDragging: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface0).
			Foreground(Overlay0).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1).
			MarginBottom(1),

		// The slot a dragged card leaves behind
		CardGhost: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Surface0).
			Foreground(Surface2).
			Padding(0, 1).
			MarginBottom(1),

		CardOverlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Mauve).
			Foreground(Text).
			Padding(0, 1),

		CardID: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		CardTitle: lipgloss.NewStyle().
			Foreground(Text),

		EmptyColumn: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		ToastInfo:    toastStyle(Blue),
		ToastSuccess: toastStyle(Green),
		ToastWarning: toastStyle(Yellow),
		ToastError:   toastStyle(Red),
	}
}

// Header returns the header style for the column at position i
func (s *Styles) Header(i int, active bool) lipgloss.Style {
	if active {
		return s.ColumnHeaderActive
	}
	return s.ColumnHeader.Foreground(ColumnAccent(i))
}

func toastStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Foreground(c).
		Padding(0, 1)
}
