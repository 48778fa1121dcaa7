// Package statusbar renders the single-line footer of the board.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/dragboard/internal/types"
	"github.com/riordanpawley/dragboard/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	info   string
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithInfo sets the right-aligned info text, such as the dragged item
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	// Keybinding hints
	content := modeBadge
	if hints := GetHints(sb.mode); hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, sb.styles.StatusHint.Render(hints))
	}

	// Status bar padding takes two cells
	inner := sb.width - 2
	if sb.info != "" && inner > 0 {
		info := sb.styles.StatusInfo.Render(sb.info)
		gap := inner - ansi.StringWidth(content) - ansi.StringWidth(info)
		if gap >= 1 {
			content += strings.Repeat(" ", gap) + info
		}
	}
	if inner > 0 && ansi.StringWidth(content) > inner {
		content = ansi.Truncate(content, inner, "…")
	}

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
