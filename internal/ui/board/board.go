// Package board renders the kanban board and maps it onto terminal cells.
package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/dragboard/internal/core/collision"
	"github.com/riordanpawley/dragboard/internal/domain"
	"github.com/riordanpawley/dragboard/internal/ui/styles"
)

// Highlight describes which items are drawn in a non-default state
type Highlight struct {
	// SelectedID is the card under the keyboard cursor
	SelectedID string
	// ActiveID is the dragged item, empty when no drag is running
	ActiveID   string
	ActiveKind collision.Kind
	// OverID is the last resolved drop target
	OverID string
}

func (h Highlight) dragging(kind collision.Kind, id string) bool {
	return h.ActiveID != "" && h.ActiveKind == kind && h.ActiveID == id
}

// Render renders the board using the precomputed layout, clipped to width
func Render(b domain.Board, l Layout, h Highlight, s *styles.Styles, width int) string {
	if len(b.Columns) == 0 {
		return s.EmptyColumn.Render("No columns")
	}

	overColumn := h.OverID
	if col, ok := b.ColumnOfCard(h.OverID); ok {
		overColumn = col.ID
	}

	var columnStrings []string
	for i, col := range b.Columns {
		var selected bool
		if h.SelectedID != "" {
			selected = col.CardIndex(h.SelectedID) >= 0
		}
		columnStr := renderColumn(col, i, columnState{
			dragging: h.dragging(collision.KindColumn, col.ID),
			active:   selected || (h.ActiveID != "" && col.ID == overColumn),
		}, h, l, s)

		sized := lipgloss.NewStyle().Width(l.ColumnWidth).Height(l.Height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
	return clip(view, width)
}

// clip truncates every line of view to width cells
func clip(view string, width int) string {
	if width <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
