package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/dragboard/internal/core/collision"
	"github.com/riordanpawley/dragboard/internal/core/drag"
	"github.com/riordanpawley/dragboard/internal/ui/styles"
)

// RenderOverlay renders the floating copy of the dragged item, sized like its
// footprint in l
func RenderOverlay(item drag.ActiveItem, l Layout, s *styles.Styles) string {
	switch item.Kind {
	case collision.KindCard:
		if item.Card == nil {
			return ""
		}
		width := l.ColumnWidth - 2*cardInsetX
		return s.CardOverlay.
			Width(max(width-2, 1)).
			Height(max(l.Metrics.CardHeight-2, 1)).
			Render(cardContent(*item.Card, cardNormal, width-4, s))
	case collision.KindColumn:
		if item.Column == nil {
			return ""
		}
		width := l.ColumnWidth - 2
		lines := []string{s.OverlayTitle.Render(ansi.Truncate(item.Column.Title, width-2, "…"))}
		for i, card := range item.Column.Cards {
			if i >= l.visibleCards() {
				break
			}
			lines = append(lines, ansi.Truncate("• "+card.Title, width-2, "…"))
		}
		return s.CardOverlay.
			Width(max(width, 1)).
			Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	default:
		return ""
	}
}

// PlaceOverlay draws fg over bg with its top-left corner at cell (x, y).
// Parts of fg outside bg are dropped.
func PlaceOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}

		base := bgLines[row]
		if w := ansi.StringWidth(base); w < col {
			base += strings.Repeat(" ", col-w)
		}
		left := ansi.Truncate(base, col, "")
		right := ansi.TruncateLeft(base, col+ansi.StringWidth(line), "")
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
