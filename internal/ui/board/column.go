package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/dragboard/internal/core/collision"
	"github.com/riordanpawley/dragboard/internal/domain"
	"github.com/riordanpawley/dragboard/internal/ui/styles"
)

type columnState struct {
	dragging bool
	active   bool
}

// visibleCards returns how many cards fit in a column body of the layout
func (l Layout) visibleCards() int {
	inner := l.Height - headerRows - 2
	if inner <= 0 {
		return 0
	}
	return (inner + 1) / (l.Metrics.CardHeight + 1)
}

// renderColumn renders a kanban column with header and cards
func renderColumn(col domain.Column, index int, state columnState, h Highlight, l Layout, s *styles.Styles) string {
	header := renderHeader(col, index, state.active, l, s)

	bodyStyle := s.Column
	if state.dragging {
		bodyStyle = s.ColumnDragging
	}
	innerWidth := l.ColumnWidth - 2*cardInsetX

	var cardStrings []string
	fit := l.visibleCards()
	for i, card := range col.Cards {
		if i >= fit {
			break
		}
		cs := cardNormal
		switch {
		case state.dragging || h.dragging(collision.KindCard, card.ID):
			cs = cardGhost
		case card.ID == h.SelectedID:
			cs = cardSelected
		}
		cardStrings = append(cardStrings, renderCard(card, cs, innerWidth, l.Metrics.CardHeight, s))
	}

	content := s.EmptyColumn.Render("Drop cards here")
	if len(cardStrings) > 0 {
		content = strings.Join(cardStrings, "\n")
	}

	body := bodyStyle.
		Width(l.ColumnWidth - 2).
		Height(max(l.Height-headerRows-2, 1)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// renderHeader renders a column title line like "─ Todo (3) ─────"
func renderHeader(col domain.Column, index int, active bool, l Layout, s *styles.Styles) string {
	width := l.ColumnWidth - 2
	label := fmt.Sprintf("%s (%d)", col.Title, len(col.Cards))
	if hidden := len(col.Cards) - l.visibleCards(); hidden > 0 {
		label += fmt.Sprintf(" +%d", hidden)
	}

	headerText := ansi.Truncate("─ "+label+" ", width, "…")
	if remaining := width - ansi.StringWidth(headerText); remaining > 0 {
		headerText += strings.Repeat("─", remaining)
	}
	return s.Header(index, active).Render(headerText)
}
