package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/dragboard/internal/domain"
	"github.com/riordanpawley/dragboard/internal/ui/styles"
)

type cardState int

const (
	cardNormal cardState = iota
	cardSelected
	// cardGhost is the slot left behind by the dragged card
	cardGhost
)

// renderCard renders a card box of the given outer width and height
func renderCard(card domain.Card, state cardState, width, height int, s *styles.Styles) string {
	cardStyle := s.Card
	switch state {
	case cardSelected:
		cardStyle = s.CardActive
	case cardGhost:
		cardStyle = s.CardGhost
	}
	return cardStyle.
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		Render(cardContent(card, state, width-4, s))
}

// cardContent builds the title and id lines, truncated to width cells
func cardContent(card domain.Card, state cardState, width int, s *styles.Styles) string {
	if width < 1 {
		width = 1
	}
	prefix := ""
	if state == cardSelected {
		prefix = "▶"
	}
	title := ansi.Truncate(prefix+card.Title, width, "…")
	id := ansi.Truncate(card.ID, width, "…")
	if state == cardGhost {
		// Inherit the dimmed foreground of the ghost box
		return title + "\n" + id
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.CardTitle.Render(title), s.CardID.Render(id))
}
