// Package navigation provides cursor state and keyboard moves on the board
package navigation

import (
	"github.com/riordanpawley/dragboard/internal/core/reorder"
	"github.com/riordanpawley/dragboard/internal/domain"
)

// Position represents a computed position in the board
type Position struct {
	Column int  // Column index
	Card   int  // Index within the column
	Valid  bool // Whether a card is under the cursor
}

// Cursor tracks the selected card by ID so it follows the card when reordered
type Cursor struct {
	CardID         string // Primary state: selected card ID
	FallbackColumn int    // Column to use when CardID not found
}

// FindPosition computes the position of the cursor's card in b
func (c *Cursor) FindPosition(b domain.Board) Position {
	if c.CardID != "" {
		for colIdx, col := range b.Columns {
			if cardIdx := col.CardIndex(c.CardID); cardIdx >= 0 {
				return Position{Column: colIdx, Card: cardIdx, Valid: true}
			}
		}
	}

	// No card selected or card gone, use fallback column
	col := c.FallbackColumn
	if col >= len(b.Columns) || col < 0 {
		col = 0
	}
	if col < len(b.Columns) && len(b.Columns[col].Cards) > 0 {
		return Position{Column: col, Card: 0, Valid: true}
	}
	return Position{Column: col, Card: 0, Valid: false}
}

// SetCard updates the cursor to point to a specific card
func (c *Cursor) SetCard(cardID string, column int) {
	c.CardID = cardID
	c.FallbackColumn = column
}

// MoveVertical moves up or down within a column, returns new card ID
func (c *Cursor) MoveVertical(b domain.Board, delta int) string {
	pos := c.FindPosition(b)
	if !pos.Valid {
		return c.CardID
	}

	cards := b.Columns[pos.Column].Cards
	newIdx := clamp(pos.Card+delta, 0, len(cards)-1)
	c.SetCard(cards[newIdx].ID, pos.Column)
	return c.CardID
}

// MoveHorizontal moves left or right to adjacent column, keeping the row
// where the target column is long enough
func (c *Cursor) MoveHorizontal(b domain.Board, delta int) string {
	pos := c.FindPosition(b)
	return c.JumpToColumn(b, pos.Column+delta)
}

// JumpToStart moves to first card in current column
func (c *Cursor) JumpToStart(b domain.Board) string {
	pos := c.FindPosition(b)
	if pos.Valid {
		c.SetCard(b.Columns[pos.Column].Cards[0].ID, pos.Column)
	}
	return c.CardID
}

// JumpToEnd moves to last card in current column
func (c *Cursor) JumpToEnd(b domain.Board) string {
	pos := c.FindPosition(b)
	if pos.Valid {
		cards := b.Columns[pos.Column].Cards
		c.SetCard(cards[len(cards)-1].ID, pos.Column)
	}
	return c.CardID
}

// JumpToColumn moves to a specific column, keeping relative row position
func (c *Cursor) JumpToColumn(b domain.Board, colIdx int) string {
	if len(b.Columns) == 0 {
		return c.CardID
	}
	colIdx = clamp(colIdx, 0, len(b.Columns)-1)
	pos := c.FindPosition(b)

	cards := b.Columns[colIdx].Cards
	if len(cards) == 0 {
		c.SetCard("", colIdx)
		return c.CardID
	}
	c.SetCard(cards[clamp(pos.Card, 0, len(cards)-1)].ID, colIdx)
	return c.CardID
}

// Service manages navigation state
type Service struct {
	cursor Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		cursor: Cursor{},
	}
}

// GetPosition returns the computed position of the cursor in b
func (s *Service) GetPosition(b domain.Board) Position {
	return s.cursor.FindPosition(b)
}

// CurrentCard returns the card under the cursor
func (s *Service) CurrentCard(b domain.Board) (domain.Card, bool) {
	pos := s.cursor.FindPosition(b)
	if !pos.Valid {
		return domain.Card{}, false
	}
	return b.Columns[pos.Column].Cards[pos.Card], true
}

// CurrentColumn returns the column the cursor is in
func (s *Service) CurrentColumn(b domain.Board) (domain.Column, bool) {
	pos := s.cursor.FindPosition(b)
	if pos.Column >= len(b.Columns) {
		return domain.Column{}, false
	}
	return b.Columns[pos.Column], true
}

// SelectedID returns the selected card id, resolved against b
func (s *Service) SelectedID(b domain.Board) string {
	card, ok := s.CurrentCard(b)
	if !ok {
		return ""
	}
	return card.ID
}

// MoveDown moves cursor down in current column
func (s *Service) MoveDown(b domain.Board) {
	s.cursor.MoveVertical(b, 1)
}

// MoveUp moves cursor up in current column
func (s *Service) MoveUp(b domain.Board) {
	s.cursor.MoveVertical(b, -1)
}

// MoveLeft moves cursor to left column
func (s *Service) MoveLeft(b domain.Board) {
	s.cursor.MoveHorizontal(b, -1)
}

// MoveRight moves cursor to right column
func (s *Service) MoveRight(b domain.Board) {
	s.cursor.MoveHorizontal(b, 1)
}

// GotoTop moves cursor to first card in column
func (s *Service) GotoTop(b domain.Board) {
	s.cursor.JumpToStart(b)
}

// GotoBottom moves cursor to last card in column
func (s *Service) GotoBottom(b domain.Board) {
	s.cursor.JumpToEnd(b)
}

// GotoFirstColumn moves cursor to first column
func (s *Service) GotoFirstColumn(b domain.Board) {
	s.cursor.JumpToColumn(b, 0)
}

// GotoLastColumn moves cursor to last column
func (s *Service) GotoLastColumn(b domain.Board) {
	s.cursor.JumpToColumn(b, len(b.Columns)-1)
}

// SelectCard finds and selects a card by ID
func (s *Service) SelectCard(b domain.Board, cardID string) bool {
	for colIdx, col := range b.Columns {
		if col.CardIndex(cardID) >= 0 {
			s.cursor.SetCard(cardID, colIdx)
			return true
		}
	}
	return false
}

// SelectColumn moves the cursor to the column with the given id
func (s *Service) SelectColumn(b domain.Board, columnID string) bool {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return false
	}
	s.cursor.JumpToColumn(b, idx)
	return true
}

// ShiftCard moves the selected card delta places within its column.
// It reports false when nothing moved.
func (s *Service) ShiftCard(b domain.Board, delta int) (domain.Board, bool) {
	pos := s.cursor.FindPosition(b)
	if !pos.Valid {
		return b, false
	}
	col := b.Columns[pos.Column]
	to := clamp(pos.Card+delta, 0, len(col.Cards)-1)
	if to == pos.Card {
		return b, false
	}

	cardID := col.Cards[pos.Card].ID
	next := reorder.ReorderWithinColumn(b, col.ID, cardID, col.Cards[to].ID)
	s.cursor.SetCard(cardID, pos.Column)
	return next, true
}

// ShiftCardColumn moves the selected card into the column delta places away,
// at the same row or at the end when that column is shorter
func (s *Service) ShiftCardColumn(b domain.Board, delta int) (domain.Board, bool) {
	pos := s.cursor.FindPosition(b)
	if !pos.Valid {
		return b, false
	}
	dstIdx := pos.Column + delta
	if dstIdx < 0 || dstIdx >= len(b.Columns) || dstIdx == pos.Column {
		return b, false
	}

	src := b.Columns[pos.Column]
	dst := b.Columns[dstIdx]
	move := reorder.CardMove{
		CardID:         src.Cards[pos.Card].ID,
		SourceColumnID: src.ID,
		DestColumnID:   dst.ID,
	}
	if pos.Card < len(dst.Cards) {
		move.HoveredCardID = dst.Cards[pos.Card].ID
	}

	next := reorder.MoveCardAcrossColumns(b, move)
	s.cursor.SetCard(move.CardID, dstIdx)
	return next, true
}

// ShiftColumn moves the cursor's column delta places along the board
func (s *Service) ShiftColumn(b domain.Board, delta int) (domain.Board, bool) {
	if len(b.Columns) == 0 {
		return b, false
	}
	pos := s.cursor.FindPosition(b)
	to := clamp(pos.Column+delta, 0, len(b.Columns)-1)
	if to == pos.Column {
		return b, false
	}

	next := reorder.ReorderColumns(b, b.Columns[pos.Column].ID, b.Columns[to].ID)
	s.cursor.FallbackColumn = to
	return next, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
