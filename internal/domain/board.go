// Package domain contains the board model: a board is an ordered list of
// columns, and each column is an ordered list of cards.
package domain

// Card is the smallest draggable unit on a board.
type Card struct {
	ID          string `json:"_id"`
	ColumnID    string `json:"columnId"`
	BoardID     string `json:"boardId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Cover       string `json:"cover,omitempty"`
}

// Column is an ordered container of cards.
//
// CardOrderIDs is always the id projection of Cards, in the same order.
type Column struct {
	ID           string   `json:"_id"`
	BoardID      string   `json:"boardId,omitempty"`
	Title        string   `json:"title"`
	CardOrderIDs []string `json:"cardOrderIds"`
	Cards        []Card   `json:"cards"`
}

// Board is the whole ordered collection of columns.
//
// ColumnOrderIDs is always the id projection of Columns, in the same order.
// Snapshots are treated as immutable values: operations return new boards
// that share untouched columns and card slices with their input.
type Board struct {
	ID             string   `json:"_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	ColumnOrderIDs []string `json:"columnOrderIds"`
	Columns        []Column `json:"columns"`
}

// ColumnIndex returns the position of the column with the given ID, or -1.
func (b Board) ColumnIndex(columnID string) int {
	for i, col := range b.Columns {
		if col.ID == columnID {
			return i
		}
	}
	return -1
}

// Column returns the column with the given ID.
func (b Board) Column(columnID string) (Column, bool) {
	if i := b.ColumnIndex(columnID); i >= 0 {
		return b.Columns[i], true
	}
	return Column{}, false
}

// ColumnOfCard returns the column currently holding the card.
func (b Board) ColumnOfCard(cardID string) (Column, bool) {
	for _, col := range b.Columns {
		if col.CardIndex(cardID) >= 0 {
			return col, true
		}
	}
	return Column{}, false
}

// Card returns the card with the given ID from whichever column holds it.
func (b Board) Card(cardID string) (Card, bool) {
	for _, col := range b.Columns {
		if i := col.CardIndex(cardID); i >= 0 {
			return col.Cards[i], true
		}
	}
	return Card{}, false
}

// CardCount returns the total number of cards across all columns
func (b Board) CardCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Cards)
	}
	return n
}

// CardIndex returns the position of the card within the column, or -1.
func (c Column) CardIndex(cardID string) int {
	for i, card := range c.Cards {
		if card.ID == cardID {
			return i
		}
	}
	return -1
}

// ColumnIDs projects columns onto their IDs.
func ColumnIDs(columns []Column) []string {
	ids := make([]string, len(columns))
	for i, col := range columns {
		ids[i] = col.ID
	}
	return ids
}

// CardIDs projects cards onto their IDs.
func CardIDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, card := range cards {
		ids[i] = card.ID
	}
	return ids
}

// WithColumns returns a copy of the board holding the given columns, with
// ColumnOrderIDs rebuilt from them.
func (b Board) WithColumns(columns []Column) Board {
	b.Columns = columns
	b.ColumnOrderIDs = ColumnIDs(columns)
	return b
}

// WithCards returns a copy of the column holding the given cards, with
// CardOrderIDs rebuilt from them.
func (c Column) WithCards(cards []Card) Column {
	c.Cards = cards
	c.CardOrderIDs = CardIDs(cards)
	return c
}
