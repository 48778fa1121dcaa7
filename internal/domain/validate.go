package domain

import "slices"

// Validate checks the board invariants: both order arrays match the id
// projection of their entities, every card names its owning column, and no
// card ID appears twice anywhere on the board.
func Validate(b Board) error {
	if !slices.Equal(b.ColumnOrderIDs, ColumnIDs(b.Columns)) {
		return &BoardError{Op: "validate", ID: b.ID, Message: "columnOrderIds out of sync with columns", Err: ErrInvalidBoard}
	}

	seenColumns := make(map[string]bool, len(b.Columns))
	seenCards := make(map[string]string, b.CardCount())
	for _, col := range b.Columns {
		if seenColumns[col.ID] {
			return &BoardError{Op: "validate", ID: col.ID, Message: "duplicate column", Err: ErrInvalidBoard}
		}
		seenColumns[col.ID] = true

		if !slices.Equal(col.CardOrderIDs, CardIDs(col.Cards)) {
			return &BoardError{Op: "validate", ID: col.ID, Message: "cardOrderIds out of sync with cards", Err: ErrInvalidBoard}
		}
		for _, card := range col.Cards {
			if card.ColumnID != col.ID {
				return &BoardError{Op: "validate", ID: card.ID, Message: "card columnId does not match owning column " + col.ID, Err: ErrInvalidBoard}
			}
			if owner, dup := seenCards[card.ID]; dup {
				return &BoardError{Op: "validate", ID: card.ID, Message: "card also present in column " + owner, Err: ErrInvalidBoard}
			}
			seenCards[card.ID] = col.ID
		}
	}
	return nil
}
