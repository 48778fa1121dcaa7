// Package reorder turns move instructions into new board snapshots.
//
// Every function takes a board value and returns a new one; the input is never
// modified. Columns and card slices that a move does not touch are shared with
// the input. Instructions that cannot be applied (unknown IDs, positions out of
// range, moving something onto itself) return the input unchanged.
package reorder

import (
	"slices"

	"github.com/riordanpawley/dragboard/internal/domain"
)

// ArrayMove returns a new slice with the element at from moved to to. The other
// elements keep their relative order. Out-of-range positions return s as is.
func ArrayMove[T any](s []T, from, to int) []T {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return s
	}
	out := slices.Clone(s)
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}

// ReorderColumns moves the column fromColumnID to the position currently
// held by toColumnID.
func ReorderColumns(b domain.Board, fromColumnID, toColumnID string) domain.Board {
	if fromColumnID == toColumnID {
		return b
	}
	from := b.ColumnIndex(fromColumnID)
	to := b.ColumnIndex(toColumnID)
	if from < 0 || to < 0 {
		return b
	}
	return b.WithColumns(ArrayMove(b.Columns, from, to))
}

// ReorderWithinColumn moves fromCardID to the position currently held by
// toCardID inside one column. Only that column changes.
func ReorderWithinColumn(b domain.Board, columnID, fromCardID, toCardID string) domain.Board {
	idx := b.ColumnIndex(columnID)
	if idx < 0 || fromCardID == toCardID {
		return b
	}
	col := b.Columns[idx]
	from := col.CardIndex(fromCardID)
	to := col.CardIndex(toCardID)
	if from < 0 || to < 0 {
		return b
	}
	return replaceColumn(b, idx, col.WithCards(ArrayMove(col.Cards, from, to)))
}

// ReorderFromSnapshot finishes an in-column drag. The card's starting
// position is read from source, the column as it was when the drag began,
// and its destination from the live column's position of toCardID. The
// column's cards are replaced with source's cards rearranged accordingly.
func ReorderFromSnapshot(b domain.Board, source domain.Column, cardID, toCardID string) domain.Board {
	idx := b.ColumnIndex(source.ID)
	if idx < 0 {
		return b
	}
	from := source.CardIndex(cardID)
	to := b.Columns[idx].CardIndex(toCardID)
	if from < 0 || to < 0 || to >= len(source.Cards) {
		return b
	}
	return replaceColumn(b, idx, b.Columns[idx].WithCards(ArrayMove(source.Cards, from, to)))
}

// CardMove describes a card leaving one column for another.
type CardMove struct {
	CardID         string
	SourceColumnID string
	DestColumnID   string
	// HoveredCardID is the destination card under the pointer. Empty, or an
	// ID the destination does not hold, appends the card to the destination.
	HoveredCardID string
	// BelowHovered inserts after the hovered card instead of before it.
	BelowHovered bool
}

// MoveCardAcrossColumns removes the card from the source column and splices
// it into the destination, rewriting its ColumnID.
//
// Any copy of the card already sitting in the destination is dropped first,
// and the insertion index is computed on the destination without it, so
// applying the same move again to the result yields the same board.
func MoveCardAcrossColumns(b domain.Board, m CardMove) domain.Board {
	srcIdx := b.ColumnIndex(m.SourceColumnID)
	dstIdx := b.ColumnIndex(m.DestColumnID)
	if srcIdx < 0 || dstIdx < 0 {
		return b
	}

	src := b.Columns[srcIdx]
	dst := b.Columns[dstIdx]

	card, ok := findCard(src, dst, m.CardID)
	if !ok {
		return b
	}
	card.ColumnID = dst.ID

	remaining := withoutCard(dst.Cards, m.CardID)
	insertAt := len(remaining)
	if i := slices.IndexFunc(remaining, func(c domain.Card) bool { return c.ID == m.HoveredCardID }); i >= 0 {
		insertAt = i
		if m.BelowHovered {
			insertAt = i + 1
		}
	}
	nextDst := dst.WithCards(slices.Insert(remaining, insertAt, card))

	columns := slices.Clone(b.Columns)
	if srcIdx != dstIdx {
		columns[srcIdx] = src.WithCards(withoutCard(src.Cards, m.CardID))
	}
	columns[dstIdx] = nextDst
	return b.WithColumns(columns)
}

func findCard(src, dst domain.Column, cardID string) (domain.Card, bool) {
	if i := src.CardIndex(cardID); i >= 0 {
		return src.Cards[i], true
	}
	if i := dst.CardIndex(cardID); i >= 0 {
		return dst.Cards[i], true
	}
	return domain.Card{}, false
}

// withoutCard always returns a fresh slice so callers may insert into it.
func withoutCard(cards []domain.Card, cardID string) []domain.Card {
	out := make([]domain.Card, 0, len(cards)+1)
	for _, c := range cards {
		if c.ID != cardID {
			out = append(out, c)
		}
	}
	return out
}

func replaceColumn(b domain.Board, idx int, col domain.Column) domain.Board {
	columns := slices.Clone(b.Columns)
	columns[idx] = col
	return b.WithColumns(columns)
}
