package board

import (
	"github.com/riordanpawley/dragboard/internal/core/collision"
	"github.com/riordanpawley/dragboard/internal/core/drag"
	"github.com/riordanpawley/dragboard/internal/domain"
)

const (
	// headerRows is the header line plus its bottom margin
	headerRows = 2
	// cardInsetX is the column border plus its left padding
	cardInsetX = 2
)

// Metrics controls how the board is laid out in terminal cells
type Metrics struct {
	MinColumnWidth int
	CardHeight     int
}

// DefaultMetrics returns the metrics used when no config is present
func DefaultMetrics() Metrics {
	return Metrics{MinColumnWidth: 24, CardHeight: 4}
}

// ColumnBox is the on-screen footprint of a column
type ColumnBox struct {
	ID     string
	Index  int
	Rect   collision.Rect
	Header collision.Rect
}

// CardBox is the on-screen footprint of a card
type CardBox struct {
	ID       string
	ColumnID string
	Index    int
	Rect     collision.Rect
}

// Layout maps the board onto terminal cells. Rects use cell units with the
// origin at the top-left of the board area.
type Layout struct {
	Columns     []ColumnBox
	Cards       []CardBox
	ColumnWidth int
	Height      int
	Metrics     Metrics
}

// Compute lays out every column and card of b inside a width x height area.
// Columns share the width evenly but never shrink below MinColumnWidth.
func Compute(b domain.Board, width, height int, m Metrics) Layout {
	if m.MinColumnWidth <= 0 {
		m.MinColumnWidth = DefaultMetrics().MinColumnWidth
	}
	if m.CardHeight <= 0 {
		m.CardHeight = DefaultMetrics().CardHeight
	}
	if height < headerRows+3 {
		height = headerRows + 3
	}

	l := Layout{Height: height, Metrics: m}
	if len(b.Columns) == 0 {
		return l
	}

	colWidth := width / len(b.Columns)
	if colWidth < m.MinColumnWidth {
		colWidth = m.MinColumnWidth
	}
	l.ColumnWidth = colWidth

	stride := m.CardHeight + 1
	for i, col := range b.Columns {
		x := float64(i * colWidth)
		l.Columns = append(l.Columns, ColumnBox{
			ID:     col.ID,
			Index:  i,
			Rect:   collision.Rect{Left: x, Top: 0, Width: float64(colWidth), Height: float64(height)},
			Header: collision.Rect{Left: x, Top: 0, Width: float64(colWidth), Height: headerRows},
		})
		for j, card := range col.Cards {
			l.Cards = append(l.Cards, CardBox{
				ID:       card.ID,
				ColumnID: col.ID,
				Index:    j,
				Rect: collision.Rect{
					Left:   x + cardInsetX,
					Top:    float64(headerRows + 1 + j*stride),
					Width:  float64(colWidth - 2*cardInsetX),
					Height: float64(m.CardHeight),
				},
			})
		}
	}
	return l
}

// Droppables converts the layout into collision targets
func (l Layout) Droppables() []collision.Droppable {
	out := make([]collision.Droppable, 0, len(l.Columns)+len(l.Cards))
	for _, c := range l.Columns {
		out = append(out, collision.Droppable{ID: c.ID, Kind: collision.KindColumn, Rect: c.Rect})
	}
	for _, c := range l.Cards {
		out = append(out, collision.Droppable{ID: c.ID, Kind: collision.KindCard, ColumnID: c.ColumnID, Rect: c.Rect})
	}
	return out
}

// ColumnRect returns the rect of the column with the given id
func (l Layout) ColumnRect(id string) (collision.Rect, bool) {
	for _, c := range l.Columns {
		if c.ID == id {
			return c.Rect, true
		}
	}
	return collision.Rect{}, false
}

// CardRect returns the rect of the card with the given id
func (l Layout) CardRect(id string) (collision.Rect, bool) {
	for _, c := range l.Cards {
		if c.ID == id {
			return c.Rect, true
		}
	}
	return collision.Rect{}, false
}

// ItemRect returns the rect of a draggable item
func (l Layout) ItemRect(item drag.Item) (collision.Rect, bool) {
	if item.Kind == collision.KindColumn {
		return l.ColumnRect(item.ID)
	}
	return l.CardRect(item.ID)
}

// HitTest returns the draggable item under the cell at (x, y). Cards are
// grabbed anywhere on their box, columns only by their header.
func (l Layout) HitTest(x, y int) (drag.Item, bool) {
	p := cellCenter(x, y)
	for _, c := range l.Cards {
		if c.Rect.Contains(p) {
			return drag.Item{ID: c.ID, Kind: collision.KindCard}, true
		}
	}
	for _, c := range l.Columns {
		if c.Header.Contains(p) {
			return drag.Item{ID: c.ID, Kind: collision.KindColumn}, true
		}
	}
	return drag.Item{}, false
}

// ColumnAt returns the column whose area contains the cell at (x, y)
func (l Layout) ColumnAt(x, y int) (string, bool) {
	p := cellCenter(x, y)
	for _, c := range l.Columns {
		if c.Rect.Contains(p) {
			return c.ID, true
		}
	}
	return "", false
}

func cellCenter(x, y int) collision.Point {
	return collision.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
