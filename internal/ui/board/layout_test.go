package board

import (
	"testing"

	"github.com/riordanpawley/dragboard/internal/core/collision"
	"github.com/riordanpawley/dragboard/internal/core/drag"
	"github.com/riordanpawley/dragboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestBoard() domain.Board {
	a := domain.Column{ID: "A", Title: "Todo"}.WithCards([]domain.Card{
		{ID: "c1", ColumnID: "A", Title: "First card"},
		{ID: "c2", ColumnID: "A", Title: "Second card"},
	})
	b := domain.Column{ID: "B", Title: "Doing"}.WithCards([]domain.Card{
		{ID: "c3", ColumnID: "B", Title: "Third card"},
	})
	c := domain.Column{ID: "C", Title: "Done"}.WithCards([]domain.Card{})
	return domain.Board{ID: "board-1"}.WithColumns([]domain.Column{a, b, c})
}

func TestCompute(t *testing.T) {
	l := Compute(makeTestBoard(), 90, 30, DefaultMetrics())

	require.Len(t, l.Columns, 3)
	require.Len(t, l.Cards, 3)
	assert.Equal(t, 30, l.ColumnWidth)

	assert.Equal(t, collision.Rect{Left: 30, Top: 0, Width: 30, Height: 30}, l.Columns[1].Rect)
	assert.Equal(t, collision.Rect{Left: 30, Top: 0, Width: 30, Height: 2}, l.Columns[1].Header)

	assert.Equal(t, CardBox{ID: "c1", ColumnID: "A", Index: 0, Rect: collision.Rect{Left: 2, Top: 3, Width: 26, Height: 4}}, l.Cards[0])
	assert.Equal(t, CardBox{ID: "c2", ColumnID: "A", Index: 1, Rect: collision.Rect{Left: 2, Top: 8, Width: 26, Height: 4}}, l.Cards[1])
	assert.Equal(t, CardBox{ID: "c3", ColumnID: "B", Index: 0, Rect: collision.Rect{Left: 32, Top: 3, Width: 26, Height: 4}}, l.Cards[2])
}

func TestComputeMinColumnWidth(t *testing.T) {
	l := Compute(makeTestBoard(), 40, 30, Metrics{MinColumnWidth: 24, CardHeight: 4})
	assert.Equal(t, 24, l.ColumnWidth)
	assert.Equal(t, float64(48), l.Columns[2].Rect.Left)
}

func TestComputeZeroMetricsUsesDefaults(t *testing.T) {
	l := Compute(makeTestBoard(), 90, 30, Metrics{})
	assert.Equal(t, DefaultMetrics(), l.Metrics)
}

func TestComputeEmptyBoard(t *testing.T) {
	l := Compute(domain.Board{}, 90, 30, DefaultMetrics())
	assert.Empty(t, l.Columns)
	assert.Empty(t, l.Droppables())
	_, ok := l.HitTest(1, 1)
	assert.False(t, ok)
}

func TestDroppables(t *testing.T) {
	l := Compute(makeTestBoard(), 90, 30, DefaultMetrics())
	ds := l.Droppables()

	require.Len(t, ds, 6)
	assert.Equal(t, collision.Droppable{ID: "A", Kind: collision.KindColumn, Rect: l.Columns[0].Rect}, ds[0])
	assert.Equal(t, "c3", ds[5].ID)
	assert.Equal(t, collision.KindCard, ds[5].Kind)
	assert.Equal(t, "B", ds[5].ColumnID)
}

func TestHitTest(t *testing.T) {
	l := Compute(makeTestBoard(), 90, 30, DefaultMetrics())

	tests := []struct {
		name string
		x, y int
		want drag.Item
		ok   bool
	}{
		{name: "card top-left cell", x: 2, y: 3, want: drag.Item{ID: "c1", Kind: collision.KindCard}, ok: true},
		{name: "card last cell", x: 27, y: 6, want: drag.Item{ID: "c1", Kind: collision.KindCard}, ok: true},
		{name: "second card", x: 10, y: 9, want: drag.Item{ID: "c2", Kind: collision.KindCard}, ok: true},
		{name: "column header", x: 31, y: 0, want: drag.Item{ID: "B", Kind: collision.KindColumn}, ok: true},
		{name: "header margin row", x: 65, y: 1, want: drag.Item{ID: "C", Kind: collision.KindColumn}, ok: true},
		{name: "right of card", x: 28, y: 4},
		{name: "column body", x: 5, y: 20},
		{name: "outside board", x: 95, y: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.HitTest(tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItemRect(t *testing.T) {
	l := Compute(makeTestBoard(), 90, 30, DefaultMetrics())

	r, ok := l.ItemRect(drag.Item{ID: "c3", Kind: collision.KindCard})
	require.True(t, ok)
	assert.Equal(t, float64(32), r.Left)

	r, ok = l.ItemRect(drag.Item{ID: "C", Kind: collision.KindColumn})
	require.True(t, ok)
	assert.Equal(t, float64(60), r.Left)

	_, ok = l.ItemRect(drag.Item{ID: "C", Kind: collision.KindCard})
	assert.False(t, ok)
}

func TestColumnAt(t *testing.T) {
	l := Compute(makeTestBoard(), 90, 30, DefaultMetrics())

	id, ok := l.ColumnAt(45, 20)
	require.True(t, ok)
	assert.Equal(t, "B", id)

	_, ok = l.ColumnAt(120, 20)
	assert.False(t, ok)
}
