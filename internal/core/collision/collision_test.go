package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectGeometry(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 30, Height: 40}

	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, Point{X: 25, Y: 40}, r.Center())
	assert.Equal(t, [4]Point{{10, 20}, {40, 20}, {10, 60}, {40, 60}}, r.Corners())

	assert.True(t, r.Contains(Point{X: 10, Y: 20}), "edges count")
	assert.True(t, r.Contains(Point{X: 25, Y: 40}))
	assert.False(t, r.Contains(Point{X: 41, Y: 40}))

	assert.Equal(t, Rect{Left: 15, Top: 10, Width: 30, Height: 40}, r.Translate(5, -10))
}

func TestIntersectionRatio(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Width: 10, Height: 10}

	assert.Equal(t, 1.0, a.IntersectionRatio(a))
	assert.Equal(t, 0.0, a.IntersectionRatio(Rect{Left: 10, Top: 0, Width: 10, Height: 10}), "touching edges")
	assert.Equal(t, 0.0, a.IntersectionRatio(Rect{Left: 50, Top: 50, Width: 1, Height: 1}))
	// overlap 50, union 150
	assert.InDelta(t, 1.0/3.0, a.IntersectionRatio(Rect{Left: 5, Top: 0, Width: 10, Height: 10}), 1e-9)
}

func columns() []Droppable {
	return []Droppable{
		{ID: "A", Kind: KindColumn, Rect: Rect{Left: 0, Top: 0, Width: 100, Height: 300}},
		{ID: "B", Kind: KindColumn, Rect: Rect{Left: 110, Top: 0, Width: 100, Height: 300}},
		{ID: "C", Kind: KindColumn, Rect: Rect{Left: 220, Top: 0, Width: 100, Height: 300}},
	}
}

// Column A holds c1, c2; column B holds c3; column C is empty.
func board() []Droppable {
	return append(columns(),
		Droppable{ID: "c1", Kind: KindCard, ColumnID: "A", Rect: Rect{Left: 5, Top: 20, Width: 90, Height: 40}},
		Droppable{ID: "c2", Kind: KindCard, ColumnID: "A", Rect: Rect{Left: 5, Top: 70, Width: 90, Height: 40}},
		Droppable{ID: "c3", Kind: KindCard, ColumnID: "B", Rect: Rect{Left: 115, Top: 20, Width: 90, Height: 40}},
	)
}

func ids(c []Collision) []string {
	out := make([]string, len(c))
	for i, col := range c {
		out[i] = col.ID
	}
	return out
}

func TestClosestCorners(t *testing.T) {
	got := ClosestCorners(Args{
		Active:     Rect{Left: 200, Top: 10, Width: 100, Height: 300},
		Droppables: columns(),
	})
	assert.Equal(t, []string{"C", "B", "A"}, ids(got))
}

func TestClosestCenter(t *testing.T) {
	got := ClosestCenter(Args{
		Active:     Rect{Left: 5, Top: 65, Width: 90, Height: 40},
		Droppables: board()[3:],
	})
	assert.Equal(t, []string{"c2", "c1", "c3"}, ids(got))
}

func TestPointerWithin(t *testing.T) {
	t.Run("card beats its column", func(t *testing.T) {
		got := PointerWithin(Args{Pointer: &Point{X: 50, Y: 30}, Droppables: board()})
		assert.Equal(t, []string{"c1", "A"}, ids(got))
	})

	t.Run("empty space in column", func(t *testing.T) {
		got := PointerWithin(Args{Pointer: &Point{X: 150, Y: 200}, Droppables: board()})
		assert.Equal(t, []string{"B"}, ids(got))
	})

	t.Run("no pointer", func(t *testing.T) {
		assert.Empty(t, PointerWithin(Args{Droppables: board()}))
	})
}

func TestRectIntersection(t *testing.T) {
	got := RectIntersection(Args{
		Active:     Rect{Left: 100, Top: 20, Width: 90, Height: 40},
		Droppables: board(),
	})
	require.NotEmpty(t, got)
	assert.Equal(t, "c3", got[0].ID)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Value, got[i].Value)
	}
}

func TestFirstCollision(t *testing.T) {
	_, ok := FirstCollision(nil)
	assert.False(t, ok)

	id, ok := FirstCollision([]Collision{{ID: "x"}, {ID: "y"}})
	assert.True(t, ok)
	assert.Equal(t, "x", id)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantID    string
		wantFresh bool
	}{
		{
			name: "column drag uses corners over columns only",
			req: Request{
				Dragging: KindColumn,
				Args: Args{
					Active:     Rect{Left: 215, Top: 0, Width: 100, Height: 300},
					Pointer:    &Point{X: 30, Y: 30},
					Droppables: board(),
				},
			},
			wantID:    "C",
			wantFresh: true,
		},
		{
			name: "card over card",
			req: Request{
				Dragging: KindCard,
				Args: Args{
					Active:     Rect{Left: 110, Top: 15, Width: 90, Height: 40},
					Pointer:    &Point{X: 150, Y: 30},
					Droppables: board(),
				},
			},
			wantID:    "c3",
			wantFresh: true,
		},
		{
			name: "empty column space refines to nearest card",
			req: Request{
				Dragging: KindCard,
				Args: Args{
					Active:     Rect{Left: 10, Top: 200, Width: 90, Height: 40},
					Pointer:    &Point{X: 50, Y: 220},
					Droppables: board(),
				},
			},
			wantID:    "c2",
			wantFresh: true,
		},
		{
			name: "empty column stays the column",
			req: Request{
				Dragging: KindCard,
				Args: Args{
					Active:     Rect{Left: 230, Top: 100, Width: 90, Height: 40},
					Pointer:    &Point{X: 260, Y: 120},
					Droppables: board(),
				},
			},
			wantID:    "C",
			wantFresh: true,
		},
		{
			name: "falls back to rect intersection without pointer hit",
			req: Request{
				Dragging: KindCard,
				Args: Args{
					Active:     Rect{Left: 100, Top: 20, Width: 90, Height: 40},
					Pointer:    &Point{X: 500, Y: 500},
					Droppables: board(),
				},
			},
			wantID:    "c3",
			wantFresh: true,
		},
		{
			name: "nothing hit reuses last target",
			req: Request{
				Dragging: KindCard,
				Args: Args{
					Active:     Rect{Left: 900, Top: 900, Width: 90, Height: 40},
					Pointer:    &Point{X: 950, Y: 920},
					Droppables: board(),
				},
				LastResolvedID: "c1",
			},
			wantID:    "c1",
			wantFresh: false,
		},
		{
			name: "nothing hit and no last target",
			req: Request{
				Dragging: KindCard,
				Args: Args{
					Active:     Rect{Left: 900, Top: 900, Width: 90, Height: 40},
					Pointer:    &Point{X: 950, Y: 920},
					Droppables: board(),
				},
			},
			wantID:    "",
			wantFresh: false,
		},
		{
			name: "column drag with no columns",
			req: Request{
				Dragging:       KindColumn,
				Args:           Args{Active: Rect{Width: 10, Height: 10}},
				LastResolvedID: "A",
			},
			wantID:    "",
			wantFresh: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.req)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantFresh, got.Fresh)
			assert.Equal(t, tt.wantID != "", got.Found())
		})
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup(board(), "c3")
	require.True(t, ok)
	assert.Equal(t, "B", d.ColumnID)

	_, ok = Lookup(board(), "zz")
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "column", KindColumn.String())
	assert.Equal(t, "card", KindCard.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
