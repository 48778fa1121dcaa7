package collision

import (
	"cmp"
	"slices"
)

// Kind tells columns and cards apart.
type Kind int

const (
	KindColumn Kind = iota
	KindCard
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindCard:
		return "card"
	default:
		return "unknown"
	}
}

// Droppable is a candidate drop target. ColumnID is the owning column for
// cards and empty for columns.
type Droppable struct {
	ID       string
	Kind     Kind
	ColumnID string
	Rect     Rect
}

// Collision is one droppable hit with the score that ranked it.
type Collision struct {
	ID    string
	Value float64
}

// Args is the geometry a strategy works from.
type Args struct {
	// Active is the dragged item's rect, translated to where it is now.
	Active Rect
	// Pointer is nil when the sensor reports no pointer position.
	Pointer    *Point
	Droppables []Droppable
}

// Strategy ranks droppables against the dragged item, best first.
type Strategy func(Args) []Collision

func sortAscending(c []Collision) []Collision {
	slices.SortStableFunc(c, func(a, b Collision) int { return cmp.Compare(a.Value, b.Value) })
	return c
}

func meanCornerDistance(corners [4]Point, target Rect) float64 {
	sum := 0.0
	for i, p := range target.Corners() {
		sum += distance(corners[i], p)
	}
	return sum / 4
}

// ClosestCorners ranks by the mean distance between the four corresponding
// corners of the active rect and each droppable.
func ClosestCorners(args Args) []Collision {
	corners := args.Active.Corners()
	out := make([]Collision, 0, len(args.Droppables))
	for _, d := range args.Droppables {
		out = append(out, Collision{ID: d.ID, Value: meanCornerDistance(corners, d.Rect)})
	}
	return sortAscending(out)
}

// ClosestCenter ranks by the distance between centers.
func ClosestCenter(args Args) []Collision {
	center := args.Active.Center()
	out := make([]Collision, 0, len(args.Droppables))
	for _, d := range args.Droppables {
		out = append(out, Collision{ID: d.ID, Value: distance(center, d.Rect.Center())})
	}
	return sortAscending(out)
}

// PointerWithin keeps droppables containing the pointer, nearest first by
// mean pointer-to-corner distance.
func PointerWithin(args Args) []Collision {
	if args.Pointer == nil {
		return nil
	}
	p := *args.Pointer
	corners := [4]Point{p, p, p, p}

	var out []Collision
	for _, d := range args.Droppables {
		if d.Rect.Contains(p) {
			out = append(out, Collision{ID: d.ID, Value: meanCornerDistance(corners, d.Rect)})
		}
	}
	return sortAscending(out)
}

// RectIntersection keeps droppables overlapping the active rect, largest
// intersection ratio first.
func RectIntersection(args Args) []Collision {
	var out []Collision
	for _, d := range args.Droppables {
		if ratio := args.Active.IntersectionRatio(d.Rect); ratio > 0 {
			out = append(out, Collision{ID: d.ID, Value: ratio})
		}
	}
	slices.SortStableFunc(out, func(a, b Collision) int { return cmp.Compare(b.Value, a.Value) })
	return out
}

// FirstCollision returns the ID of the best hit.
func FirstCollision(c []Collision) (string, bool) {
	if len(c) == 0 {
		return "", false
	}
	return c[0].ID, true
}
