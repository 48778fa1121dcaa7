// Package collision decides which droppable entity is under a dragged item.
package collision

import "math"

// Point is a position in board coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in board coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the center point of the rect
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Corners returns top-left, top-right, bottom-left, bottom-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right(), Y: r.Top},
		{X: r.Left, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// IntersectionRatio returns the overlap area divided by the union area of the
// two rects, in [0, 1].
func (r Rect) IntersectionRatio(other Rect) float64 {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return 0
	}

	overlap := (right - left) * (bottom - top)
	union := r.Width*r.Height + other.Width*other.Height - overlap
	if union <= 0 {
		return 0
	}
	return overlap / union
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
