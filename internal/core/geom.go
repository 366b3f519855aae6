// Package core provides the screen-side building blocks shared by the
// terminal front ends: cell rectangles, a colored character buffer, colors
// and input actions. It has no external dependencies (especially no Bubble
// Tea) so it stays easy to test.
package core

// Rect is an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCorners spans the cells from (x1, y1) up to but excluding (x2, y2).
// Inverted corners yield an empty rectangle.
func RectFromCorners(x1, y1, x2, y2 int) Rect {
	return Rect{X: x1, Y: y1, W: max(x2-x1, 0), H: max(y2-y1, 0)}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlap of two rectangles, empty if they are disjoint.
func (r Rect) Intersect(other Rect) Rect {
	return RectFromCorners(
		max(r.X, other.X), max(r.Y, other.Y),
		min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom()),
	)
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
