package geom

import "fmt"

// Rectangle covers [Left, Left+Width] × [Top, Top+Height].
type Rectangle struct {
	Left, Top     int64
	Width, Height int64
}

// NewRect creates a rectangle. Panics on negative dimensions.
func NewRect(left, top, width, height int64) Rectangle {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("geom: negative rectangle size %dx%d", width, height))
	}
	return Rectangle{Left: left, Top: top, Width: width, Height: height}
}

// RectFromCorners creates the rectangle spanned by two opposite corners.
func RectFromCorners(topLeft, bottomRight Point) Rectangle {
	return NewRect(topLeft.X, topLeft.Y, bottomRight.X-topLeft.X, bottomRight.Y-topLeft.Y)
}

// Right returns the x-coordinate of the right edge.
func (r Rectangle) Right() int64 {
	return r.Left + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rectangle) Bottom() int64 {
	return r.Top + r.Height
}

func (r Rectangle) TopLeft() Point { return Point{X: r.Left, Y: r.Top} }
func (r Rectangle) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// BottomCenter returns the middle of the bottom edge.
func (r Rectangle) BottomCenter() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Bottom()}
}

// Center returns the middle of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rectangle) Contains(p Point) bool {
	return r.Left <= p.X && p.X <= r.Right() && r.Top <= p.Y && p.Y <= r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	return r.Contains(o.TopLeft()) && r.Contains(o.BottomRight())
}

// ContainsCircle reports whether c lies entirely inside r.
func (r Rectangle) ContainsCircle(c Circle) bool {
	return r.ContainsRect(c.BoundingRect())
}

// GrowHeight returns r extended downwards by extra.
func (r Rectangle) GrowHeight(extra int64) Rectangle {
	return NewRect(r.Left, r.Top, r.Width, r.Height+extra)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle[left=%d, top=%d, width=%d, height=%d]", r.Left, r.Top, r.Width, r.Height)
}
