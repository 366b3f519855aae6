package geom

import "fmt"

// Point is a position in world coordinates.
type Point struct {
	X, Y int64
}

// NewPoint creates a point.
func NewPoint(x, y int64) Point {
	return Point{X: x, Y: y}
}

// Add translates p by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub translates p by -v.
func (p Point) Sub(v Vector) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// VectorTo returns the displacement from p to q.
func (p Point) VectorTo(q Point) Vector {
	return Vector{X: q.X - p.X, Y: q.Y - p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
