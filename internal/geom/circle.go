package geom

// Circle is a ball-shaped region.
type Circle struct {
	Center Point
	Radius int64
}

// NewCircle creates a circle. Panics on a negative radius.
func NewCircle(center Point, radius int64) Circle {
	if radius < 0 {
		panic("geom: negative circle radius")
	}
	return Circle{Center: center, Radius: radius}
}

func (c Circle) Left() int64 { return c.Center.X - c.Radius }
func (c Circle) Right() int64 { return c.Center.X + c.Radius }
func (c Circle) Top() int64 { return c.Center.Y - c.Radius }
func (c Circle) Bottom() int64 { return c.Center.Y + c.Radius }

// Leftmost returns the extremal point of c in each axis direction.
func (c Circle) Leftmost() Point { return Point{X: c.Left(), Y: c.Center.Y} }
func (c Circle) Rightmost() Point { return Point{X: c.Right(), Y: c.Center.Y} }
func (c Circle) Topmost() Point { return Point{X: c.Center.X, Y: c.Top()} }
func (c Circle) Bottommost() Point { return Point{X: c.Center.X, Y: c.Bottom()} }

// PointInDirection returns the point on the rim reached by travelling from
// the center along direction. Panics on the zero vector.
func (c Circle) PointInDirection(direction Vector) Point {
	return c.Center.Add(direction.Scale(c.Radius).Div(direction.Length()))
}

// BoundingRect returns the smallest rectangle containing c.
func (c Circle) BoundingRect() Rectangle {
	return Rectangle{Left: c.Left(), Top: c.Top(), Width: 2 * c.Radius, Height: 2 * c.Radius}
}

// Move translates c by v.
func (c Circle) Move(v Vector) Circle {
	return Circle{Center: c.Center.Add(v), Radius: c.Radius}
}

// MoveTo recenters c at p.
func (c Circle) MoveTo(p Point) Circle {
	return Circle{Center: p, Radius: c.Radius}
}
