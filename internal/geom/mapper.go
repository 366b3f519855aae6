package geom

// IntervalMapper maps positions in Source proportionally onto Target.
type IntervalMapper struct {
	Source Interval
	Target Interval
}

// NewIntervalMapper creates a mapper. Panics when source is empty.
func NewIntervalMapper(source, target Interval) IntervalMapper {
	if source.Width() == 0 {
		panic("geom: interval mapper with empty source")
	}
	return IntervalMapper{Source: source, Target: target}
}

// Map translates x from source to target coordinates.
func (m IntervalMapper) Map(x int64) int64 {
	return m.Target.FromRelative(m.Source.ToRelative(x))
}

// CoordinateMapper maps points axis by axis.
type CoordinateMapper struct {
	X IntervalMapper
	Y IntervalMapper
}

// NewCoordinateMapper maps the rectangle from onto the rectangle to.
func NewCoordinateMapper(from, to Rectangle) CoordinateMapper {
	return CoordinateMapper{
		X: NewIntervalMapper(NewInterval(from.Left, from.Right()), NewInterval(to.Left, to.Right())),
		Y: NewIntervalMapper(NewInterval(from.Top, from.Bottom()), NewInterval(to.Top, to.Bottom())),
	}
}

// Map translates p.
func (m CoordinateMapper) Map(p Point) Point {
	return Point{X: m.X.Map(p.X), Y: m.Y.Map(p.Y)}
}

// MapRect translates both corners of r.
func (m CoordinateMapper) MapRect(r Rectangle) Rectangle {
	tl := m.Map(r.TopLeft())
	br := m.Map(r.BottomRight())
	return Rectangle{Left: tl.X, Top: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}
