package geom

import (
	"fmt"
	"math"
)

// PrecisionFactor is the resolution of relative interval positions.
const PrecisionFactor = 1000

// Interval is the closed range [Lower, Upper].
type Interval struct {
	Lower, Upper int64
}

// NewInterval creates an interval. Panics when lower > upper.
func NewInterval(lower, upper int64) Interval {
	if lower > upper {
		panic(fmt.Sprintf("geom: inverted interval [%d, %d]", lower, upper))
	}
	return Interval{Lower: lower, Upper: upper}
}

// MaximalInterval spans the whole int64 range.
func MaximalInterval() Interval {
	return Interval{Lower: math.MinInt64, Upper: math.MaxInt64}
}

// Width returns Upper - Lower.
func (i Interval) Width() int64 {
	return i.Upper - i.Lower
}

// Contains reports whether x lies in the interval.
func (i Interval) Contains(x int64) bool {
	return i.Lower <= x && x <= i.Upper
}

// ToRelative maps x to its position in thousandths of the width.
func (i Interval) ToRelative(x int64) int64 {
	if i.Width() == 0 {
		panic("geom: relative position in empty interval")
	}
	return (x - i.Lower) * PrecisionFactor / i.Width()
}

// FromRelative is the inverse of ToRelative.
func (i Interval) FromRelative(rel int64) int64 {
	return i.Width()*rel/PrecisionFactor + i.Lower
}
