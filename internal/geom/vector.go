// Package geom provides the fixed-point integer geometry used by the arena
// simulation. All quantities are int64 with Y growing downwards; there is no
// floating point anywhere in the arithmetic.
package geom

import (
	"fmt"
	"math"
)

// KiloTolerance is how far a kilo vector's length may stray from 1000.
const KiloTolerance = 5

// Vector is a displacement or direction.
type Vector struct {
	X, Y int64
}

// Unit and kilo-unit direction vectors.
var (
	Down  = Vector{X: 0, Y: 1}
	Up    = Vector{X: 0, Y: -1}
	Right = Vector{X: 1, Y: 0}
	Left  = Vector{X: -1, Y: 0}

	KiloDown      = Vector{X: 0, Y: 1000}
	KiloUp        = Vector{X: 0, Y: -1000}
	KiloRight     = Vector{X: 1000, Y: 0}
	KiloLeft      = Vector{X: -1000, Y: 0}
	KiloUpLeft    = Vector{X: -707, Y: -707}
	KiloUpRight   = Vector{X: 707, Y: -707}
	KiloDownLeft  = Vector{X: -707, Y: 707}
	KiloDownRight = Vector{X: 707, Y: 707}
)

// NewVector creates a vector.
func NewVector(x, y int64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by factor.
func (v Vector) Scale(factor int64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Div divides both components by d, truncating toward zero.
// Panics when d is zero.
func (v Vector) Div(d int64) Vector {
	if d == 0 {
		panic("geom: vector divided by zero")
	}
	return Vector{X: v.X / d, Y: v.Y / d}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) int64 {
	return v.X*o.X + v.Y*o.Y
}

// SquaredLength returns v·v.
func (v Vector) SquaredLength() int64 {
	return v.Dot(v)
}

// Length returns the floor of the euclidean length.
func (v Vector) Length() int64 {
	return Sqrt(v.SquaredLength())
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rescale returns v stretched to approximately newLength.
// Panics on the zero vector.
func (v Vector) Rescale(newLength int64) Vector {
	length := v.Length()
	if length == 0 {
		panic("geom: cannot rescale zero-length vector")
	}
	return v.Scale(newLength).Div(length)
}

// KiloBounce reflects v off a surface with the given kilo normal:
// v' = (v·10⁶ − n·2(v·n)) / 10⁶.
func (v Vector) KiloBounce(kiloNormal Vector) Vector {
	return v.Scale(1_000_000).Sub(kiloNormal.Scale(2 * v.Dot(kiloNormal))).Div(1_000_000)
}

// IsUnit reports whether v is one of the four axis-aligned unit vectors.
func (v Vector) IsUnit() bool {
	return (abs(v.X) == 1 && v.Y == 0) || (v.X == 0 && abs(v.Y) == 1)
}

// IsKilo reports whether v has length 1000 within KiloTolerance.
func (v Vector) IsKilo() bool {
	return abs(v.Length()-1000) < KiloTolerance
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Sqrt returns the floor of the square root of n. Panics on negative input.
func Sqrt(n int64) int64 {
	if n < 0 {
		panic("geom: square root of negative number")
	}
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
