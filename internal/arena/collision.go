package arena

import (
	"math"

	"github.com/vovakirdan/brick-arena/internal/geom"
)

// Collision predicts an impact Time units from now against a surface whose
// inward normal is KiloNormal.
type Collision struct {
	Time       int64
	KiloNormal geom.Vector
}

// Until returns the time left before impact.
func (c *Collision) Until() int64 {
	return c.Time
}

// BrickCollision is a Collision with a brick.
type BrickCollision struct {
	Collision
	Brick BrickID
}

type candidate interface {
	comparable
	Until() int64
}

// Earliest returns whichever collision happens first. A nil collision never
// happens. On equal times a is returned.
func Earliest[C candidate](a, b C) C {
	var none C
	if a == none {
		return b
	}
	if b == none {
		return a
	}
	if b.Until() < a.Until() {
		return b
	}
	return a
}

func timeOf[C candidate](c C) int64 {
	var none C
	if c == none {
		return math.MaxInt64
	}
	return c.Until()
}

// isClosest requires t1 to be strictly smaller than both rivals; simultaneous
// impacts therefore select nothing.
func isClosest(t1, t2, t3 int64) bool {
	return t1 < t2 && t1 < t3
}
