package arena

import "github.com/vovakirdan/brick-arena/internal/geom"

// Wall is an infinite boundary of the playing field.
type Wall interface {
	FindCollision(ball geom.Circle, velocity geom.Vector) *Collision
}

// NorthWall is the ceiling at height Y.
type NorthWall struct {
	Y int64
}

func (w NorthWall) FindCollision(ball geom.Circle, velocity geom.Vector) *Collision {
	top := ball.Top()
	if velocity.Y < 0 && top > w.Y {
		return &Collision{Time: (top - w.Y) / -velocity.Y, KiloNormal: geom.KiloDown}
	}
	return nil
}

// EastWall is the right boundary at X.
type EastWall struct {
	X int64
}

func (w EastWall) FindCollision(ball geom.Circle, velocity geom.Vector) *Collision {
	right := ball.Right()
	if velocity.X > 0 && right <= w.X {
		return &Collision{Time: (w.X - right) / velocity.X, KiloNormal: geom.KiloLeft}
	}
	return nil
}

// WestWall is the left boundary at X.
type WestWall struct {
	X int64
}

func (w WestWall) FindCollision(ball geom.Circle, velocity geom.Vector) *Collision {
	left := ball.Left()
	if velocity.X < 0 && left >= w.X {
		return &Collision{Time: (left - w.X) / -velocity.X, KiloNormal: geom.KiloRight}
	}
	return nil
}
