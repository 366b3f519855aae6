package arena

import (
	"strconv"

	"github.com/vovakirdan/brick-arena/internal/core"
	"github.com/vovakirdan/brick-arena/internal/geom"
)

// BallView is the read-only drawing data of a ball.
type BallView struct {
	Geometry geom.Circle
	Color    core.Color
	Label    string

	// Target is the center of the locked brick a key-ball is after.
	Target    geom.Point
	HasTarget bool
}

// BrickView is the read-only drawing data of a brick.
type BrickView struct {
	Geometry geom.Rectangle
	Color    core.Color
	Label    string
	Kind     Kind
}

// Frame is everything a renderer needs for one frame.
type Frame struct {
	Field   geom.Rectangle
	Paddle  geom.Rectangle
	Balls   []BallView
	Bricks  []BrickView
	Elapsed int64
	Won     bool
	Lost    bool
}

// Frame captures the current state for rendering.
func (s *State) Frame() Frame {
	f := Frame{
		Field:   s.BoundingRect(),
		Paddle:  s.paddle.Geometry(),
		Balls:   make([]BallView, 0, len(s.balls)),
		Bricks:  make([]BrickView, 0, s.grid.Len()),
		Elapsed: s.elapsed,
		Won:     s.IsWon(),
		Lost:    s.IsLost(),
	}
	for _, b := range s.grid.Bricks() {
		f.Bricks = append(f.Bricks, BrickView{
			Geometry: b.geometry,
			Color:    b.Color(),
			Label:    b.Label(),
			Kind:     b.Kind(),
		})
	}
	for _, ball := range s.balls {
		v := BallView{Geometry: ball.geometry, Color: ball.behavior.Color()}
		if key, ok := ball.behavior.(*KeyBall); ok {
			v.Label = strconv.Itoa(key.speedModifier)
			if lock, ok := s.grid.Brick(key.lock); ok {
				v.Target = lock.geometry.Center()
				v.HasTarget = true
			}
		}
		f.Balls = append(f.Balls, v)
	}
	return f
}
