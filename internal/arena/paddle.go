package arena

import (
	"fmt"

	"github.com/vovakirdan/brick-arena/internal/geom"
)

// Paddle dimensions and scaling factors (thousandths).
const (
	PaddleHeight = 1000
	GrowFactor   = 1100
	ShrinkFactor = 900
)

// Direction is the paddle's current motion.
type Direction int

const (
	Stationary Direction = iota
	MovingLeft
	MovingRight
)

func (d Direction) String() string {
	switch d {
	case Stationary:
		return "stationary"
	case MovingLeft:
		return "left"
	case MovingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Paddle is the player-controlled bat. Its span
// [center-halfWidth, center+halfWidth] always lies inside the allowed interval.
type Paddle struct {
	topCenter geom.Point
	halfWidth int64
	speed     int64
	direction Direction
	allowed   geom.Interval
}

// NewPaddle creates a paddle centered at topCenter, clamped into allowed.
func NewPaddle(allowed geom.Interval, topCenter geom.Point, halfWidth, speed int64) *Paddle {
	if allowed.Width() <= 0 {
		panic("arena: paddle needs a non-empty allowed interval")
	}
	if halfWidth <= 0 {
		panic(fmt.Sprintf("arena: paddle half width must be positive, got %d", halfWidth))
	}
	if speed < 0 {
		panic(fmt.Sprintf("arena: paddle speed must not be negative, got %d", speed))
	}
	p := &Paddle{
		topCenter: topCenter,
		halfWidth: min(halfWidth, allowed.Width()/2),
		speed:     speed,
		allowed:   allowed,
	}
	p.topCenter.X = p.Clamp(topCenter.X)
	return p
}

func (p *Paddle) TopCenter() geom.Point { return p.topCenter }
func (p *Paddle) HalfWidth() int64 { return p.halfWidth }
func (p *Paddle) Width() int64 { return 2 * p.halfWidth }
func (p *Paddle) Height() int64 { return PaddleHeight }
func (p *Paddle) Speed() int64 { return p.speed }
func (p *Paddle) Direction() Direction { return p.direction }
func (p *Paddle) SetDirection(d Direction) { p.direction = d }
func (p *Paddle) AllowedInterval() geom.Interval { return p.allowed }

// Geometry returns the paddle's rectangle.
func (p *Paddle) Geometry() geom.Rectangle {
	return geom.NewRect(p.topCenter.X-p.halfWidth, p.topCenter.Y, p.Width(), PaddleHeight)
}

// SetTopCenterX moves the paddle to x, clamped.
func (p *Paddle) SetTopCenterX(x int64) {
	p.topCenter.X = p.Clamp(x)
}

// Move shifts the paddle horizontally by distance, clamped.
func (p *Paddle) Move(distance int64) {
	p.SetTopCenterX(p.topCenter.X + distance)
}

// Tick advances the paddle along its direction.
func (p *Paddle) Tick(elapsed int64) {
	p.Move(p.ComputeMovementDistance(elapsed))
}

// ComputeMovementDistance returns the signed travel over elapsed.
func (p *Paddle) ComputeMovementDistance(elapsed int64) int64 {
	switch p.direction {
	case MovingLeft:
		return -p.speed * elapsed
	case MovingRight:
		return p.speed * elapsed
	default:
		return 0
	}
}

// Clamp returns the center x closest to x that keeps the paddle in bounds.
func (p *Paddle) Clamp(x int64) int64 {
	if x-p.halfWidth < p.allowed.Lower {
		return p.allowed.Lower + p.halfWidth
	}
	if x+p.halfWidth > p.allowed.Upper {
		return p.allowed.Upper - p.halfWidth
	}
	return x
}

// Scale multiplies the width by kilofactor/1000, capped at the allowed
// width, and re-centers the paddle inside its bounds.
func (p *Paddle) Scale(kilofactor int64) {
	hw := p.halfWidth * kilofactor / 1000
	hw = min(hw, p.allowed.Width()/2)
	p.halfWidth = max(hw, 1)
	p.topCenter.X = p.Clamp(p.topCenter.X)
}

func (p *Paddle) Grow() { p.Scale(GrowFactor) }
func (p *Paddle) Shrink() { p.Scale(ShrinkFactor) }

// FindCollision predicts when the ball's bottom reaches the paddle's top edge.
func (p *Paddle) FindCollision(ball geom.Circle, velocity geom.Vector) *Collision {
	bottom := ball.Bottommost()
	if velocity.Y <= 0 || bottom.Y >= p.topCenter.Y {
		return nil
	}
	t := (p.topCenter.Y - bottom.Y) / velocity.Y
	x := bottom.X + t*velocity.X
	if p.topCenter.X-p.halfWidth <= x && x <= p.topCenter.X+p.halfWidth {
		return &Collision{Time: t, KiloNormal: p.KiloNormal(x)}
	}
	return nil
}

// KiloNormal returns the surface normal at x. The top edge acts as a curve:
// the further from the center, the more the normal tilts outwards.
func (p *Paddle) KiloNormal(x int64) geom.Vector {
	rel := (x - p.topCenter.X) * 1000 / p.halfWidth
	return geom.NewVector(rel/3, -1000).Rescale(1000)
}
