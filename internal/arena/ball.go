package arena

import "github.com/vovakirdan/brick-arena/internal/geom"

// Speed scaling factors (thousandths) and the squared-speed window inside
// which SpeedUp and SlowDown take effect.
const (
	SpeedUpFactor               = 1050
	SlowDownFactor              = 950
	MinimumSlowdownSquaredSpeed = 5 * 5
	MaximumSpeedupSquaredSpeed  = 80 * 80
)

// BallID identifies a ball within a State.
type BallID int

// Ball is a moving circle. Velocity is in distance units per millisecond.
type Ball struct {
	id       BallID
	geometry geom.Circle
	velocity geom.Vector
	behavior Behavior
	allowed  geom.Rectangle
}

func (b *Ball) ID() BallID { return b.id }
func (b *Ball) Geometry() geom.Circle { return b.geometry }
func (b *Ball) Center() geom.Point { return b.geometry.Center }
func (b *Ball) Velocity() geom.Vector { return b.velocity }
func (b *Ball) Behavior() Behavior { return b.behavior }
func (b *Ball) AllowedArea() geom.Rectangle { return b.allowed }

// SetVelocity replaces the velocity without applying the speed window.
func (b *Ball) SetVelocity(v geom.Vector) {
	b.velocity = v
}

// Destination returns where the ball ends up after elapsed in a straight line.
func (b *Ball) Destination(elapsed int64) geom.Circle {
	return b.geometry.Move(b.velocity.Scale(elapsed))
}

// Move advances the ball in a straight line, ignoring obstacles.
func (b *Ball) Move(elapsed int64) {
	b.geometry = b.Destination(elapsed)
}

// IsValidScaledVelocity reports whether v's squared length lies in the
// speed window.
func IsValidScaledVelocity(v geom.Vector) bool {
	sq := v.SquaredLength()
	return MinimumSlowdownSquaredSpeed <= sq && sq <= MaximumSpeedupSquaredSpeed
}

func (b *Ball) scaleVelocity(kilofactor int64) {
	scaled := b.velocity.Scale(kilofactor).Div(1000)
	if IsValidScaledVelocity(scaled) {
		b.velocity = scaled
	}
}

// SpeedUp scales the velocity by SpeedUpFactor unless that leaves the window.
func (b *Ball) SpeedUp() {
	b.scaleVelocity(SpeedUpFactor)
}

// SlowDown scales the velocity by SlowDownFactor unless that leaves the window.
func (b *Ball) SlowDown() {
	b.scaleVelocity(SlowDownFactor)
}

func (b *Ball) reflect(kiloNormal geom.Vector) {
	b.velocity = b.velocity.KiloBounce(kiloNormal)
}
