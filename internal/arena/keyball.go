package arena

import (
	"github.com/vovakirdan/brick-arena/internal/core"
	"github.com/vovakirdan/brick-arena/internal/geom"
)

// Key-ball speed: KeyBallBaseSpeed plus KeyBallSpeedStep per unit of speed
// modifier, never below KeyBallMinSpeed.
const (
	KeyBallBaseSpeed = 30
	KeyBallSpeedStep = 5
	KeyBallMinSpeed  = 5
)

// keyBallVelocities are handed out in turn to spawned key-balls.
var keyBallVelocities = []geom.Vector{
	{X: -5, Y: 30},
	{X: -2, Y: 30},
	{X: 2, Y: 30},
	{X: 5, Y: 30},
}

// KeyBall carries the key to one locked brick. It flies through the field
// boundaries, bounces off other bricks without harming them and unlocks its
// brick on contact.
type KeyBall struct {
	physics
	lock          BrickID
	speedModifier int
}

func (*KeyBall) Kind() BehaviorKind { return BehaviorKey }
func (*KeyBall) Color() core.Color { return core.ColorBrightMagenta }

// Lock returns the locked brick this key-ball opens.
func (k *KeyBall) Lock() BrickID { return k.lock }

// SpeedModifier returns the bias derived from the lock graph.
func (k *KeyBall) SpeedModifier() int { return k.speedModifier }

// Speed returns the speed the key-ball travels at.
func (k *KeyBall) Speed() int64 {
	return max(KeyBallMinSpeed, KeyBallBaseSpeed+KeyBallSpeedStep*int64(k.speedModifier))
}

func (k *KeyBall) update(s *State, ball *Ball, elapsed int64) {
	if speed := k.Speed(); !ball.velocity.IsZero() && ball.velocity.Length() != speed {
		ball.velocity = ball.velocity.Rescale(speed)
	}
	advance(s, ball, k, elapsed)
}

func (*KeyBall) bounceOffWall(_ *State, ball *Ball, c *Collision) {
	ball.Move(c.Time)
}

func (k *KeyBall) bounceOffBrick(s *State, ball *Ball, c *BrickCollision) {
	ball.Move(c.Time)
	if c.Brick == k.lock {
		if brick, ok := s.grid.Brick(c.Brick); ok {
			brick.Hit(s, ball)
			return
		}
	}
	ball.reflect(c.KiloNormal)
}

func (k *KeyBall) ballLost(s *State, ball *Ball) {
	k.physics.ballLost(s, ball)
	s.releaseKey(k.lock, ball)
}
