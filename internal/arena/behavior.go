package arena

import (
	"fmt"

	"github.com/vovakirdan/brick-arena/internal/core"
)

// TemporaryDuration is how long weakening and strengthening last.
const TemporaryDuration = 5000

// maxInstantResolutions bounds consecutive zero-time resolutions before
// instant candidates are ignored for the rest of the step.
const maxInstantResolutions = 4

// BehaviorKind names the observable state of a ball.
type BehaviorKind int

const (
	BehaviorStandard BehaviorKind = iota
	BehaviorWeak
	BehaviorStrong
	BehaviorKey
)

func (k BehaviorKind) String() string {
	switch k {
	case BehaviorStandard:
		return "standard"
	case BehaviorWeak:
		return "weak"
	case BehaviorStrong:
		return "strong"
	case BehaviorKey:
		return "key"
	default:
		return "unknown"
	}
}

// Behavior decides how a ball reacts to what it strikes. The set of
// behaviors is closed.
type Behavior interface {
	Kind() BehaviorKind
	Color() core.Color
	update(s *State, ball *Ball, elapsed int64)
}

// resolver reacts to the collisions found while advancing a ball.
type resolver interface {
	bounceOffWall(s *State, ball *Ball, c *Collision)
	bounceOffPaddle(s *State, ball *Ball, c *Collision)
	bounceOffBrick(s *State, ball *Ball, c *BrickCollision)
	ballLost(s *State, ball *Ball)
}

// advance moves ball through elapsed units, resolving the strictly earliest
// collision each round. Equal-time candidates cancel each other and the ball
// then travels the remaining time in a straight line.
func advance(s *State, ball *Ball, r resolver, elapsed int64) {
	var minTime int64
	instant := 0
	for elapsed > 0 {
		wall := s.findWallCollision(ball, minTime)
		paddle := s.paddle.FindCollision(ball.geometry, ball.velocity)
		if paddle != nil && paddle.Time < minTime {
			paddle = nil
		}
		brick := s.grid.FindEarliestCollision(ball.geometry, ball.velocity)
		if brick != nil && brick.Time < minTime {
			brick = nil
		}
		tWall, tPaddle, tBrick := timeOf(wall), timeOf(paddle), timeOf(brick)
		before, bricks := ball.velocity, s.grid.Len()

		var spent int64
		switch {
		case isClosest(tWall, tPaddle, tBrick) && tWall <= elapsed:
			r.bounceOffWall(s, ball, wall)
			spent = tWall
		case isClosest(tPaddle, tWall, tBrick) && tPaddle <= elapsed:
			r.bounceOffPaddle(s, ball, paddle)
			spent = tPaddle
		case isClosest(tBrick, tWall, tPaddle) && tBrick <= elapsed:
			r.bounceOffBrick(s, ball, brick)
			spent = tBrick
		default:
			ball.Move(elapsed)
			spent = elapsed
		}
		elapsed -= spent

		if !s.HasBall(ball) {
			return
		}
		if spent > 0 {
			minTime, instant = 0, 0
			continue
		}
		// An instant resolution that changed nothing would be found again.
		instant++
		if (ball.velocity == before && s.grid.Len() == bricks) || instant >= maxInstantResolutions {
			minTime = 1
		}
	}
	if s.IsBallLost(ball) {
		r.ballLost(s, ball)
	}
}

// physics holds the resolutions shared by all behaviors.
type physics struct{}

func (physics) bounceOffWall(_ *State, ball *Ball, c *Collision) {
	ball.Move(c.Time)
	ball.reflect(c.KiloNormal)
}

func (physics) bounceOffPaddle(_ *State, ball *Ball, c *Collision) {
	ball.Move(c.Time)
	ball.reflect(c.KiloNormal)
}

func (physics) ballLost(s *State, ball *Ball) {
	s.RemoveBall(ball)
	s.logger.Debug("ball lost", "ball", ball.id)
}

// Standard balls destroy what they hit and bounce off everything.
type Standard struct {
	physics
}

func NewStandard() *Standard { return &Standard{} }

func (*Standard) Kind() BehaviorKind { return BehaviorStandard }
func (*Standard) Color() core.Color { return core.ColorBrightWhite }

func (b *Standard) update(s *State, ball *Ball, elapsed int64) {
	advance(s, ball, b, elapsed)
}

func (*Standard) bounceOffBrick(s *State, ball *Ball, c *BrickCollision) {
	ball.Move(c.Time)
	if brick, ok := s.grid.Brick(c.Brick); ok {
		brick.Hit(s, ball)
	}
	ball.reflect(c.KiloNormal)
}

// Weak balls bounce off bricks without damaging them.
type Weak struct {
	physics
}

func NewWeak() *Weak { return &Weak{} }

func (*Weak) Kind() BehaviorKind { return BehaviorWeak }
func (*Weak) Color() core.Color { return core.ColorGray }

func (b *Weak) update(s *State, ball *Ball, elapsed int64) {
	advance(s, ball, b, elapsed)
}

func (*Weak) bounceOffBrick(_ *State, ball *Ball, c *BrickCollision) {
	ball.Move(c.Time)
	ball.reflect(c.KiloNormal)
}

// Strong balls strike bricks with a strong hit and plough straight through
// the ones they destroy.
type Strong struct {
	physics
}

func NewStrong() *Strong { return &Strong{} }

func (*Strong) Kind() BehaviorKind { return BehaviorStrong }
func (*Strong) Color() core.Color { return core.ColorRed }

func (b *Strong) update(s *State, ball *Ball, elapsed int64) {
	advance(s, ball, b, elapsed)
}

func (*Strong) bounceOffBrick(s *State, ball *Ball, c *BrickCollision) {
	ball.Move(c.Time)
	destroyed := false
	if brick, ok := s.grid.Brick(c.Brick); ok {
		destroyed = brick.StrongHit(s, ball)
	}
	if !destroyed {
		ball.reflect(c.KiloNormal)
	}
}

// Effect selects what a Temporary behavior wraps.
type Effect int

const (
	EffectWeak Effect = iota
	EffectStrong
)

type effectBehavior interface {
	Behavior
	resolver
}

// Temporary acts like its wrapped effect until its countdown runs out, then
// hands the ball back to Standard.
type Temporary struct {
	inner    effectBehavior
	timeLeft int64
}

// NewTemporary wraps effect for duration units.
func NewTemporary(effect Effect, duration int64) *Temporary {
	if duration < 0 {
		panic(fmt.Sprintf("arena: negative temporary duration %d", duration))
	}
	var inner effectBehavior
	switch effect {
	case EffectWeak:
		inner = NewWeak()
	case EffectStrong:
		inner = NewStrong()
	default:
		panic(fmt.Sprintf("arena: unknown effect %d", effect))
	}
	return &Temporary{inner: inner, timeLeft: duration}
}

// NewWeakening returns a fresh weak effect of TemporaryDuration.
func NewWeakening() *Temporary { return NewTemporary(EffectWeak, TemporaryDuration) }

// NewStrengthening returns a fresh strong effect of TemporaryDuration.
func NewStrengthening() *Temporary { return NewTemporary(EffectStrong, TemporaryDuration) }

func (t *Temporary) Kind() BehaviorKind { return t.inner.Kind() }
func (t *Temporary) Color() core.Color { return t.inner.Color() }

// TimeLeft returns the remaining duration of the effect.
func (t *Temporary) TimeLeft() int64 { return t.timeLeft }

func (t *Temporary) update(s *State, ball *Ball, elapsed int64) {
	if t.timeLeft > elapsed {
		advance(s, ball, t.inner, elapsed)
		t.timeLeft -= elapsed
		return
	}
	spent := t.timeLeft
	advance(s, ball, t.inner, spent)
	t.timeLeft = 0
	if !s.HasBall(ball) {
		return
	}
	// A brick may already have swapped in a fresh effect.
	if ball.behavior == Behavior(t) {
		s.setBehavior(ball, NewStandard())
	}
	ball.behavior.update(s, ball, elapsed-spent)
}
