package arena

import (
	"strconv"

	"github.com/vovakirdan/brick-arena/internal/core"
	"github.com/vovakirdan/brick-arena/internal/geom"
)

// BrickID identifies a brick for the lifetime of a grid. Zero is never used.
type BrickID int

// Kind names a brick variant.
type Kind int

const (
	KindStandard Kind = iota
	KindSturdy
	KindGrowPaddle
	KindShrinkPaddle
	KindSpeedUp
	KindSlowDown
	KindWeakening
	KindStrengthening
	KindMaster
	KindLocked
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindSturdy:
		return "sturdy"
	case KindGrowPaddle:
		return "grow"
	case KindShrinkPaddle:
		return "shrink"
	case KindSpeedUp:
		return "speed-up"
	case KindSlowDown:
		return "slow-down"
	case KindWeakening:
		return "weakening"
	case KindStrengthening:
		return "strengthening"
	case KindMaster:
		return "master"
	case KindLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// DefaultSturdyLives is the life count of sturdy bricks placed by level maps.
const DefaultSturdyLives = 3

// variant is the closed set of brick behaviors.
type variant interface {
	kind() Kind
	hit(s *State, b *Brick, ball *Ball)
	// strongHit reports whether the brick was destroyed.
	strongHit(s *State, b *Brick, ball *Ball) bool
	color() core.Color
	label() string
}

// Brick occupies one grid cell.
type Brick struct {
	id       BrickID
	cell     geom.Point
	geometry geom.Rectangle
	variant  variant
}

func (b *Brick) ID() BrickID { return b.id }
func (b *Brick) Cell() geom.Point { return b.cell }
func (b *Brick) Geometry() geom.Rectangle { return b.geometry }
func (b *Brick) Kind() Kind { return b.variant.kind() }
func (b *Brick) Color() core.Color { return b.variant.color() }
func (b *Brick) Label() string { return b.variant.label() }

// Lives returns the remaining hits the brick absorbs.
func (b *Brick) Lives() int {
	if s, ok := b.variant.(*sturdyBrick); ok {
		return s.lives
	}
	return 1
}

// Hit applies a regular impact of ball.
func (b *Brick) Hit(s *State, ball *Ball) {
	b.variant.hit(s, b, ball)
}

// StrongHit applies an impact of a strengthened ball and reports whether the
// brick is gone afterwards.
func (b *Brick) StrongHit(s *State, ball *Ball) bool {
	return b.variant.strongHit(s, b, ball)
}

// hitThenGone is the strong hit of every variant that has no special case.
func hitThenGone(v variant, s *State, b *Brick, ball *Ball) bool {
	v.hit(s, b, ball)
	return !s.grid.Contains(b.id)
}

type standardBrick struct{}

func (standardBrick) kind() Kind { return KindStandard }
func (standardBrick) color() core.Color { return core.ColorCyan }
func (standardBrick) label() string { return "" }

func (standardBrick) hit(s *State, b *Brick, _ *Ball) {
	s.destroyBrick(b)
}

func (v standardBrick) strongHit(s *State, b *Brick, ball *Ball) bool {
	return hitThenGone(v, s, b, ball)
}

type sturdyBrick struct {
	lives int
}

func (*sturdyBrick) kind() Kind { return KindSturdy }

func (v *sturdyBrick) color() core.Color {
	switch {
	case v.lives >= 3:
		return core.ColorBlue
	case v.lives == 2:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightCyan
	}
}

func (v *sturdyBrick) label() string { return strconv.Itoa(v.lives) }

func (v *sturdyBrick) hit(s *State, b *Brick, _ *Ball) {
	v.lives--
	if v.lives <= 0 {
		s.destroyBrick(b)
	}
}

func (v *sturdyBrick) strongHit(s *State, b *Brick, _ *Ball) bool {
	v.lives = 0
	s.destroyBrick(b)
	return true
}

type paddleModifierBrick struct {
	grow bool
}

func (v paddleModifierBrick) kind() Kind {
	if v.grow {
		return KindGrowPaddle
	}
	return KindShrinkPaddle
}

func (v paddleModifierBrick) color() core.Color {
	if v.grow {
		return core.ColorGreen
	}
	return core.ColorMagenta
}

func (v paddleModifierBrick) label() string {
	if v.grow {
		return "<>"
	}
	return "><"
}

func (v paddleModifierBrick) hit(s *State, b *Brick, _ *Ball) {
	s.destroyBrick(b)
	if v.grow {
		s.paddle.Grow()
	} else {
		s.paddle.Shrink()
	}
}

func (v paddleModifierBrick) strongHit(s *State, b *Brick, ball *Ball) bool {
	return hitThenGone(v, s, b, ball)
}

type ballEffect int

const (
	effectSpeedUp ballEffect = iota
	effectSlowDown
	effectWeaken
	effectStrengthen
)

type ballModifierBrick struct {
	effect ballEffect
}

func (v ballModifierBrick) kind() Kind {
	switch v.effect {
	case effectSpeedUp:
		return KindSpeedUp
	case effectSlowDown:
		return KindSlowDown
	case effectWeaken:
		return KindWeakening
	default:
		return KindStrengthening
	}
}

func (v ballModifierBrick) color() core.Color {
	switch v.effect {
	case effectSpeedUp:
		return core.ColorYellow
	case effectSlowDown:
		return core.ColorOrange
	case effectWeaken:
		return core.ColorGray
	default:
		return core.ColorRed
	}
}

func (v ballModifierBrick) label() string {
	switch v.effect {
	case effectSpeedUp:
		return ">>>"
	case effectSlowDown:
		return "<<<"
	case effectWeaken:
		return "W"
	default:
		return "F"
	}
}

func (v ballModifierBrick) hit(s *State, b *Brick, ball *Ball) {
	s.destroyBrick(b)
	switch v.effect {
	case effectSpeedUp:
		ball.SpeedUp()
	case effectSlowDown:
		ball.SlowDown()
	case effectWeaken:
		s.setBehavior(ball, NewWeakening())
	case effectStrengthen:
		s.setBehavior(ball, NewStrengthening())
	}
}

func (v ballModifierBrick) strongHit(s *State, b *Brick, ball *Ball) bool {
	return hitThenGone(v, s, b, ball)
}

// masterBrick releases key-balls for the locked bricks linked to it.
type masterBrick struct{}

func (masterBrick) kind() Kind { return KindMaster }
func (masterBrick) color() core.Color { return core.ColorBrightGreen }
func (masterBrick) label() string { return "K" }

func (masterBrick) hit(s *State, b *Brick, ball *Ball) {
	locked := s.grid.LockedBricks(b.id)
	if len(locked) == 0 {
		s.destroyBrick(b)
		return
	}
	s.spawnKeyBall(locked, ball)
}

func (v masterBrick) strongHit(s *State, b *Brick, ball *Ball) bool {
	return hitThenGone(v, s, b, ball)
}

// lockedBrick only yields to the key-ball bound to it.
type lockedBrick struct{}

func (lockedBrick) kind() Kind { return KindLocked }
func (lockedBrick) color() core.Color { return core.ColorBrightRed }
func (lockedBrick) label() string { return "L" }

func (lockedBrick) hit(s *State, b *Brick, ball *Ball) {
	if key, ok := ball.behavior.(*KeyBall); !ok || key.lock != b.id {
		return
	}
	s.unlock(b)
}

func (v lockedBrick) strongHit(s *State, b *Brick, ball *Ball) bool {
	return hitThenGone(v, s, b, ball)
}
