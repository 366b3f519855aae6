// Package sim runs arenas headlessly at a fixed frame step. The same state,
// driver and options always produce the same result.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/brick-arena/internal/arena"
)

// DefaultMaxDuration caps a run whose Duration is zero.
const DefaultMaxDuration = 10 * 60 * 1000

// Driver picks the paddle direction before every frame.
type Driver interface {
	Steer(s *arena.State) arena.Direction
}

// DriverFunc adapts a function to Driver.
type DriverFunc func(s *arena.State) arena.Direction

func (f DriverFunc) Steer(s *arena.State) arena.Direction { return f(s) }

// Idle never moves the paddle.
var Idle = DriverFunc(func(*arena.State) arena.Direction { return arena.Stationary })

// Autopilot follows the lowest standard ball. Key-balls are ignored while
// any other ball is in play.
type Autopilot struct {
	// Deadband is the distance from the paddle center that counts as
	// aligned. Zero means a quarter of the paddle half width.
	Deadband int64
}

func (a Autopilot) Steer(s *arena.State) arena.Direction {
	target, ok := lowestBall(s.Balls())
	if !ok {
		return arena.Stationary
	}
	p := s.Paddle()
	deadband := a.Deadband
	if deadband <= 0 {
		deadband = max(p.HalfWidth()/4, 1)
	}
	dx := target.Center().X - p.TopCenter().X
	switch {
	case dx > deadband:
		return arena.MovingRight
	case dx < -deadband:
		return arena.MovingLeft
	default:
		return arena.Stationary
	}
}

func lowestBall(balls []*arena.Ball) (*arena.Ball, bool) {
	var lowest, lowestKey *arena.Ball
	for _, b := range balls {
		if b.Behavior().Kind() == arena.BehaviorKey {
			if lowestKey == nil || b.Center().Y > lowestKey.Center().Y {
				lowestKey = b
			}
			continue
		}
		if lowest == nil || b.Center().Y > lowest.Center().Y {
			lowest = b
		}
	}
	if lowest != nil {
		return lowest, true
	}
	return lowestKey, lowestKey != nil
}

// RandomSteering holds a randomly chosen direction for a few frames at a
// time, like a player mashing keys.
type RandomSteering struct {
	rng  *rand.Rand
	hold int
	left int
	dir  arena.Direction
}

// NewRandomSteering creates a seeded driver that changes direction every
// hold frames.
func NewRandomSteering(seed int64, hold int) *RandomSteering {
	return &RandomSteering{
		rng:  rand.New(rand.NewSource(seed)), //#nosec G404 -- reproducible input, not security
		hold: max(hold, 1),
	}
}

func (r *RandomSteering) Steer(*arena.State) arena.Direction {
	if r.left == 0 {
		r.dir = arena.Direction(r.rng.Intn(3))
		r.left = r.hold
	}
	r.left--
	return r.dir
}

// Options controls a run.
type Options struct {
	FrameMS  int64 // Simulated time per frame
	Duration int64 // Simulated time budget; zero means DefaultMaxDuration
	Driver   Driver
}

// Result summarizes a finished run.
type Result struct {
	Frames          int
	Elapsed         int64
	Won             bool
	Lost            bool
	BricksStart     int
	BricksRemaining int
	Hash            uint64
}

// BricksDestroyed is how many bricks left the grid during the run.
func (r Result) BricksDestroyed() int {
	return r.BricksStart - r.BricksRemaining
}

// Outcome names how the run ended: won, lost or timeout.
func (r Result) Outcome() string {
	switch {
	case r.Won:
		return "won"
	case r.Lost:
		return "lost"
	default:
		return "timeout"
	}
}

// Run advances s frame by frame until it is won, lost or out of time.
// A final frame shorter than FrameMS uses up the remaining budget exactly.
func Run(s *arena.State, opts Options) Result {
	if opts.FrameMS <= 0 {
		opts.FrameMS = 16
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultMaxDuration
	}
	if opts.Driver == nil {
		opts.Driver = Idle
	}

	res := Result{BricksStart: s.Grid().Len()}
	for !s.IsOver() && s.Elapsed() < opts.Duration {
		s.SetPaddleDirection(opts.Driver.Steer(s))
		s.Tick(min(opts.FrameMS, opts.Duration-s.Elapsed()))
		res.Frames++
	}

	snap := s.Snapshot()
	res.Elapsed = s.Elapsed()
	res.Won = s.IsWon()
	res.Lost = s.IsLost()
	res.BricksRemaining = s.Grid().Len()
	res.Hash = snap.Hash()
	return res
}
