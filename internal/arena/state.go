package arena

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/brick-arena/internal/geom"
)

// MaximumTimeDelta bounds the length of a single simulation sub-step.
const MaximumTimeDelta = 20

// State is the whole arena: bricks, paddle, walls and balls.
// It is not safe for concurrent use.
type State struct {
	grid   *BrickGrid
	paddle *Paddle
	walls  []Wall
	balls  []*Ball

	nextBall  BallID
	keyBalls  map[BrickID]BallID // locked brick -> its active key-ball
	keySpawns int

	elapsed  int64
	maxDelta int64
	logger   *log.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger routes debug events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxTimeDelta overrides MaximumTimeDelta.
func WithMaxTimeDelta(delta int64) Option {
	return func(s *State) {
		if delta <= 0 {
			panic(fmt.Sprintf("arena: time delta must be positive, got %d", delta))
		}
		s.maxDelta = delta
	}
}

// NewState wraps a populated grid. The paddle sits on the grid's bottom edge.
func NewState(grid *BrickGrid, paddleHalfWidth, paddleSpeed int64, opts ...Option) (*State, error) {
	if grid == nil {
		panic("arena: nil brick grid")
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		grid:     grid,
		keyBalls: make(map[BrickID]BallID),
		maxDelta: MaximumTimeDelta,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	allowed := geom.NewInterval(0, grid.Width())
	s.paddle = NewPaddle(allowed, grid.BoundingRect().BottomCenter(), paddleHalfWidth, paddleSpeed)
	s.walls = []Wall{
		NorthWall{Y: 0},
		EastWall{X: grid.Width()},
		WestWall{X: 0},
	}
	return s, nil
}

func (s *State) Grid() *BrickGrid { return s.grid }
func (s *State) Paddle() *Paddle { return s.paddle }
func (s *State) Walls() []Wall { return slices.Clone(s.walls) }
func (s *State) Bricks() []*Brick { return s.grid.Bricks() }
func (s *State) Balls() []*Ball { return slices.Clone(s.balls) }

// Elapsed returns the total simulated time.
func (s *State) Elapsed() int64 { return s.elapsed }

// BoundingRect covers the bricks area plus the paddle band.
func (s *State) BoundingRect() geom.Rectangle {
	return geom.NewRect(0, 0, s.grid.Width(), s.grid.Height()+s.paddle.Height())
}

// SetPaddleDirection is how input steers the paddle before a Tick.
func (s *State) SetPaddleDirection(d Direction) {
	s.paddle.SetDirection(d)
}

// AddBall puts a new ball into play.
func (s *State) AddBall(geometry geom.Circle, velocity geom.Vector, behavior Behavior) *Ball {
	if behavior == nil {
		panic("arena: nil ball behavior")
	}
	s.nextBall++
	b := &Ball{
		id:       s.nextBall,
		geometry: geometry,
		velocity: velocity,
		behavior: behavior,
		allowed:  s.BoundingRect(),
	}
	s.balls = append(s.balls, b)
	return b
}

// RemoveBall takes ball out of play.
func (s *State) RemoveBall(ball *Ball) {
	s.balls = slices.DeleteFunc(s.balls, func(b *Ball) bool { return b == ball })
}

// HasBall reports whether ball is still in play.
func (s *State) HasBall(ball *Ball) bool {
	return slices.Contains(s.balls, ball)
}

// Ball looks a ball up by id.
func (s *State) Ball(id BallID) (*Ball, bool) {
	for _, b := range s.balls {
		if b.id == id {
			return b, true
		}
	}
	return nil, false
}

// IsBallLost reports whether ball's center left the field.
func (s *State) IsBallLost(ball *Ball) bool {
	return !s.BoundingRect().Contains(ball.Center())
}

// KeyBallFor returns the key-ball currently bound to a locked brick.
func (s *State) KeyBallFor(locked BrickID) (*Ball, bool) {
	id, ok := s.keyBalls[locked]
	if !ok {
		return nil, false
	}
	return s.Ball(id)
}

func (s *State) IsWon() bool { return s.grid.IsEmpty() }
func (s *State) IsLost() bool { return len(s.balls) == 0 }
func (s *State) IsOver() bool { return s.IsWon() || s.IsLost() }

// Tick advances the simulation by elapsed units in slices of at most the
// maximum time delta.
func (s *State) Tick(elapsed int64) {
	if elapsed < 0 {
		panic(fmt.Sprintf("arena: negative elapsed time %d", elapsed))
	}
	for elapsed > 0 {
		dt := min(s.maxDelta, elapsed)
		s.atomicTick(dt)
		elapsed -= dt
	}
}

func (s *State) atomicTick(dt int64) {
	s.paddle.Tick(dt)
	for _, ball := range slices.Clone(s.balls) {
		if !s.HasBall(ball) {
			continue
		}
		ball.behavior.update(s, ball, dt)
	}
	s.elapsed += dt
}

func (s *State) findWallCollision(ball *Ball, minTime int64) *Collision {
	var closest *Collision
	for _, w := range s.walls {
		c := w.FindCollision(ball.geometry, ball.velocity)
		if c != nil && c.Time < minTime {
			continue
		}
		closest = Earliest(closest, c)
	}
	return closest
}

func (s *State) setBehavior(ball *Ball, behavior Behavior) {
	ball.behavior = behavior
	s.logger.Debug("ball behavior changed", "ball", ball.id, "behavior", behavior.Kind())
}

func (s *State) destroyBrick(b *Brick) {
	s.grid.Remove(b)
	s.logger.Debug("brick destroyed", "brick", b.id, "kind", b.Kind(), "cell", b.cell)
}

// spawnKeyBall releases a key-ball for the first of locked that has none,
// at the hitting ball's position.
func (s *State) spawnKeyBall(locked []BrickID, hitter *Ball) {
	for _, lock := range locked {
		if _, active := s.KeyBallFor(lock); active {
			continue
		}
		velocity := keyBallVelocities[s.keySpawns%len(keyBallVelocities)]
		s.keySpawns++
		key := &KeyBall{lock: lock}
		ball := s.AddBall(hitter.geometry, velocity, key)
		s.keyBalls[lock] = ball.id
		s.refreshKeyBalls()
		s.logger.Debug("key-ball spawned", "ball", ball.id, "lock", lock, "modifier", key.speedModifier)
		return
	}
}

// unlock destroys a locked brick, cuts it loose from its masters and retires
// its key-ball.
func (s *State) unlock(b *Brick) {
	for _, master := range s.grid.MasterBricks(b.id) {
		s.grid.UnlinkLock(master, b.id)
	}
	s.destroyBrick(b)
	if key, ok := s.KeyBallFor(b.id); ok {
		s.RemoveBall(key)
	}
	delete(s.keyBalls, b.id)
	s.refreshKeyBalls()
	s.logger.Debug("brick unlocked", "brick", b.id)
}

// releaseKey forgets ball as the key of lock.
func (s *State) releaseKey(lock BrickID, ball *Ball) {
	if s.keyBalls[lock] == ball.id {
		delete(s.keyBalls, lock)
	}
}

// refreshKeyBalls recomputes every key-ball's speed modifier from the
// current lock graph.
func (s *State) refreshKeyBalls() {
	for _, ball := range s.balls {
		if key, ok := ball.behavior.(*KeyBall); ok {
			key.speedModifier = s.grid.SpeedModifier(key.lock)
		}
	}
}
