package arena

import (
	"testing"

	"github.com/vovakirdan/brick-arena/internal/geom"
)

func TestStraightLineMotion(t *testing.T) {
	g := newTestGrid(t, 10, 5)
	mustBrick(t)(g.AddStandardBrick(cell(3, 0)))
	s := newTestState(t, g)
	ball := s.AddBall(circle(50, 25, 5), vec(0, -5), NewStandard())

	s.Tick(1)

	if got := ball.Center(); got != geom.NewPoint(50, 20) {
		t.Errorf("center = %v, want (50,20)", got)
	}
	if got := ball.Velocity(); got != vec(0, -5) {
		t.Errorf("velocity = %v, want (0,-5)", got)
	}
}

func TestEastWallBounce(t *testing.T) {
	s := newTestState(t, newTestGrid(t, 10, 5))
	ball := s.AddBall(circle(900, 30, 25), vec(25, 10), NewStandard())

	s.Tick(4)

	if got := ball.Center(); got != geom.NewPoint(950, 70) {
		t.Errorf("center = %v, want (950,70)", got)
	}
	if got := ball.Velocity(); got != vec(-25, 10) {
		t.Errorf("velocity = %v, want (-25,10)", got)
	}
}

func TestSimultaneousCollisionsFallThrough(t *testing.T) {
	g := newTestGrid(t, 10, 50)
	// The east wall and this brick are both 5 units away.
	brick := mustBrick(t)(g.AddStandardBrick(cell(9, 10)))
	s := newTestState(t, g)
	ball := s.AddBall(circle(900, 305, 50), vec(10, -10), NewStandard())

	s.Tick(10)

	if got := ball.Center(); got != geom.NewPoint(1000, 205) {
		t.Errorf("center = %v, want (1000,205)", got)
	}
	if got := ball.Velocity(); got != vec(10, -10) {
		t.Errorf("velocity = %v, want unchanged (10,-10)", got)
	}
	if !g.Contains(brick.ID()) {
		t.Error("brick was hit despite the tie")
	}
}

func TestPaddleBounceReflects(t *testing.T) {
	s := newTestState(t, newTestGrid(t, 5, 10))
	ball := s.AddBall(circle(250, 150, 5), vec(0, 5), NewStandard())

	s.Tick(10)

	if got := ball.Center(); got != geom.NewPoint(250, 190) {
		t.Errorf("center = %v, want (250,190)", got)
	}
	if got := ball.Velocity(); got != vec(0, -5) {
		t.Errorf("velocity = %v, want (0,-5)", got)
	}
}

func TestBallLostBelowPaddle(t *testing.T) {
	s := newTestState(t, newTestGrid(t, 5, 10))
	s.AddBall(circle(50, 150, 5), vec(0, 50), NewStandard())

	s.Tick(20)
	if s.IsLost() {
		t.Fatal("ball lost while still inside the paddle band")
	}
	s.Tick(20)
	if !s.IsLost() || !s.IsOver() {
		t.Error("ball below the field should be lost")
	}
}

func TestTickSlicesTime(t *testing.T) {
	s := newTestState(t, newTestGrid(t, 50, 5))
	s.SetPaddleDirection(MovingRight)
	start := s.Paddle().TopCenter().X

	s.Tick(45)

	if got := s.Elapsed(); got != 45 {
		t.Errorf("elapsed = %d, want 45", got)
	}
	if got := s.Paddle().TopCenter().X - start; got != 45 {
		t.Errorf("paddle moved %d, want 45", got)
	}
}

func TestTickRejectsNegativeTime(t *testing.T) {
	s := newTestState(t, newTestGrid(t, 5, 5))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative elapsed time")
		}
	}()
	s.Tick(-1)
}

func TestBoundingRectIncludesPaddleBand(t *testing.T) {
	s := newTestState(t, newTestGrid(t, 5, 10))
	want := geom.NewRect(0, 0, 500, 200+PaddleHeight)
	if got := s.BoundingRect(); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
	if got := s.Paddle().TopCenter(); got != geom.NewPoint(250, 200) {
		t.Errorf("paddle top center = %v", got)
	}
	if len(s.Walls()) != 3 {
		t.Errorf("expected 3 walls, got %d", len(s.Walls()))
	}
}

func TestWinWhenLastBrickFalls(t *testing.T) {
	g := newTestGrid(t, 5, 10)
	mustBrick(t)(g.AddStandardBrick(cell(2, 0)))
	s := newTestState(t, g)
	s.AddBall(circle(250, 60, 5), vec(0, -5), NewStandard())

	if s.IsWon() {
		t.Fatal("won before any hit")
	}
	s.Tick(10)
	if !s.IsWon() || s.IsLost() {
		t.Errorf("won = %v, lost = %v after clearing the grid", s.IsWon(), s.IsLost())
	}
}

// newDemoState builds a field of every brick kind at play-size scale.
func newDemoState(t *testing.T) *State {
	t.Helper()
	g, err := NewBrickGrid(5, 17, 10000, 3000)
	if err != nil {
		t.Fatalf("NewBrickGrid: %v", err)
	}
	for x := range int64(5) {
		mustBrick(t)(g.AddStandardBrick(cell(x, 0)))
		mustBrick(t)(g.AddSturdyBrick(cell(x, 1), DefaultSturdyLives))
	}
	mustBrick(t)(g.AddGrowPaddleBrick(cell(0, 2)))
	mustBrick(t)(g.AddShrinkPaddleBrick(cell(4, 2)))
	mustBrick(t)(g.AddWeakeningBrick(cell(0, 3)))
	mustBrick(t)(g.AddStrengtheningBrick(cell(4, 3)))
	mustBrick(t)(g.AddSpeedUpBrick(cell(0, 4)))
	mustBrick(t)(g.AddSlowDownBrick(cell(4, 4)))
	lock := mustBrick(t)(g.AddLockedBrick(cell(4, 5)))
	mustBrick(t)(g.AddMasterBrick(cell(2, 5), []BrickID{lock.ID()}))

	s, err := NewState(g, 10000, 100)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	center := g.BoundingRect().BottomCenter().Add(vec(0, -1000))
	s.AddBall(geom.NewCircle(center, 500), vec(25, -25), NewStandard())
	return s
}

func runDemo(t *testing.T, ms int) *State {
	t.Helper()
	s := newDemoState(t)
	for i := range ms / 16 {
		// Sweep the paddle back and forth in a fixed pattern.
		switch (i / 40) % 3 {
		case 0:
			s.SetPaddleDirection(MovingLeft)
		case 1:
			s.SetPaddleDirection(Stationary)
		default:
			s.SetPaddleDirection(MovingRight)
		}
		s.Tick(16)
		if s.IsOver() {
			break
		}
	}
	return s
}

func TestDeterminism(t *testing.T) {
	s1 := runDemo(t, 60_000)
	s2 := runDemo(t, 60_000)

	snap1, snap2 := s1.Snapshot(), s2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("hashes differ: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Elapsed != snap2.Elapsed || snap1.BrickCount != snap2.BrickCount {
		t.Errorf("runs diverged: %+v vs %+v", snap1, snap2)
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	s := newDemoState(t)
	before := s.Snapshot()
	if before.BallCount != 1 || before.BrickCount != 18 {
		t.Fatalf("snapshot counts = %d balls, %d bricks", before.BallCount, before.BrickCount)
	}
	s.Tick(16)
	after := s.Snapshot()
	if before.Hash() == after.Hash() {
		t.Error("hash unchanged after the ball moved")
	}
}

func TestFrame(t *testing.T) {
	s := newDemoState(t)
	f := s.Frame()

	if len(f.Bricks) != 18 || len(f.Balls) != 1 {
		t.Fatalf("frame has %d bricks, %d balls", len(f.Bricks), len(f.Balls))
	}
	if f.Paddle != s.Paddle().Geometry() || f.Field != s.BoundingRect() {
		t.Error("frame geometry does not match state")
	}
	if f.Bricks[5].Label != "3" || f.Bricks[5].Kind != KindSturdy {
		t.Errorf("sturdy brick view = %+v", f.Bricks[5])
	}
	if f.Won || f.Lost {
		t.Error("fresh state reported as over")
	}
}
