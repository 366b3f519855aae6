package arena

import (
	"errors"
	"testing"

	"github.com/vovakirdan/brick-arena/internal/geom"
	"pgregory.net/rapid"
)

func TestNewBrickGridRejectsDegenerateSizes(t *testing.T) {
	if _, err := NewBrickGrid(0, 3, 100, 20); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("zero columns: err = %v", err)
	}
	if _, err := NewBrickGrid(3, 3, 100, 0); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("zero brick height: err = %v", err)
	}
}

func TestBrickPlacement(t *testing.T) {
	g := newTestGrid(t, 5, 4)

	b := mustBrick(t)(g.AddStandardBrick(cell(2, 1)))
	if b.Geometry() != geom.NewRect(200, 20, 100, 20) {
		t.Errorf("brick geometry = %v", b.Geometry())
	}
	if g.BrickAt(cell(2, 1)) != b {
		t.Error("brick not stored at its cell")
	}
	if _, err := g.AddStandardBrick(cell(2, 1)); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("double placement: err = %v", err)
	}
	if _, err := g.AddStandardBrick(cell(5, 0)); !errors.Is(err, ErrOutsideGrid) {
		t.Errorf("outside placement: err = %v", err)
	}
	if g.BrickAt(cell(-1, 0)) != nil || g.BrickAt(cell(0, 99)) != nil {
		t.Error("cells outside the grid must be empty")
	}

	g.Remove(b)
	if !g.IsEmpty() || g.Contains(b.ID()) || g.BrickAt(cell(2, 1)) != nil {
		t.Error("brick still present after Remove")
	}
}

func TestBricksAreRowMajor(t *testing.T) {
	g := newTestGrid(t, 3, 2)
	c := mustBrick(t)(g.AddStandardBrick(cell(0, 1)))
	b := mustBrick(t)(g.AddStandardBrick(cell(2, 0)))
	a := mustBrick(t)(g.AddStandardBrick(cell(0, 0)))

	got := g.Bricks()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Errorf("Bricks order wrong: %v", got)
	}
}

func TestOrphanLockIsRejected(t *testing.T) {
	g := newTestGrid(t, 3, 1)
	mustBrick(t)(g.AddLockedBrick(cell(0, 0)))

	if err := g.Validate(); !errors.Is(err, ErrOrphanLock) {
		t.Errorf("Validate = %v, want ErrOrphanLock", err)
	}
	if _, err := NewState(g, 100, 1); !errors.Is(err, ErrOrphanLock) {
		t.Errorf("NewState = %v, want ErrOrphanLock", err)
	}
}

func TestAddMasterBrickNeedsLockedBricks(t *testing.T) {
	g := newTestGrid(t, 3, 1)
	std := mustBrick(t)(g.AddStandardBrick(cell(0, 0)))

	if _, err := g.AddMasterBrick(cell(1, 0), []BrickID{std.ID()}); !errors.Is(err, ErrUnknownBrick) {
		t.Errorf("linking a standard brick: err = %v", err)
	}
	if g.BrickAt(cell(1, 0)) != nil {
		t.Error("master placed despite invalid links")
	}
}

func TestSpeedModifier(t *testing.T) {
	g := newTestGrid(t, 6, 1)
	l1 := mustBrick(t)(g.AddLockedBrick(cell(0, 0)))
	l2 := mustBrick(t)(g.AddLockedBrick(cell(1, 0)))
	l3 := mustBrick(t)(g.AddLockedBrick(cell(2, 0)))
	all := []BrickID{l1.ID(), l2.ID(), l3.ID()}
	m1 := mustBrick(t)(g.AddMasterBrick(cell(3, 0), all))
	mustBrick(t)(g.AddMasterBrick(cell(4, 0), all))
	mustBrick(t)(g.AddMasterBrick(cell(5, 0), []BrickID{l3.ID()}))

	// l1 and l2 have two masters (even: negative), l3 has three.
	if got := g.SpeedModifier(l1.ID()); got != -3 {
		t.Errorf("modifier(l1) = %d, want -3", got)
	}
	if got := g.SpeedModifier(l3.ID()); got != 3 {
		t.Errorf("modifier(l3) = %d, want 3", got)
	}

	g.UnlinkLock(m1.ID(), l1.ID())
	if got := g.SpeedModifier(l1.ID()); got != 3 {
		t.Errorf("modifier(l1) after unlink = %d, want 3", got)
	}
	if got := len(g.LockedBricks(m1.ID())); got != 2 {
		t.Errorf("m1 keeps %d locks, want 2", got)
	}
	if got := g.SpeedModifier(l2.ID()); got != -3 {
		t.Errorf("modifier(l2) = %d, want -3", got)
	}
}

func TestRemoveDropsLinks(t *testing.T) {
	g := newTestGrid(t, 3, 1)
	l := mustBrick(t)(g.AddLockedBrick(cell(0, 0)))
	m := mustBrick(t)(g.AddMasterBrick(cell(1, 0), []BrickID{l.ID()}))

	g.Remove(l)
	if got := g.LockedBricks(m.ID()); len(got) != 0 {
		t.Errorf("master still links %v", got)
	}
	if got := g.MasterBricks(l.ID()); len(got) != 0 {
		t.Errorf("removed brick still has masters %v", got)
	}
}

func TestRaycastFindsBrickAbove(t *testing.T) {
	g := newTestGrid(t, 5, 10)
	target := mustBrick(t)(g.AddStandardBrick(cell(2, 0)))
	mustBrick(t)(g.AddStandardBrick(cell(3, 1)))

	c := g.FindEarliestCollision(circle(250, 60, 5), vec(0, -5))
	if c == nil {
		t.Fatal("expected a brick collision")
	}
	if c.Brick != target.ID() || c.Time != 7 || c.KiloNormal != geom.KiloDown {
		t.Errorf("collision = {brick %d, t %d, %v}", c.Brick, c.Time, c.KiloNormal)
	}
}

func TestRaycastNormals(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	mustBrick(t)(g.AddStandardBrick(cell(0, 2)))
	mustBrick(t)(g.AddStandardBrick(cell(4, 2)))
	mustBrick(t)(g.AddStandardBrick(cell(2, 4)))

	tests := []struct {
		name   string
		v      geom.Vector
		normal geom.Vector
	}{
		{"leftwards", vec(-10, 0), geom.KiloRight},
		{"rightwards", vec(10, 0), geom.KiloLeft},
		{"downwards", vec(0, 10), geom.KiloUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := g.FindEarliestCollision(circle(250, 50, 5), tt.v)
			if c == nil {
				t.Fatal("expected a brick collision")
			}
			if c.KiloNormal != tt.normal {
				t.Errorf("normal = %v, want %v", c.KiloNormal, tt.normal)
			}
		})
	}
	if c := g.FindEarliestCollision(circle(250, 50, 5), vec(0, -10)); c != nil {
		t.Errorf("nothing above, got %v", c)
	}
	if c := g.FindEarliestCollision(circle(250, 50, 5), geom.Vector{}); c != nil {
		t.Errorf("still ball collided: %v", c)
	}
}

// linearScan walks the cells ahead of p one by one in travel order.
func linearScan(g *BrickGrid, p geom.Point, v geom.Vector) *Brick {
	w, h := g.BrickWidth(), g.BrickHeight()
	var next func(geom.Point) geom.Point
	var start geom.Point
	switch {
	case v.Y < 0:
		start = cell(p.X/w, p.Y/h-1)
		next = func(c geom.Point) geom.Point { return cell(c.X, c.Y-1) }
	case v.Y > 0:
		start = cell(p.X/w, (p.Y+h-1)/h)
		next = func(c geom.Point) geom.Point { return cell(c.X, c.Y+1) }
	case v.X < 0:
		start = cell(p.X/w-1, p.Y/h)
		next = func(c geom.Point) geom.Point { return cell(c.X-1, c.Y) }
	default:
		start = cell((p.X+w-1)/w, p.Y/h)
		next = func(c geom.Point) geom.Point { return cell(c.X+1, c.Y) }
	}
	for c := start; c.X >= 0 && c.Y >= 0 && c.X < int64(g.Columns()) && c.Y < int64(g.Rows()); c = next(c) {
		if b := g.BrickAt(c); b != nil {
			return b
		}
	}
	return nil
}

func TestRaycastMatchesLinearScan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		columns := rapid.IntRange(1, 8).Draw(t, "columns")
		rows := rapid.IntRange(1, 8).Draw(t, "rows")
		g, err := NewBrickGrid(columns, rows, testBrickWidth, testBrickHeight)
		if err != nil {
			t.Fatalf("NewBrickGrid: %v", err)
		}
		occupied := rapid.SliceOfN(rapid.Bool(), columns*rows, columns*rows).Draw(t, "occupied")
		for i, ok := range occupied {
			if ok {
				if _, err := g.AddStandardBrick(cell(int64(i%columns), int64(i/columns))); err != nil {
					t.Fatalf("AddStandardBrick: %v", err)
				}
			}
		}

		radius := rapid.Int64Range(1, 8).Draw(t, "radius")
		center := geom.NewPoint(
			rapid.Int64Range(radius, g.Width()-radius).Draw(t, "x"),
			rapid.Int64Range(radius, g.Height()-radius).Draw(t, "y"),
		)
		speed := rapid.Int64Range(1, 50).Draw(t, "speed")
		v := rapid.SampledFrom([]geom.Vector{vec(0, -speed), vec(0, speed), vec(-speed, 0), vec(speed, 0)}).Draw(t, "velocity")

		ball := geom.NewCircle(center, radius)
		want := linearScan(g, ball.PointInDirection(v), v)
		got := g.FindEarliestCollision(ball, v)

		switch {
		case want == nil && got != nil:
			t.Fatalf("raycast found brick %d, scan found none", got.Brick)
		case want != nil && got == nil:
			t.Fatalf("raycast missed brick at %v", want.Cell())
		case want != nil && got.Brick != want.ID():
			t.Fatalf("raycast found brick %d, scan found %d", got.Brick, want.ID())
		}
	})
}
