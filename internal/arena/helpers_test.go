package arena

import (
	"testing"

	"github.com/vovakirdan/brick-arena/internal/geom"
)

// Test fields use 100×20 cells.
const (
	testBrickWidth  = 100
	testBrickHeight = 20
)

func newTestGrid(t *testing.T, columns, rows int) *BrickGrid {
	t.Helper()
	g, err := NewBrickGrid(columns, rows, testBrickWidth, testBrickHeight)
	if err != nil {
		t.Fatalf("NewBrickGrid: %v", err)
	}
	return g
}

func newTestState(t *testing.T, g *BrickGrid) *State {
	t.Helper()
	s, err := NewState(g, testBrickWidth, 1)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

func mustBrick(t *testing.T) func(*Brick, error) *Brick {
	return func(b *Brick, err error) *Brick {
		t.Helper()
		if err != nil {
			t.Fatalf("placing brick: %v", err)
		}
		return b
	}
}

func cell(x, y int64) geom.Point {
	return geom.NewPoint(x, y)
}

func circle(x, y, r int64) geom.Circle {
	return geom.NewCircle(geom.NewPoint(x, y), r)
}

func vec(x, y int64) geom.Vector {
	return geom.NewVector(x, y)
}
