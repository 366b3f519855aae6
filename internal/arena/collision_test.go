package arena

import (
	"testing"

	"github.com/vovakirdan/brick-arena/internal/geom"
)

func TestEarliest(t *testing.T) {
	early := &Collision{Time: 3, KiloNormal: geom.KiloUp}
	late := &Collision{Time: 7, KiloNormal: geom.KiloDown}
	tie := &Collision{Time: 3, KiloNormal: geom.KiloLeft}

	tests := []struct {
		name string
		a, b *Collision
		want *Collision
	}{
		{"both nil", nil, nil, nil},
		{"first nil", nil, late, late},
		{"second nil", early, nil, early},
		{"earlier first", early, late, early},
		{"earlier second", late, early, early},
		{"tie keeps first", early, tie, early},
		{"tie keeps first swapped", tie, early, tie},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Earliest(tt.a, tt.b); got != tt.want {
				t.Errorf("Earliest = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEarliestBrickCollision(t *testing.T) {
	a := &BrickCollision{Collision: Collision{Time: 5}, Brick: 1}
	b := &BrickCollision{Collision: Collision{Time: 4}, Brick: 2}

	if got := Earliest(a, b); got != b {
		t.Errorf("Earliest picked brick %d", got.Brick)
	}
	if got := Earliest[*BrickCollision](nil, nil); got != nil {
		t.Errorf("Earliest(nil, nil) = %v", got)
	}
}

func TestIsClosestRejectsTies(t *testing.T) {
	if isClosest(5, 5, 9) {
		t.Error("tie must not be closest")
	}
	if !isClosest(4, 5, 9) {
		t.Error("strict minimum must be closest")
	}
	if isClosest(timeOf[*Collision](nil), timeOf[*Collision](nil), timeOf[*Collision](nil)) {
		t.Error("three absent candidates must not be closest")
	}
}

func TestWalls(t *testing.T) {
	tests := []struct {
		name       string
		wall       Wall
		ball       geom.Circle
		velocity   geom.Vector
		wantHit    bool
		wantTime   int64
		wantNormal geom.Vector
	}{
		{"east approaching", EastWall{X: 1000}, circle(900, 30, 25), vec(25, 10), true, 3, geom.KiloLeft},
		{"east receding", EastWall{X: 1000}, circle(900, 30, 25), vec(-25, 10), false, 0, geom.Vector{}},
		{"east beyond", EastWall{X: 1000}, circle(990, 30, 25), vec(25, 10), false, 0, geom.Vector{}},
		{"west approaching", WestWall{X: 0}, circle(100, 30, 25), vec(-25, 0), true, 3, geom.KiloRight},
		{"west touching", WestWall{X: 0}, circle(25, 30, 25), vec(-25, 0), true, 0, geom.KiloRight},
		{"north approaching", NorthWall{Y: 0}, circle(50, 25, 5), vec(0, -5), true, 4, geom.KiloDown},
		{"north receding", NorthWall{Y: 0}, circle(50, 25, 5), vec(0, 5), false, 0, geom.Vector{}},
		{"north touching", NorthWall{Y: 0}, circle(50, 5, 5), vec(0, -5), false, 0, geom.Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.wall.FindCollision(tt.ball, tt.velocity)
			if (c != nil) != tt.wantHit {
				t.Fatalf("collision = %v, wantHit %v", c, tt.wantHit)
			}
			if c == nil {
				return
			}
			if c.Time != tt.wantTime || c.KiloNormal != tt.wantNormal {
				t.Errorf("collision = {%d %v}, want {%d %v}", c.Time, c.KiloNormal, tt.wantTime, tt.wantNormal)
			}
		})
	}
}
