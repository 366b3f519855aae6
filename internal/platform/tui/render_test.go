package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brick-arena/internal/arena"
	"github.com/vovakirdan/brick-arena/internal/core"
	"github.com/vovakirdan/brick-arena/internal/geom"
)

// testFrame is a 1000x1000 world with one brick in the top-left quarter
// row, a paddle near the bottom and a key-ball in the middle.
func testFrame() arena.Frame {
	return arena.Frame{
		Field:  geom.NewRect(0, 0, 1000, 1000),
		Paddle: geom.NewRect(400, 950, 200, 50),
		Bricks: []arena.BrickView{
			{Geometry: geom.NewRect(0, 0, 500, 100), Color: core.ColorCyan, Kind: arena.KindLocked},
		},
		Balls: []arena.BallView{
			{
				Geometry:  geom.NewCircle(geom.NewPoint(500, 500), 10),
				Color:     core.ColorBrightMagenta,
				Label:     "3",
				Target:    geom.NewPoint(250, 50),
				HasTarget: true,
			},
		},
	}
}

func TestDrawArena(t *testing.T) {
	s := core.NewScreen(10, 10)
	DrawArena(s, testFrame(), s.Bounds())

	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"brick body", 0, 0, brickRune, core.ColorCyan},
		{"brick edge", 4, 0, brickEdgeRune, core.ColorCyan},
		{"right of brick", 5, 0, ' ', core.ColorDefault},
		{"key target", 2, 0, targetRune, core.ColorBrightMagenta},
		{"ball", 5, 5, ballRune, core.ColorBrightMagenta},
		{"ball label", 6, 5, '3', core.ColorBrightMagenta},
		{"paddle left", 4, 9, paddleRune, core.ColorBrightWhite},
		{"paddle right", 5, 9, paddleRune, core.ColorBrightWhite},
		{"beside paddle", 6, 9, ' ', core.ColorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Get(tt.x, tt.y)
			if got.Rune != tt.rune || got.Color != tt.color {
				t.Errorf("cell (%d,%d) = %q/%v, want %q/%v", tt.x, tt.y, got.Rune, got.Color, tt.rune, tt.color)
			}
		})
	}
}

func TestDrawArenaClampsToArea(t *testing.T) {
	f := testFrame()
	f.Balls[0].Geometry = geom.NewCircle(geom.NewPoint(1000, 1000), 10)
	f.Balls[0].Label = ""
	f.Balls[0].HasTarget = false

	s := core.NewScreen(12, 12)
	area := core.NewRect(1, 1, 10, 10)
	DrawArena(s, f, area)

	if got := s.Get(10, 10).Rune; got != ballRune {
		t.Errorf("ball on the field corner should be clamped into the area, got %q", got)
	}
	for x := range 12 {
		if s.Get(x, 0).Rune != ' ' || s.Get(x, 11).Rune != ' ' {
			t.Fatalf("drawing leaked outside the area at column %d", x)
		}
	}
}

func TestDrawPlayBanners(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*arena.Frame, *HUD)
		want string
	}{
		{"won", func(f *arena.Frame, _ *HUD) { f.Won = true }, "LEVEL CLEARED"},
		{"lost", func(f *arena.Frame, _ *HUD) { f.Lost = true }, "ALL BALLS LOST"},
		{"paused", func(_ *arena.Frame, h *HUD) { h.Paused = true }, "PAUSED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFrame()
			hud := HUD{Level: "Classic", Difficulty: "hard"}
			tt.mod(&f, &hud)

			s := core.NewScreen(40, 12)
			DrawPlay(s, f, hud)
			out := s.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("screen missing %q:\n%s", tt.want, out)
			}
			if !strings.HasPrefix(s.Row(0), "Classic [hard]") {
				t.Errorf("HUD row = %q", s.Row(0))
			}
			if !strings.Contains(s.Row(0), "bricks 1  balls 1") {
				t.Errorf("HUD row lacks counters: %q", s.Row(0))
			}
		})
	}
}

func TestDrawPlayTooSmall(t *testing.T) {
	s := core.NewScreen(3, 3)
	DrawPlay(s, testFrame(), HUD{})
	if s.Row(0) != "ter" {
		t.Errorf("row 0 = %q, want clipped notice", s.Row(0))
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hi", core.ColorRed)
	s.DrawText(3, 1, "yo", core.ColorGreen)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("want 2 lines, got %q", out)
	}
	for _, want := range []string{"hi", "yo"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0.0s"},
		{99, "0.0s"},
		{1234, "1.2s"},
		{60_000, "60.0s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.ms); got != tt.want {
			t.Errorf("formatElapsed(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
