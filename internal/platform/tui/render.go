package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-arena/internal/arena"
	"github.com/vovakirdan/brick-arena/internal/core"
	"github.com/vovakirdan/brick-arena/internal/geom"
)

// Glyphs used to draw the arena.
const (
	brickRune     = '█'
	brickEdgeRune = '▌'
	paddleRune    = '▀'
	ballRune      = '●'
	targetRune    = '◇'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of equally colored cells gets a single style.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, span := range s.Spans(y) {
			style, ok := colorStyles[span.Color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(span.Text))
		}
	}
	return sb.String()
}

// HUD is the status shown above the arena.
type HUD struct {
	Level      string
	Difficulty string
	Paused     bool
}

// DrawPlay draws the status line and the boxed arena, filling the screen.
func DrawPlay(s *core.Screen, f arena.Frame, hud HUD) {
	s.Clear()
	if s.Height() < 4 || s.Width() < 4 {
		s.DrawText(0, 0, "terminal too small", core.ColorRed)
		return
	}

	drawHUD(s, f, hud)

	box := core.NewRect(0, 1, s.Width(), s.Height()-1)
	s.DrawBox(box, core.ColorGray)
	area := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	DrawArena(s, f, area)

	switch {
	case f.Won:
		drawBanner(s, area, "LEVEL CLEARED", "r: restart  esc: menu  q: quit", core.ColorBrightGreen)
	case f.Lost:
		drawBanner(s, area, "ALL BALLS LOST", "r: restart  esc: menu  q: quit", core.ColorBrightRed)
	case hud.Paused:
		drawBanner(s, area, "PAUSED", "p: resume", core.ColorBrightYellow)
	}
}

func drawHUD(s *core.Screen, f arena.Frame, hud HUD) {
	left := hud.Level
	if hud.Difficulty != "" {
		left += " [" + hud.Difficulty + "]"
	}
	s.DrawText(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("bricks %d  balls %d  %s", len(f.Bricks), len(f.Balls), formatElapsed(f.Elapsed))
	s.DrawText(s.Width()-len([]rune(right)), 0, right, core.ColorGray)
}

// formatElapsed renders simulated milliseconds as seconds with one decimal.
func formatElapsed(ms int64) string {
	return fmt.Sprintf("%d.%ds", ms/1000, ms%1000/100)
}

func drawBanner(s *core.Screen, area core.Rect, title, hint string, c core.Color) {
	_, cy := area.Center()
	s.DrawTextIn(core.NewRect(area.X, cy-1, area.W, 1), title, c)
	s.DrawTextIn(core.NewRect(area.X, cy+1, area.W, 1), hint, core.ColorGray)
}

// DrawArena maps the frame's world coordinates onto area and draws the
// bricks, key-ball targets, the paddle and the balls in that order.
func DrawArena(s *core.Screen, f arena.Frame, area core.Rect) {
	if area.Empty() || f.Field.Width == 0 || f.Field.Height == 0 {
		return
	}
	m := geom.NewCoordinateMapper(f.Field, geom.NewRect(int64(area.X), int64(area.Y), int64(area.W), int64(area.H)))

	for _, b := range f.Bricks {
		r := cellRect(m, b.Geometry, area)
		s.DrawRect(r, brickRune, b.Color)
		if r.W >= 2 {
			s.DrawVLine(r.Right()-1, r.Y, r.H, brickEdgeRune, b.Color)
			s.DrawTextIn(core.NewRect(r.X, r.Y, r.W-1, r.H), b.Label, core.ColorBrightWhite)
		}
	}

	for _, b := range f.Balls {
		if b.HasTarget {
			x, y := cellPoint(m, b.Target, area)
			s.Set(x, y, targetRune, b.Color)
		}
	}

	s.DrawRect(cellRect(m, f.Paddle, area), paddleRune, core.ColorBrightWhite)

	for _, b := range f.Balls {
		x, y := cellPoint(m, b.Geometry.Center, area)
		s.Set(x, y, ballRune, b.Color)
		if b.Label != "" {
			s.DrawText(x+1, y, b.Label, b.Color)
		}
	}
}

// cellRect maps r to screen cells. Anything that maps to less than a cell
// still covers one. The result is clipped to area.
func cellRect(m geom.CoordinateMapper, r geom.Rectangle, area core.Rect) core.Rect {
	mr := m.MapRect(r)
	x0, y0 := int(mr.Left), int(mr.Top)
	x1, y1 := max(int(mr.Right()), x0+1), max(int(mr.Bottom()), y0+1)
	return core.RectFromCorners(x0, y0, x1, y1).Intersect(area)
}

// cellPoint maps p to the screen cell containing it, clamped to area.
func cellPoint(m geom.CoordinateMapper, p geom.Point, area core.Rect) (x, y int) {
	mp := m.Map(p)
	x = core.Clamp(int(mp.X), area.X, area.Right()-1)
	y = core.Clamp(int(mp.Y), area.Y, area.Bottom()-1)
	return x, y
}
