// Package level turns text maps into ready-to-run arenas. Maps come from
// the built-in set or from YAML files on disk.
package level

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/brick-arena/internal/arena"
	"github.com/vovakirdan/brick-arena/internal/config"
	"github.com/vovakirdan/brick-arena/internal/geom"
)

// Level is a named brick map.
//
// Map glyphs:
//
//	' ' '.' = empty
//	'#' = standard          'S' = sturdy (3 lives)
//	'+' = grow paddle       '-' = shrink paddle
//	'W' = weakening         'F' = strengthening
//	'>' = speed up          '<' = slow down
//	'M' 'm' = master of group 1 / 2
//	'L' 'l' = locked brick of group 1 / 2
//
// Every master of a group unlocks every locked brick of the same group.
type Level struct {
	ID       string
	Name     string
	Map      []string
	Metadata map[string]string
	FilePath string // Empty for built-in levels
}

// Size returns the map's columns and rows.
func (l Level) Size() (columns, rows int) {
	if len(l.Map) == 0 {
		return 0, 0
	}
	return utf8.RuneCountInString(l.Map[0]), len(l.Map)
}

// Clone creates a deep copy of the level.
func (l Level) Clone() Level {
	clone := l
	clone.Map = append([]string(nil), l.Map...)
	if l.Metadata != nil {
		clone.Metadata = make(map[string]string, len(l.Metadata))
		for k, v := range l.Metadata {
			clone.Metadata[k] = v
		}
	}
	return clone
}

// lockGroup collects the masters and locked bricks sharing a letter.
type lockGroup struct {
	masters []geom.Point
	locked  []arena.BrickID
}

// ParseGrid builds a brick grid from map rows.
func ParseGrid(lines []string, brickWidth, brickHeight int64) (*arena.BrickGrid, error) {
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyMap
	}
	columns := utf8.RuneCountInString(lines[0])
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != columns {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMap, y, n, columns)
		}
	}

	grid, err := arena.NewBrickGrid(columns, len(lines), brickWidth, brickHeight)
	if err != nil {
		return nil, err
	}

	var groups [2]lockGroup
	for y, line := range lines {
		x := 0
		for _, ch := range line {
			cell := geom.NewPoint(int64(x), int64(y))
			if err := place(grid, &groups, cell, ch); err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y, x, err)
			}
			x++
		}
	}

	for i, g := range groups {
		if len(g.masters) == 0 && len(g.locked) > 0 {
			return nil, fmt.Errorf("%w: lock group %d has no master", arena.ErrOrphanLock, i+1)
		}
		for _, cell := range g.masters {
			if _, err := grid.AddMasterBrick(cell, g.locked); err != nil {
				return nil, err
			}
		}
	}
	return grid, nil
}

func place(grid *arena.BrickGrid, groups *[2]lockGroup, cell geom.Point, ch rune) error {
	var err error
	switch ch {
	case ' ', '.':
	case '#':
		_, err = grid.AddStandardBrick(cell)
	case 'S':
		_, err = grid.AddSturdyBrick(cell, arena.DefaultSturdyLives)
	case '+':
		_, err = grid.AddGrowPaddleBrick(cell)
	case '-':
		_, err = grid.AddShrinkPaddleBrick(cell)
	case 'W':
		_, err = grid.AddWeakeningBrick(cell)
	case 'F':
		_, err = grid.AddStrengtheningBrick(cell)
	case '>':
		_, err = grid.AddSpeedUpBrick(cell)
	case '<':
		_, err = grid.AddSlowDownBrick(cell)
	case 'M':
		groups[0].masters = append(groups[0].masters, cell)
	case 'm':
		groups[1].masters = append(groups[1].masters, cell)
	case 'L', 'l':
		b, lockErr := grid.AddLockedBrick(cell)
		if lockErr != nil {
			return lockErr
		}
		g := &groups[0]
		if ch == 'l' {
			g = &groups[1]
		}
		g.locked = append(g.locked, b.ID())
	default:
		return fmt.Errorf("%w %q", ErrUnknownGlyph, ch)
	}
	return err
}

// Build creates a fresh arena for the level: the paddle centered below the
// grid and one standard ball two radii above the grid's bottom center.
func Build(l Level, cfg config.ArenaConfig, opts ...arena.Option) (*arena.State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := ParseGrid(l.Map, cfg.Field.BrickWidth, cfg.Field.BrickHeight)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}

	opts = append([]arena.Option{arena.WithMaxTimeDelta(cfg.Simulation.MaxTimeDelta)}, opts...)
	state, err := arena.NewState(grid, cfg.PaddleHalfWidth(), cfg.PaddleSpeed(), opts...)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}

	radius := cfg.Ball.Radius
	center := grid.BoundingRect().BottomCenter().Add(geom.NewVector(0, -2*radius))
	vx, vy := cfg.BallVelocity()
	state.AddBall(geom.NewCircle(center, radius), geom.NewVector(vx, vy), arena.NewStandard())
	return state, nil
}
