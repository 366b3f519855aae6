package arena

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/brick-arena/internal/geom"
)

// BrickGrid owns the bricks, their cells and the master/locked links.
// Cells outside [0,columns) × [0,rows) are always empty.
type BrickGrid struct {
	columns     int
	rows        int
	brickWidth  int64
	brickHeight int64

	cells  []*Brick
	byID   map[BrickID]*Brick
	nextID BrickID

	locks   map[BrickID][]BrickID // master -> locked, in link order
	masters map[BrickID][]BrickID // locked -> masters, in link order
}

// NewBrickGrid creates an empty grid of columns × rows cells.
func NewBrickGrid(columns, rows int, brickWidth, brickHeight int64) (*BrickGrid, error) {
	if columns <= 0 || rows <= 0 || brickWidth <= 0 || brickHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells of %dx%d", ErrInvalidGrid, columns, rows, brickWidth, brickHeight)
	}
	return &BrickGrid{
		columns:     columns,
		rows:        rows,
		brickWidth:  brickWidth,
		brickHeight: brickHeight,
		cells:       make([]*Brick, columns*rows),
		byID:        make(map[BrickID]*Brick),
		locks:       make(map[BrickID][]BrickID),
		masters:     make(map[BrickID][]BrickID),
	}, nil
}

func (g *BrickGrid) Columns() int { return g.columns }
func (g *BrickGrid) Rows() int { return g.rows }
func (g *BrickGrid) BrickWidth() int64 { return g.brickWidth }
func (g *BrickGrid) BrickHeight() int64 { return g.brickHeight }
func (g *BrickGrid) Width() int64 { return int64(g.columns) * g.brickWidth }
func (g *BrickGrid) Height() int64 { return int64(g.rows) * g.brickHeight }

// BoundingRect covers the brick area.
func (g *BrickGrid) BoundingRect() geom.Rectangle {
	return geom.NewRect(0, 0, g.Width(), g.Height())
}

// IsValidCell reports whether cell lies inside the grid.
func (g *BrickGrid) IsValidCell(cell geom.Point) bool {
	return 0 <= cell.X && cell.X < int64(g.columns) && 0 <= cell.Y && cell.Y < int64(g.rows)
}

func (g *BrickGrid) index(cell geom.Point) int {
	return int(cell.Y)*g.columns + int(cell.X)
}

// BrickAt returns the brick in cell, or nil when the cell is empty or
// outside the grid.
func (g *BrickGrid) BrickAt(cell geom.Point) *Brick {
	if !g.IsValidCell(cell) {
		return nil
	}
	return g.cells[g.index(cell)]
}

// Brick looks a brick up by id.
func (g *BrickGrid) Brick(id BrickID) (*Brick, bool) {
	b, ok := g.byID[id]
	return b, ok
}

// Contains reports whether the brick is still on the grid.
func (g *BrickGrid) Contains(id BrickID) bool {
	_, ok := g.byID[id]
	return ok
}

// BrickRect returns the world rectangle of cell.
func (g *BrickGrid) BrickRect(cell geom.Point) geom.Rectangle {
	return geom.NewRect(cell.X*g.brickWidth, cell.Y*g.brickHeight, g.brickWidth, g.brickHeight)
}

// Len returns the number of bricks left.
func (g *BrickGrid) Len() int {
	return len(g.byID)
}

// IsEmpty reports whether every brick is gone.
func (g *BrickGrid) IsEmpty() bool {
	return len(g.byID) == 0
}

// Bricks returns the bricks in row-major order.
func (g *BrickGrid) Bricks() []*Brick {
	bricks := make([]*Brick, 0, len(g.byID))
	for _, b := range g.cells {
		if b != nil {
			bricks = append(bricks, b)
		}
	}
	return bricks
}

func (g *BrickGrid) place(cell geom.Point, v variant) (*Brick, error) {
	if !g.IsValidCell(cell) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutsideGrid, cell, g.columns, g.rows)
	}
	if g.cells[g.index(cell)] != nil {
		return nil, fmt.Errorf("%w: %v", ErrCellOccupied, cell)
	}
	g.nextID++
	b := &Brick{
		id:       g.nextID,
		cell:     cell,
		geometry: g.BrickRect(cell),
		variant:  v,
	}
	g.cells[g.index(cell)] = b
	g.byID[b.id] = b
	return b, nil
}

func (g *BrickGrid) AddStandardBrick(cell geom.Point) (*Brick, error) {
	return g.place(cell, standardBrick{})
}

func (g *BrickGrid) AddSturdyBrick(cell geom.Point, lives int) (*Brick, error) {
	if lives <= 0 {
		panic(fmt.Sprintf("arena: sturdy brick needs positive lives, got %d", lives))
	}
	return g.place(cell, &sturdyBrick{lives: lives})
}

func (g *BrickGrid) AddGrowPaddleBrick(cell geom.Point) (*Brick, error) {
	return g.place(cell, paddleModifierBrick{grow: true})
}

func (g *BrickGrid) AddShrinkPaddleBrick(cell geom.Point) (*Brick, error) {
	return g.place(cell, paddleModifierBrick{grow: false})
}

func (g *BrickGrid) AddSpeedUpBrick(cell geom.Point) (*Brick, error) {
	return g.place(cell, ballModifierBrick{effect: effectSpeedUp})
}

func (g *BrickGrid) AddSlowDownBrick(cell geom.Point) (*Brick, error) {
	return g.place(cell, ballModifierBrick{effect: effectSlowDown})
}

func (g *BrickGrid) AddWeakeningBrick(cell geom.Point) (*Brick, error) {
	return g.place(cell, ballModifierBrick{effect: effectWeaken})
}

func (g *BrickGrid) AddStrengtheningBrick(cell geom.Point) (*Brick, error) {
	return g.place(cell, ballModifierBrick{effect: effectStrengthen})
}

func (g *BrickGrid) AddLockedBrick(cell geom.Point) (*Brick, error) {
	return g.place(cell, lockedBrick{})
}

// AddMasterBrick places a master brick linked to every brick in locked.
func (g *BrickGrid) AddMasterBrick(cell geom.Point, locked []BrickID) (*Brick, error) {
	for _, id := range locked {
		if b, ok := g.byID[id]; !ok || b.Kind() != KindLocked {
			return nil, fmt.Errorf("%w: %d is not a locked brick", ErrUnknownBrick, id)
		}
	}
	master, err := g.place(cell, masterBrick{})
	if err != nil {
		return nil, err
	}
	for _, id := range locked {
		if err := g.LinkLock(master.id, id); err != nil {
			return nil, err
		}
	}
	return master, nil
}

// LinkLock records that master unlocks locked. Linking twice is a no-op.
func (g *BrickGrid) LinkLock(master, locked BrickID) error {
	if b, ok := g.byID[master]; !ok || b.Kind() != KindMaster {
		return fmt.Errorf("%w: %d is not a master brick", ErrUnknownBrick, master)
	}
	if b, ok := g.byID[locked]; !ok || b.Kind() != KindLocked {
		return fmt.Errorf("%w: %d is not a locked brick", ErrUnknownBrick, locked)
	}
	if slices.Contains(g.locks[master], locked) {
		return nil
	}
	g.locks[master] = append(g.locks[master], locked)
	g.masters[locked] = append(g.masters[locked], master)
	return nil
}

// UnlinkLock removes the link between master and locked on both sides.
func (g *BrickGrid) UnlinkLock(master, locked BrickID) {
	g.locks[master] = slices.DeleteFunc(g.locks[master], func(id BrickID) bool { return id == locked })
	if len(g.locks[master]) == 0 {
		delete(g.locks, master)
	}
	g.masters[locked] = slices.DeleteFunc(g.masters[locked], func(id BrickID) bool { return id == master })
	if len(g.masters[locked]) == 0 {
		delete(g.masters, locked)
	}
}

// LockedBricks returns the locked bricks master still unlocks.
func (g *BrickGrid) LockedBricks(master BrickID) []BrickID {
	return slices.Clone(g.locks[master])
}

// MasterBricks returns the masters that unlock locked.
func (g *BrickGrid) MasterBricks(locked BrickID) []BrickID {
	return slices.Clone(g.masters[locked])
}

// SpeedModifier derives a key-ball's speed bias from the link graph: the
// sign is negative for an even number of masters, the magnitude is the
// largest lock count among those masters.
func (g *BrickGrid) SpeedModifier(locked BrickID) int {
	masters := g.masters[locked]
	sign := 1
	if len(masters)%2 == 0 {
		sign = -1
	}
	magnitude := 0
	for _, m := range masters {
		magnitude = max(magnitude, len(g.locks[m]))
	}
	return sign * magnitude
}

// Validate checks that every locked brick has at least one master.
func (g *BrickGrid) Validate() error {
	for _, b := range g.Bricks() {
		if b.Kind() == KindLocked && len(g.masters[b.id]) == 0 {
			return fmt.Errorf("%w: brick at %v", ErrOrphanLock, b.cell)
		}
	}
	return nil
}

// Remove takes b off the grid and drops its links.
func (g *BrickGrid) Remove(b *Brick) {
	if g.BrickAt(b.cell) != b {
		return
	}
	g.cells[g.index(b.cell)] = nil
	delete(g.byID, b.id)
	for _, locked := range g.LockedBricks(b.id) {
		g.UnlinkLock(b.id, locked)
	}
	for _, master := range g.MasterBricks(b.id) {
		g.UnlinkLock(master, b.id)
	}
}

// RemoveAt removes whatever brick occupies cell.
func (g *BrickGrid) RemoveAt(cell geom.Point) {
	if b := g.BrickAt(cell); b != nil {
		g.Remove(b)
	}
}

// FindEarliestCollision returns the first brick the ball will strike,
// sweeping grid lines along each axis of travel.
func (g *BrickGrid) FindEarliestCollision(ball geom.Circle, velocity geom.Vector) *BrickCollision {
	if velocity.IsZero() {
		return nil
	}
	p := ball.PointInDirection(velocity)
	var horizontal, vertical *BrickCollision
	switch {
	case velocity.X < 0:
		horizontal = g.sweepLeft(p, velocity)
	case velocity.X > 0:
		horizontal = g.sweepRight(p, velocity)
	}
	switch {
	case velocity.Y < 0:
		vertical = g.sweepUp(p, velocity)
	case velocity.Y > 0:
		vertical = g.sweepDown(p, velocity)
	}
	return Earliest(horizontal, vertical)
}

func (g *BrickGrid) collisionAt(cell geom.Point, preciseT int64, normal geom.Vector) *BrickCollision {
	b := g.BrickAt(cell)
	if b == nil {
		return nil
	}
	return &BrickCollision{
		Collision: Collision{Time: preciseT / 1000, KiloNormal: normal},
		Brick:     b.id,
	}
}

// Crossing times are kept in thousandths until a brick is found.

func (g *BrickGrid) sweepUp(p geom.Point, v geom.Vector) *BrickCollision {
	h, w := g.brickHeight, g.brickWidth
	for y := p.Y / h * h; y > 0; y -= h {
		t := (y - p.Y) * 1000 / v.Y
		x := p.X + v.X*t/1000
		cell := geom.NewPoint(geom.FloorDiv(x, w), geom.FloorDiv(y, h)-1)
		if c := g.collisionAt(cell, t, geom.KiloDown); c != nil {
			return c
		}
	}
	return nil
}

func (g *BrickGrid) sweepDown(p geom.Point, v geom.Vector) *BrickCollision {
	h, w := g.brickHeight, g.brickWidth
	for y := (p.Y + h - 1) / h * h; y < g.Height(); y += h {
		t := (y - p.Y) * 1000 / v.Y
		x := p.X + v.X*t/1000
		cell := geom.NewPoint(geom.FloorDiv(x, w), geom.FloorDiv(y, h))
		if c := g.collisionAt(cell, t, geom.KiloUp); c != nil {
			return c
		}
	}
	return nil
}

func (g *BrickGrid) sweepLeft(p geom.Point, v geom.Vector) *BrickCollision {
	h, w := g.brickHeight, g.brickWidth
	for x := p.X / w * w; x > 0; x -= w {
		t := (x - p.X) * 1000 / v.X
		y := p.Y + v.Y*t/1000
		cell := geom.NewPoint(geom.FloorDiv(x, w)-1, geom.FloorDiv(y, h))
		if c := g.collisionAt(cell, t, geom.KiloRight); c != nil {
			return c
		}
	}
	return nil
}

func (g *BrickGrid) sweepRight(p geom.Point, v geom.Vector) *BrickCollision {
	h, w := g.brickHeight, g.brickWidth
	for x := (p.X + w - 1) / w * w; x < g.Width(); x += w {
		t := (x - p.X) * 1000 / v.X
		y := p.Y + v.Y*t/1000
		cell := geom.NewPoint(geom.FloorDiv(x, w), geom.FloorDiv(y, h))
		if c := g.collisionAt(cell, t, geom.KiloLeft); c != nil {
			return c
		}
	}
	return nil
}
