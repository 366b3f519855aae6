package arena

// Snapshot is a flat copy of the simulation state, used to compare runs.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Elapsed         int64
	PaddleX         int64
	PaddleHalfWidth int64
	PaddleDirection int
	KeySpawns       int

	// Each ball is 7 ints: X, Y, Radius, VX, VY, BehaviorKind, Extra
	// (time left for temporary effects, speed modifier for key-balls).
	BallCount int
	BallData  []int64

	// Each brick is 5 ints: ID, Column, Row, Kind, Lives.
	BrickCount int
	BrickData  []int64
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	ballData := make([]int64, 0, len(s.balls)*7)
	for _, b := range s.balls {
		var extra int64
		switch behavior := b.behavior.(type) {
		case *Temporary:
			extra = behavior.timeLeft
		case *KeyBall:
			extra = int64(behavior.speedModifier)
		}
		ballData = append(ballData,
			b.geometry.Center.X, b.geometry.Center.Y, b.geometry.Radius,
			b.velocity.X, b.velocity.Y,
			int64(b.behavior.Kind()), extra)
	}

	bricks := s.grid.Bricks()
	brickData := make([]int64, 0, len(bricks)*5)
	for _, b := range bricks {
		brickData = append(brickData, int64(b.id), b.cell.X, b.cell.Y, int64(b.Kind()), int64(b.Lives()))
	}

	return Snapshot{
		Elapsed:         s.elapsed,
		PaddleX:         s.paddle.topCenter.X,
		PaddleHalfWidth: s.paddle.halfWidth,
		PaddleDirection: int(s.paddle.direction),
		KeySpawns:       s.keySpawns,
		BallCount:       len(s.balls),
		BallData:        ballData,
		BrickCount:      len(bricks),
		BrickData:       brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Elapsed)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleHalfWidth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleDirection) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.KeySpawns)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BrickCount)      //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
