package core

// RuntimeConfig describes the terminal a session renders into and how
// wall-clock frames map onto simulation time.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	FPS        int   // Rendered frames per second
	FrameMS    int64 // Simulation time advanced per frame
	HoldFrames int   // Frames a single key press keeps the paddle moving
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		FPS:        60,
		FrameMS:    16,
		HoldFrames: 6,
	}
}

// WithSize returns a copy of c for a terminal of the given size. Non-positive
// dimensions keep the current ones.
func (c RuntimeConfig) WithSize(w, h int) RuntimeConfig {
	if w > 0 {
		c.ScreenW = w
	}
	if h > 0 {
		c.ScreenH = h
	}
	return c
}
