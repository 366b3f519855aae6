package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the hard-coded arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Simulation: SimulationConfig{
			MaxTimeDelta: 20,
			FrameMS:      16,
		},
		Field: FieldConfig{
			BrickWidth:  10000,
			BrickHeight: 3000,
		},
		Paddle: PaddleConfig{
			Scale: 1000,
		},
		Ball: BallConfig{
			Radius:     500,
			VelocityX:  25,
			VelocityY:  -25,
			SpeedScale: 1000,
		},
		Display: DisplayConfig{
			FPS:        60,
			HoldFrames: 6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
