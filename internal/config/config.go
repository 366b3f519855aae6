// Package config provides YAML-based arena configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// ArenaConfig contains all tunables of a brick arena session.
type ArenaConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Field      FieldConfig      `yaml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Display    DisplayConfig    `yaml:"display"`
}

// SimulationConfig controls how time is fed to the simulation.
type SimulationConfig struct {
	MaxTimeDelta int64 `yaml:"max_time_delta"` // Largest sub-step per atomic tick
	FrameMS      int64 `yaml:"frame_ms"`       // Simulated time per rendered frame
}

// FieldConfig sets the world size of a single brick cell.
type FieldConfig struct {
	BrickWidth  int64 `yaml:"brick_width"`
	BrickHeight int64 `yaml:"brick_height"`
}

// PaddleConfig defines the paddle. Zero values derive from the brick size.
type PaddleConfig struct {
	HalfWidth int64 `yaml:"half_width"` // 0 = brick width
	Speed     int64 `yaml:"speed"`      // 0 = brick width / 100
	Scale     int64 `yaml:"scale"`      // Thousandths applied to the half width
}

// BallConfig defines the ball put into play at the start of a level.
type BallConfig struct {
	Radius     int64 `yaml:"radius"`
	VelocityX  int64 `yaml:"velocity_x"`
	VelocityY  int64 `yaml:"velocity_y"`
	SpeedScale int64 `yaml:"speed_scale"` // Thousandths applied to the velocity
}

// DisplayConfig controls the terminal front end.
type DisplayConfig struct {
	FPS        int `yaml:"fps"`
	HoldFrames int `yaml:"hold_frames"` // Frames a key press keeps the paddle moving
}

// Validate reports the first setting the simulation cannot work with.
func (c ArenaConfig) Validate() error {
	switch {
	case c.Simulation.MaxTimeDelta <= 0:
		return fmt.Errorf("%w: simulation.max_time_delta must be positive", ErrInvalidConfig)
	case c.Simulation.FrameMS <= 0:
		return fmt.Errorf("%w: simulation.frame_ms must be positive", ErrInvalidConfig)
	case c.Field.BrickWidth <= 0 || c.Field.BrickHeight <= 0:
		return fmt.Errorf("%w: field brick size must be positive", ErrInvalidConfig)
	case c.Paddle.HalfWidth < 0 || c.Paddle.Speed < 0 || c.Paddle.Scale < 0:
		return fmt.Errorf("%w: paddle settings must not be negative", ErrInvalidConfig)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball.radius must be positive", ErrInvalidConfig)
	case c.Ball.SpeedScale < 0:
		return fmt.Errorf("%w: ball.speed_scale must not be negative", ErrInvalidConfig)
	case c.Display.FPS <= 0:
		return fmt.Errorf("%w: display.fps must be positive", ErrInvalidConfig)
	}
	return nil
}

// PaddleHalfWidth resolves the paddle half width for the configured brick size.
func (c ArenaConfig) PaddleHalfWidth() int64 {
	hw := c.Paddle.HalfWidth
	if hw == 0 {
		hw = c.Field.BrickWidth
	}
	if c.Paddle.Scale > 0 {
		hw = hw * c.Paddle.Scale / 1000
	}
	return max(hw, 1)
}

// PaddleSpeed resolves the paddle speed for the configured brick size.
func (c ArenaConfig) PaddleSpeed() int64 {
	if c.Paddle.Speed != 0 {
		return c.Paddle.Speed
	}
	return c.Field.BrickWidth / 100
}

// BallVelocity returns the scaled starting velocity components.
func (c ArenaConfig) BallVelocity() (x, y int64) {
	x, y = c.Ball.VelocityX, c.Ball.VelocityY
	if c.Ball.SpeedScale > 0 {
		x = x * c.Ball.SpeedScale / 1000
		y = y * c.Ball.SpeedScale / 1000
	}
	return x, y
}
