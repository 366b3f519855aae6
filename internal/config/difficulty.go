package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScales holds paddle and ball scaling in thousandths per preset.
var presetScales = map[DifficultyPreset]struct{ paddle, ball int64 }{
	DifficultyEasy:   {paddle: 1500, ball: 800},
	DifficultyNormal: {paddle: 1000, ball: 1000},
	DifficultyHard:   {paddle: 750, ball: 1250},
}

// Presets lists the known presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(name)
	if _, ok := presetScales[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p, nil
}

// ApplyPreset scales the paddle and ball of cfg for a difficulty preset.
// Unknown presets leave cfg untouched.
func ApplyPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	s, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Paddle.Scale = s.paddle
	cfg.Ball.SpeedScale = s.ball
}
