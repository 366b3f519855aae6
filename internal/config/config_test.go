package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultArenaConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultArenaConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultArenaConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("field:\n  brick_width: 2000\nball:\n  radius: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.BrickWidth != 2000 || cfg.Ball.Radius != 100 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Field.BrickHeight != 3000 || cfg.Simulation.MaxTimeDelta != 20 {
		t.Errorf("missing keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("simulation:\n  max_time_delta: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultArenaConfig() {
		t.Errorf("without files got %+v, want defaults", cfg)
	}

	writeConfig(t, filepath.Join(work, "configs", FileName), "display:\n  fps: 30\n")
	if cfg, _ := Load(""); cfg.Display.FPS != 30 {
		t.Errorf("local config ignored: fps = %d", cfg.Display.FPS)
	}

	writeConfig(t, filepath.Join(home, ".arena", "configs", FileName), "display:\n  fps: 24\n")
	if cfg, _ := Load(""); cfg.Display.FPS != 24 {
		t.Errorf("user config should win over local: fps = %d", cfg.Display.FPS)
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDerivedPaddleAndBall(t *testing.T) {
	cfg := DefaultArenaConfig()
	if got := cfg.PaddleHalfWidth(); got != 10000 {
		t.Errorf("PaddleHalfWidth = %d, want brick width 10000", got)
	}
	if got := cfg.PaddleSpeed(); got != 100 {
		t.Errorf("PaddleSpeed = %d, want 100", got)
	}
	if x, y := cfg.BallVelocity(); x != 25 || y != -25 {
		t.Errorf("BallVelocity = (%d,%d), want (25,-25)", x, y)
	}

	cfg.Paddle.HalfWidth = 4000
	cfg.Paddle.Speed = 7
	if cfg.PaddleHalfWidth() != 4000 || cfg.PaddleSpeed() != 7 {
		t.Errorf("explicit paddle settings ignored: %d, %d", cfg.PaddleHalfWidth(), cfg.PaddleSpeed())
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		halfWidth int64
		velocityX int64
		velocityY int64
	}{
		{DifficultyEasy, 15000, 20, -20},
		{DifficultyNormal, 10000, 25, -25},
		{DifficultyHard, 7500, 31, -31},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultArenaConfig()
			ApplyPreset(&cfg, tt.preset)
			if got := cfg.PaddleHalfWidth(); got != tt.halfWidth {
				t.Errorf("half width = %d, want %d", got, tt.halfWidth)
			}
			if x, y := cfg.BallVelocity(); x != tt.velocityX || y != tt.velocityY {
				t.Errorf("velocity = (%d,%d), want (%d,%d)", x, y, tt.velocityX, tt.velocityY)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	for _, p := range Presets() {
		if got, err := ParsePreset(string(p)); err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
