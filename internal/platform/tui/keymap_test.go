package tui

import (
	"testing"

	"github.com/vovakirdan/brick-arena/internal/arena"
	"github.com/vovakirdan/brick-arena/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"a", core.ActionLeft},
		{"h", core.ActionLeft},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"right", core.ActionRight},
		{"s", core.ActionStop},
		{"down", core.ActionStop},
		{"p", core.ActionPause},
		{" ", core.ActionPause},
		{"r", core.ActionRestart},
		{"?", core.ActionHelp},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
		{"esc", core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := keys.Action(keyPress(tt.key)); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if keys.MapKeyToFrame(keyPress("a"), &frame) {
		t.Error("left must not be a quit request")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should hold ActionLeft")
	}
	if keys.MapKeyToFrame(keyPress("x"), &frame) {
		t.Error("unbound key must not be a quit request")
	}
	if !keys.MapKeyToFrame(keyPress("q"), &frame) {
		t.Error("q should be a quit request")
	}
}

func TestMenuAction(t *testing.T) {
	keys := DefaultMenuKeyMap()
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"d", MenuActionDifficulty},
		{"tab", MenuActionRuns},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := keys.MenuAction(keyPress(tt.key)); got != tt.want {
				t.Errorf("MenuAction(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestPaddleDirection(t *testing.T) {
	tests := []struct {
		action core.Action
		want   arena.Direction
	}{
		{core.ActionLeft, arena.MovingLeft},
		{core.ActionRight, arena.MovingRight},
		{core.ActionNone, arena.Stationary},
		{core.ActionStop, arena.Stationary},
	}
	for _, tt := range tests {
		if got := paddleDirection(tt.action); got != tt.want {
			t.Errorf("paddleDirection(%v) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 8 {
		t.Errorf("full help lists %d bindings, want 8", n)
	}
}
