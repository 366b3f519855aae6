// Package tui provides the Bubble Tea front end for the arena: the level
// menu, the play view, the runs board and SSH sessions served via Wish.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one rendered frame of a play view.
type TickMsg struct {
	ID   int64 // Play view the tick belongs to
	Time time.Time
}

var playIDs atomic.Int64

// nextPlayID hands out ids so ticks of an abandoned play view are dropped.
func nextPlayID() int64 {
	return playIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
