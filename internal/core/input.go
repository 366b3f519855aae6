package core

// Action represents a semantic input action, abstracted from physical key
// presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - move paddle left
	ActionRight          // D, L, Right arrow - move paddle right
	ActionStop           // S, Down arrow - stop the paddle
	ActionPause          // P, Space - pause/unpause
	ActionRestart        // R - restart the level
	ActionHelp           // ? - toggle the full help view
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one rendered frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Steering turns key presses into a held paddle direction. Terminals only
// report key presses, so a press keeps its direction for a number of frames
// and repeats from the keyboard extend it.
type Steering struct {
	hold   int
	action Action
	left   int
}

// NewSteering creates a Steering that holds a direction for hold frames.
func NewSteering(hold int) *Steering {
	return &Steering{hold: max(hold, 1)}
}

// Apply feeds the frame's actions into the steering state.
func (s *Steering) Apply(f InputFrame) {
	switch {
	case f.Has(ActionStop):
		s.action, s.left = ActionNone, 0
	case f.Has(ActionLeft) && !f.Has(ActionRight):
		s.action, s.left = ActionLeft, s.hold
	case f.Has(ActionRight) && !f.Has(ActionLeft):
		s.action, s.left = ActionRight, s.hold
	}
}

// Step returns the direction for the current frame and counts it down.
func (s *Steering) Step() Action {
	if s.left == 0 {
		return ActionNone
	}
	s.left--
	return s.action
}

// Reset drops any held direction.
func (s *Steering) Reset() {
	s.action, s.left = ActionNone, 0
}
