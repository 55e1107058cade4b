package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // Left arrow, A
	ActionRotateRight        // Right arrow, D
	ActionThrust             // Up arrow, W
	ActionFire               // Space
	ActionConfirm            // Enter - play again / select
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions active during one simulation tick.
// It is a bitmask so frames can be recorded and replayed cheaply.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputFrameFromBits rebuilds a frame from its recorded bitmask.
func InputFrameFromBits(bits uint32) InputFrame {
	return InputFrame{bits: bits}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone {
		return false
	}
	return f.bits&(1<<uint(a)) != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Bits returns the raw bitmask.
func (f InputFrame) Bits() uint32 {
	return f.bits
}
