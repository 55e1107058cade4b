package tui

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHoldDuration is how long a key press keeps its action held.
const DefaultHoldDuration = 200 * time.Millisecond

// maxAction bounds the per-action countdown table.
const maxAction = 32

// HeldInput turns key presses into held actions.
// Terminals report key presses (with autorepeat) but never releases, so a
// continuous action stays held for a fixed number of ticks after its last
// press. One-shot actions are delivered on exactly one tick.
type HeldInput struct {
	holdTicks int
	remaining [maxAction]int
	pulse     core.InputFrame
}

// NewHeldInput creates a tracker that holds actions for holdTicks ticks.
func NewHeldInput(holdTicks int) *HeldInput {
	return &HeldInput{holdTicks: max(holdTicks, 1)}
}

// HoldTicksFor converts a hold duration to ticks at the given rate, rounding up.
func HoldTicksFor(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := (int64(d)*int64(tickRate) + int64(time.Second) - 1) / int64(time.Second)
	return max(int(ticks), 1)
}

// IsHeldAction reports whether an action is continuous (held) rather than one-shot.
func IsHeldAction(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust, core.ActionFire:
		return true
	}
	return false
}

// Press registers a key press for an action.
func (h *HeldInput) Press(a core.Action) {
	if a <= core.ActionNone || int(a) >= maxAction {
		return
	}
	if !IsHeldAction(a) {
		h.pulse.Set(a)
		return
	}

	h.remaining[a] = h.holdTicks
	// Opposite rotations cancel each other
	switch a {
	case core.ActionRotateLeft:
		h.remaining[core.ActionRotateRight] = 0
	case core.ActionRotateRight:
		h.remaining[core.ActionRotateLeft] = 0
	}
}

// Next returns the input for the coming tick and advances the hold timers.
func (h *HeldInput) Next() core.InputFrame {
	frame := h.pulse
	h.pulse.Clear()

	for a := range h.remaining {
		if h.remaining[a] > 0 {
			frame.Set(core.Action(a))
			h.remaining[a]--
		}
	}
	return frame
}

// Held reports whether an action is currently held.
func (h *HeldInput) Held(a core.Action) bool {
	if a <= core.ActionNone || int(a) >= maxAction {
		return false
	}
	return h.remaining[a] > 0
}

// Reset releases every action.
func (h *HeldInput) Reset() {
	h.remaining = [maxAction]int{}
	h.pulse.Clear()
}
