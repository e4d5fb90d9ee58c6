package tui

import "github.com/vovakirdan/tui-asteroids/internal/core"

// heldActions are level-triggered: they stay active while the key is down.
var heldActions = []core.Action{
	core.ActionRotateLeft,
	core.ActionRotateRight,
	core.ActionThrust,
	core.ActionFire,
	core.ActionShield,
}

func isHeld(a core.Action) bool {
	for _, h := range heldActions {
		if h == a {
			return true
		}
	}
	return false
}

// Input builds one InputFrame per tick from key presses. Terminals report
// no key releases, so a held action stays active for holdTicks after its
// last press and the keyboard auto-repeat keeps it alive. Other actions
// are delivered exactly once.
type Input struct {
	holdTicks int
	held      map[core.Action]int
	pending   []core.Action
	frame     core.InputFrame
}

// NewInput creates an input tracker.
func NewInput(holdTicks int) *Input {
	return &Input{
		holdTicks: max(holdTicks, 1),
		held:      make(map[core.Action]int),
		frame:     core.NewInputFrame(),
	}
}

// Press records a key press.
func (in *Input) Press(a core.Action) {
	switch {
	case a == core.ActionNone:
	case isHeld(a):
		in.held[a] = in.holdTicks
	default:
		in.pending = append(in.pending, a)
	}
}

// Frame returns the actions for the next tick and ages the held ones.
// The returned frame is reused by the next call.
func (in *Input) Frame() core.InputFrame {
	in.frame.Clear()
	for a, n := range in.held {
		in.frame.Set(a)
		if n <= 1 {
			delete(in.held, a)
		} else {
			in.held[a] = n - 1
		}
	}
	for _, a := range in.pending {
		in.frame.Set(a)
	}
	in.pending = in.pending[:0]
	return in.frame
}

// Reset drops every held and pending action.
func (in *Input) Reset() {
	clear(in.held)
	in.pending = in.pending[:0]
}
