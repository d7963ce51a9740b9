package core

import "sort"

// Action represents a semantic game action, abstracted from physical key presses.
// Every action is an edge: it is set only for the tick in which the key went down.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap
	ActionStart          // Space - leave the main menu
	ActionRestart        // Enter, R - play again after game over
	ActionPause          // P - freeze the frontend clock
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// simActions are the actions that reach the simulation and are journaled.
var simActions = []Action{ActionJump, ActionStart, ActionRestart}

// InputFrame represents the input edges sampled for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// List returns the triggered actions in ascending order.
func (f InputFrame) List() []Action {
	out := make([]Action, 0, len(f.Actions))
	for a, on := range f.Actions {
		if on {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Bits packs the simulation actions of the frame into a bitmask.
// Frontend-only actions (pause, quit) are dropped.
func (f InputFrame) Bits() uint8 {
	var bits uint8
	for i, a := range simActions {
		if f.Has(a) {
			bits |= 1 << i
		}
	}
	return bits
}

// FrameFromBits is the inverse of Bits.
func FrameFromBits(bits uint8) InputFrame {
	f := NewInputFrame()
	for i, a := range simActions {
		if bits&(1<<i) != 0 {
			f.Set(a)
		}
	}
	return f
}
