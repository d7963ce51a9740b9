package sim

import "fmt"

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Trigger is a condition that may move the state machine.
type Trigger int

const (
	TriggerStart       Trigger = iota // Start edge
	TriggerRestart                    // Restart edge
	TriggerCollision                  // Collision event
	TriggerOutOfBounds                // Out-of-bounds event
)

// String returns a human-readable trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerRestart:
		return "restart"
	case TriggerCollision:
		return "collision"
	case TriggerOutOfBounds:
		return "out_of_bounds"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// Transition describes a phase change that happened in a tick.
type Transition struct {
	From, To Phase
	Trigger  Trigger
}

// entryAction runs once when a phase is entered.
type entryAction func(w *World)

type transitionKey struct {
	from Phase
	on   Trigger
}

type transitionRule struct {
	to    Phase
	enter []entryAction
}

// enterPlaying resets everything a fresh attempt depends on.
var enterPlaying = []entryAction{
	func(w *World) { w.Actor.reset() },
	func(w *World) { w.Score.Reset() },
	func(w *World) { w.Obstacles.Clear() },
	func(w *World) { w.SpawnTimer.Reset() },
	func(w *World) { w.WingTimer.Reset(); w.WingFrame = 0 },
}

// transitions is the complete state machine. Pairs not listed are ignored.
var transitions = map[transitionKey]transitionRule{
	{PhaseMainMenu, TriggerStart}:      {to: PhasePlaying, enter: enterPlaying},
	{PhasePlaying, TriggerCollision}:   {to: PhaseGameOver},
	{PhasePlaying, TriggerOutOfBounds}: {to: PhaseGameOver},
	{PhaseGameOver, TriggerRestart}:    {to: PhasePlaying, enter: enterPlaying},
}

// Machine applies the transition table to a world.
type Machine struct{}

// Fire applies the first trigger that has a rule for the current phase,
// runs the entry actions of the new phase to completion and reports the
// transition. Later triggers are ignored: at most one transition per call.
func (Machine) Fire(w *World, triggers ...Trigger) (Transition, bool) {
	for _, t := range triggers {
		rule, ok := transitions[transitionKey{w.Phase, t}]
		if !ok {
			continue
		}
		tr := Transition{From: w.Phase, To: rule.to, Trigger: t}
		w.Phase = rule.to
		for _, enter := range rule.enter {
			enter(w)
		}
		return tr, true
	}
	return Transition{}, false
}

// Allowed reports whether trigger moves the machine out of phase.
func Allowed(from Phase, on Trigger) bool {
	_, ok := transitions[transitionKey{from, on}]
	return ok
}
