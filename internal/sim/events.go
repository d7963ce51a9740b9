package sim

import "fmt"

// EventKind classifies a domain event emitted during a tick.
type EventKind int

const (
	EventJump        EventKind = iota // The actor was launched upward
	EventSpawn                        // An obstacle was created
	EventDespawn                      // An obstacle left the play area and was removed
	EventCollision                    // The actor overlaps at least one obstacle
	EventOutOfBounds                  // The actor left the play area vertically
	EventPass                         // A pair passed the actor; worth one point
	EventPhaseChange                  // The state machine changed phase
)

// String returns a short lowercase name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventSpawn:
		return "spawn"
	case EventDespawn:
		return "despawn"
	case EventCollision:
		return "collision"
	case EventOutOfBounds:
		return "out_of_bounds"
	case EventPass:
		return "pass"
	case EventPhaseChange:
		return "phase_change"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is something that happened during a tick.
// Obstacle and Pair are set for obstacle-related kinds; From and To for phase changes.
type Event struct {
	Kind     EventKind
	Obstacle ObstacleID
	Pair     PairID
	From, To Phase
}

// Count returns how many events of the given kind are in the list.
func Count(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
