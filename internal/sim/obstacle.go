package sim

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObstacleID identifies an obstacle for its whole lifetime. IDs are never reused.
type ObstacleID uint64

// PairID identifies the pair an obstacle was spawned with.
type PairID uint64

// Member tells which half of its pair an obstacle is.
type Member uint8

const (
	MemberUpper Member = iota
	MemberLower
)

// String returns "upper" or "lower".
func (m Member) String() string {
	if m == MemberUpper {
		return "upper"
	}
	return "lower"
}

// Obstacle is one horizontally moving barrier.
type Obstacle struct {
	ID     ObstacleID
	Pair   PairID
	Member Member
	Pos    core.Vec2
	Size   core.Vec2 // Image size times scale
	Scored bool      // Set once the obstacle has produced (or may no longer produce) a pass
	Born   uint64    // Tick the obstacle was spawned in
}

// Box returns the obstacle's hitbox.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.Pos, o.Size)
}

// markScored flips Scored and reports whether it changed.
func (o *Obstacle) markScored() bool {
	if o.Scored {
		return false
	}
	o.Scored = true
	return true
}

// Arena stores live obstacles keyed by their stable ID.
// Records can be removed individually in any order.
type Arena struct {
	records *intmap.Map[ObstacleID, *Obstacle]
	nextID  ObstacleID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		records: intmap.New[ObstacleID, *Obstacle](16),
	}
}

// Insert stores a copy of o under a fresh ID and returns the ID.
func (a *Arena) Insert(o Obstacle) ObstacleID {
	a.nextID++
	o.ID = a.nextID
	a.records.Put(o.ID, &o)
	return o.ID
}

// Get returns a copy of the obstacle with the given ID.
func (a *Arena) Get(id ObstacleID) (Obstacle, bool) {
	o, ok := a.records.Get(id)
	if !ok {
		return Obstacle{}, false
	}
	return *o, true
}

// Remove deletes the obstacle and reports whether it existed.
func (a *Arena) Remove(id ObstacleID) bool {
	return a.records.Del(id)
}

// Len returns the number of live obstacles.
func (a *Arena) Len() int {
	return a.records.Len()
}

// Clear removes every obstacle. ID allocation continues where it left off.
func (a *Arena) Clear() {
	a.records.Clear()
}

// IDs returns the live IDs in ascending (spawn) order.
func (a *Arena) IDs() []ObstacleID {
	ids := make([]ObstacleID, 0, a.records.Len())
	a.records.ForEach(func(id ObstacleID, _ *Obstacle) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)
	return ids
}

// Each calls fn for every live obstacle in ID order.
// fn may modify the obstacle but must not insert or remove records.
func (a *Arena) Each(fn func(o *Obstacle)) {
	for _, id := range a.IDs() {
		o, _ := a.records.Get(id)
		fn(o)
	}
}

// Snapshot returns copies of all live obstacles in ID order.
func (a *Arena) Snapshot() []Obstacle {
	out := make([]Obstacle, 0, a.records.Len())
	a.Each(func(o *Obstacle) {
		out = append(out, *o)
	})
	return out
}
