package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Spawner creates obstacle pairs on a timer and scrolls them left.
type Spawner struct {
	cfg      config.SpawnerConfig
	size     core.Vec2
	speed    float64
	despawn  float64
	rng      *rand.Rand
	nextPair PairID
}

// NewSpawner creates a spawner drawing gap positions from the given seed.
func NewSpawner(cfg config.FlappyConfig, seed int64) *Spawner {
	w, h := cfg.ObstacleSize()
	return &Spawner{
		cfg:     cfg.Spawner,
		size:    core.Vec2{X: w, Y: h},
		speed:   cfg.Obstacles.Speed,
		despawn: cfg.Obstacles.DespawnMargin,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Step runs spawn-if-due, move-all and despawn-offscreen, in that order.
// A pair spawned in this tick is not moved until the next tick, so it is
// observed at exactly its spawn position.
func (sp *Spawner) Step(w *World, dt float64) []Event {
	var events []Event

	if w.SpawnTimer.Tick(dt) {
		events = append(events, sp.spawnPair(w)...)
	}

	dx := sp.speed * dt
	w.Obstacles.Each(func(o *Obstacle) {
		if o.Born == w.Tick {
			return
		}
		o.Pos.X -= dx
	})

	limit := -w.Bounds.HalfWidth() - sp.despawn
	for _, id := range w.Obstacles.IDs() {
		o, _ := w.Obstacles.Get(id)
		if o.Pos.X < limit {
			w.Obstacles.Remove(id)
			events = append(events, Event{Kind: EventDespawn, Obstacle: id, Pair: o.Pair})
		}
	}

	return events
}

// spawnPair places both obstacles of a new pair at the right edge.
// Only the lower one starts unscored, so a pair yields exactly one pass.
func (sp *Spawner) spawnPair(w *World) []Event {
	sp.nextPair++
	pair := sp.nextPair

	upperY := sp.cfg.UpperMin + sp.rng.Float64()*(sp.cfg.UpperMax-sp.cfg.UpperMin)
	lowerY := upperY - sp.cfg.PairOffset - sp.cfg.Gap
	x := w.Bounds.HalfWidth() + sp.cfg.SpawnMargin

	upper := w.Obstacles.Insert(Obstacle{
		Pair:   pair,
		Member: MemberUpper,
		Pos:    core.Vec2{X: x, Y: upperY},
		Size:   sp.size,
		Scored: true,
		Born:   w.Tick,
	})
	lower := w.Obstacles.Insert(Obstacle{
		Pair:   pair,
		Member: MemberLower,
		Pos:    core.Vec2{X: x, Y: lowerY},
		Size:   sp.size,
		Scored: false,
		Born:   w.Tick,
	})

	return []Event{
		{Kind: EventSpawn, Obstacle: upper, Pair: pair},
		{Kind: EventSpawn, Obstacle: lower, Pair: pair},
	}
}
