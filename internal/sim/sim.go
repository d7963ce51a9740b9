// Package sim implements the flappy simulation core: physics, obstacle
// spawning, collision and pass detection, scoring and the game state machine.
//
// The package performs no I/O. A frontend feeds one elapsed-time value and one
// input frame per tick and reads back a snapshot and the events of the tick.
package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Simulation runs the fixed per-tick order over a World.
type Simulation struct {
	cfg      config.FlappyConfig
	world    *World
	physics  Physics
	spawner  *Spawner
	detector Detector
	wing     Wing
	machine  Machine
}

// TickResult is returned by Tick.
type TickResult struct {
	Phase      Phase
	Transition *Transition // Set when the phase changed this tick
	Events     []Event     // In emission order
}

// New creates a simulation in the main menu.
// The configuration must have passed Validate.
func New(cfg config.FlappyConfig, seed int64) *Simulation {
	return &Simulation{
		cfg:     cfg,
		world:   NewWorld(cfg),
		physics: Physics{LaunchSpeed: cfg.Physics.LaunchSpeed},
		spawner: NewSpawner(cfg, seed),
		wing:    Wing{Frames: cfg.Animation.Frames},
	}
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.FlappyConfig {
	return s.cfg
}

// World exposes the simulation context. Callers outside the tick must treat it as read-only.
func (s *Simulation) World() *World {
	return s.world
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase {
	return s.world.Phase
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.world.Score.Value()
}

// SetBounds updates the play area. It takes effect from the next tick.
func (s *Simulation) SetBounds(width, height float64) {
	b := Bounds{Width: width, Height: height}
	b.validate()
	s.world.Bounds = b
}

// Tick advances the simulation by dt seconds using the edges in frame.
//
// Outside of play only the Start and Restart edges are looked at. While
// playing, the order is: physics, wing animation, spawner, detector,
// state transition, score.
func (s *Simulation) Tick(dt float64, frame core.InputFrame) TickResult {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic(fmt.Sprintf("sim: invalid dt %v", dt))
	}

	w := s.world
	w.Tick++

	if w.Phase != PhasePlaying {
		var triggers []Trigger
		if frame.Has(core.ActionStart) {
			triggers = append(triggers, TriggerStart)
		}
		if frame.Has(core.ActionRestart) {
			triggers = append(triggers, TriggerRestart)
		}
		res := TickResult{}
		s.fire(&res, triggers)
		res.Phase = w.Phase
		return res
	}

	res := TickResult{}
	res.Events = append(res.Events, s.physics.Step(w, dt, frame.Has(core.ActionJump))...)
	s.wing.Step(w, dt)
	res.Events = append(res.Events, s.spawner.Step(w, dt)...)

	detected := s.detector.Detect(w)
	res.Events = append(res.Events, detected...)

	// Collision wins over out-of-bounds when both happen in one tick.
	var triggers []Trigger
	if Count(detected, EventCollision) > 0 {
		triggers = append(triggers, TriggerCollision)
	}
	if Count(detected, EventOutOfBounds) > 0 {
		triggers = append(triggers, TriggerOutOfBounds)
	}
	s.fire(&res, triggers)

	w.Score.Apply(detected)
	res.Phase = w.Phase
	return res
}

func (s *Simulation) fire(res *TickResult, triggers []Trigger) {
	tr, ok := s.machine.Fire(s.world, triggers...)
	if !ok {
		return
	}
	res.Transition = &tr
	res.Events = append(res.Events, Event{Kind: EventPhaseChange, From: tr.From, To: tr.To})
}

// ActorView is the read-only actor state for renderers.
type ActorView struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Size      core.Vec2
	Tilt      float64
	WingFrame int
}

// Snapshot is a copy of everything a renderer needs.
type Snapshot struct {
	Phase     Phase
	Score     int
	Tick      uint64
	Bounds    Bounds
	Actor     ActorView
	Obstacles []Obstacle // Ordered by ID
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	return Snapshot{
		Phase:  w.Phase,
		Score:  w.Score.Value(),
		Tick:   w.Tick,
		Bounds: w.Bounds,
		Actor: ActorView{
			Pos:       w.Actor.Pos,
			Vel:       w.Actor.Vel,
			Size:      w.Actor.Size,
			Tilt:      w.Actor.Tilt,
			WingFrame: w.WingFrame,
		},
		Obstacles: w.Obstacles.Snapshot(),
	}
}
