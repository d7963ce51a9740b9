package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bounds is the play area size supplied by the viewport.
// The area is centered on the origin.
type Bounds struct {
	Width, Height float64
}

// HalfWidth returns Width/2.
func (b Bounds) HalfWidth() float64 { return b.Width / 2 }

// HalfHeight returns Height/2.
func (b Bounds) HalfHeight() float64 { return b.Height / 2 }

// OutsideVertically reports whether y is above the top or below the bottom edge.
func (b Bounds) OutsideVertically(y float64) bool {
	return y > b.HalfHeight() || y < -b.HalfHeight()
}

func (b Bounds) validate() {
	if !(b.Width > 0) || !(b.Height > 0) {
		panic(fmt.Sprintf("sim: play area must be positive, got %vx%v", b.Width, b.Height))
	}
}

// World is the mutable simulation context.
// Every component step receives it by pointer; nothing else holds game state.
type World struct {
	Phase      Phase
	Actor      Actor
	Obstacles  *Arena
	Score      ScoreTracker
	SpawnTimer Timer
	WingTimer  Timer
	WingFrame  int
	Bounds     Bounds
	Tick       uint64 // Ticks processed, in any phase
}

// NewWorld builds the initial MainMenu world.
func NewWorld(cfg config.FlappyConfig) *World {
	start := core.Vec2{X: cfg.Actor.X, Y: cfg.Actor.StartY}
	b := Bounds{Width: cfg.PlayArea.Width, Height: cfg.PlayArea.Height}
	b.validate()

	return &World{
		Phase: PhaseMainMenu,
		Actor: Actor{
			Pos:     start,
			Gravity: cfg.Physics.Gravity,
			Size:    core.Vec2{X: cfg.Actor.Width, Y: cfg.Actor.Height},
			Start:   start,
		},
		Obstacles:  NewArena(),
		SpawnTimer: NewTimer(cfg.Spawner.Period),
		WingTimer:  NewTimer(cfg.Animation.FramePeriod),
		Bounds:     b,
	}
}
