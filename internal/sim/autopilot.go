package sim

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Autopilot is a deterministic controller for headless runs.
// It flaps whenever the actor sits below the middle of the next gap.
type Autopilot struct {
	gap float64
}

// NewAutopilot creates an autopilot for the given configuration.
func NewAutopilot(cfg config.FlappyConfig) Autopilot {
	return Autopilot{gap: cfg.Spawner.Gap}
}

// Decide returns the input edges for the next tick.
func (ap Autopilot) Decide(snap Snapshot) core.InputFrame {
	switch snap.Phase {
	case PhaseMainMenu:
		return core.FrameOf(core.ActionStart)
	case PhaseGameOver:
		return core.FrameOf(core.ActionRestart)
	}

	if snap.Actor.Pos.Y < ap.target(snap) {
		return core.FrameOf(core.ActionJump)
	}
	return core.NewInputFrame()
}

// target returns the y the actor should hover at: the middle of the gap of
// the nearest lower obstacle not yet fully behind the actor.
func (ap Autopilot) target(snap Snapshot) float64 {
	behind := snap.Actor.Pos.X - snap.Actor.Size.X/2

	nearest := math.Inf(1)
	target := 0.0
	for _, o := range snap.Obstacles {
		if o.Member != MemberLower {
			continue
		}
		if o.Pos.X+o.Size.X/2 < behind {
			continue
		}
		if o.Pos.X < nearest {
			nearest = o.Pos.X
			target = o.Pos.Y + o.Size.Y/2 + ap.gap/2
		}
	}
	return target
}
