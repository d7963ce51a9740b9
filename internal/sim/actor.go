package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// maxTiltDegrees is the cosmetic rotation at full climb or dive.
const maxTiltDegrees = 45.0

// Actor is the single player-controlled body.
type Actor struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Gravity float64   // Downward acceleration, units/s²
	Size    core.Vec2 // Fixed hitbox size
	Start   core.Vec2 // Position restored on entering play

	// Tilt is a cosmetic rotation in degrees derived from the last tick.
	// It never feeds back into the physics.
	Tilt float64
}

// Box returns the actor's hitbox.
func (a Actor) Box() core.Box {
	return core.NewBox(a.Pos, a.Size)
}

func (a *Actor) reset() {
	a.Pos = a.Start
	a.Vel = core.Vec2{}
	a.Tilt = 0
}

// tiltFor maps the vertical displacement of a tick onto [-45°, 45°].
func tiltFor(velY, dt float64) float64 {
	return maxTiltDegrees * core.ClampF(velY*dt, -1, 1)
}
