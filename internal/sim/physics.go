package sim

// Physics integrates the actor's vertical motion.
type Physics struct {
	LaunchSpeed float64
}

// Step advances the actor by dt.
//
// A jump assigns LaunchSpeed to the vertical velocity and skips gravity for
// this tick, so the tick containing the jump moves the actor by exactly
// LaunchSpeed*dt. Gravity acts on the new velocity from the next tick on.
func (p Physics) Step(w *World, dt float64, jump bool) []Event {
	a := &w.Actor
	var events []Event

	if jump {
		a.Vel.Y = p.LaunchSpeed
		events = append(events, Event{Kind: EventJump})
	} else {
		a.Vel.Y -= a.Gravity * dt
	}
	a.Pos.Y += a.Vel.Y * dt
	a.Tilt = tiltFor(a.Vel.Y, dt)

	return events
}
