package sim

// Detector checks the actor against obstacles and the play area, and
// detects obstacles passing the actor.
type Detector struct{}

// Detect runs the collision and bounds checks, then pass detection.
//
// At most one EventCollision is emitted per tick, naming the lowest
// colliding obstacle ID. Pass detection flips Scored on every unscored
// obstacle that has moved left of the actor's x.
func (Detector) Detect(w *World) []Event {
	var events []Event
	actorBox := w.Actor.Box()

	for _, id := range w.Obstacles.IDs() {
		o, _ := w.Obstacles.Get(id)
		if actorBox.Overlaps(o.Box()) {
			events = append(events, Event{Kind: EventCollision, Obstacle: o.ID, Pair: o.Pair})
			break
		}
	}

	if w.Bounds.OutsideVertically(w.Actor.Pos.Y) {
		events = append(events, Event{Kind: EventOutOfBounds})
	}

	w.Obstacles.Each(func(o *Obstacle) {
		if o.Pos.X < w.Actor.Pos.X && o.markScored() {
			events = append(events, Event{Kind: EventPass, Obstacle: o.ID, Pair: o.Pair})
		}
	})

	return events
}
