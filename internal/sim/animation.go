package sim

// Wing cycles the actor's cosmetic animation frame while playing.
type Wing struct {
	Frames int
}

// Step advances the frame when the wing timer completes a period.
func (wg Wing) Step(w *World, dt float64) {
	if w.WingTimer.Tick(dt) {
		w.WingFrame = (w.WingFrame + 1) % wg.Frames
	}
}
