package sim

// ScoreTracker counts passes.
type ScoreTracker struct {
	value int
}

// Value returns the current score.
func (s ScoreTracker) Value() int {
	return s.value
}

// Apply adds one point per pass event and returns the number added.
func (s *ScoreTracker) Apply(events []Event) int {
	added := Count(events, EventPass)
	s.value += added
	return added
}

// Reset zeroes the score. Only the Playing entry action calls it.
func (s *ScoreTracker) Reset() {
	s.value = 0
}
