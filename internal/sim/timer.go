package sim

import (
	"fmt"
	"math"
	"time"
)

// Timer is a repeating accumulator.
// It keeps integer nanoseconds so that decimal dt values add up exactly:
// ten ticks of 0.1s complete a 1s period, where a float sum would fall short.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewTimer creates a repeating timer with the given period in seconds.
func NewTimer(seconds float64) Timer {
	p := durationOf(seconds)
	if p <= 0 {
		panic(fmt.Sprintf("sim: timer period must be positive, got %v", seconds))
	}
	return Timer{period: p}
}

// Tick advances the timer by dt seconds and reports whether a period completed.
// It fires at most once per call; the excess over the period is carried over.
func (t *Timer) Tick(dt float64) bool {
	t.elapsed += durationOf(dt)
	if t.elapsed < t.period {
		return false
	}
	t.elapsed %= t.period
	return true
}

// Reset zeroes the accumulator.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Elapsed returns the time accumulated since the last completed period.
func (t Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Period returns the timer period.
func (t Timer) Period() time.Duration {
	return t.period
}

func durationOf(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
