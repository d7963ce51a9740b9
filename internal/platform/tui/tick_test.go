package tui

import (
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	c := newFrameClock(0.25)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if dt := c.Advance(t0); dt != 0 {
		t.Errorf("first Advance() = %v, expected 0", dt)
	}
	if dt := c.Advance(t0.Add(20 * time.Millisecond)); dt != 0.02 {
		t.Errorf("Advance() = %v, expected 0.02", dt)
	}
	if dt := c.Advance(t0.Add(5 * time.Second)); dt != 0.25 {
		t.Errorf("Advance() after a stall = %v, expected clamp to 0.25", dt)
	}

	c.Reset()
	if dt := c.Advance(t0.Add(time.Minute)); dt != 0 {
		t.Errorf("Advance() after Reset() = %v, expected 0", dt)
	}
}

func TestFrameClockIgnoresBackwardsTime(t *testing.T) {
	c := newFrameClock(0.25)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c.Advance(t0)
	if dt := c.Advance(t0.Add(-time.Second)); dt != 0 {
		t.Errorf("Advance() into the past = %v, expected 0", dt)
	}
}
