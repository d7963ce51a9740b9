// Package tui provides the Bubble Tea frontend for the flappy simulation.
// It handles the terminal UI loop, input mapping, the frame clock and
// the projection of world coordinates onto terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick message timestamps into elapsed seconds.
// The result is clamped to maxDT so a stalled terminal cannot feed the
// simulation one huge step.
type frameClock struct {
	last  time.Time
	maxDT float64
}

func newFrameClock(maxDT float64) frameClock {
	return frameClock{maxDT: maxDT}
}

// Advance returns the seconds since the previous call, 0 on the first call
// or after Reset.
func (c *frameClock) Advance(now time.Time) float64 {
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt > c.maxDT {
		dt = c.maxDT
	}
	return dt
}

// Reset forgets the previous timestamp, so time spent paused is not fed.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
