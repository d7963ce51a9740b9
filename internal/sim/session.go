package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// JournalTick is one recorded tick: the elapsed time and the packed input edges.
type JournalTick struct {
	DT    float64
	Input uint8
}

// Journal is everything needed to reproduce a session: with the same
// configuration, seed, bounds and ticks a simulation ends in the same state.
type Journal struct {
	Seed   int64
	Bounds Bounds
	Ticks  []JournalTick
}

// Attempt summarizes one stretch of play from entering Playing to leaving it.
type Attempt struct {
	Score    int
	Ticks    int
	Cause    Trigger // How the attempt ended; meaningful only when Finished
	Finished bool
}

// Session wraps a simulation, journals its input and tallies attempts.
type Session struct {
	sim      *Simulation
	journal  Journal
	attempts []Attempt
}

// NewSession starts a recorded session in the main menu.
func NewSession(cfg config.FlappyConfig, seed int64) *Session {
	s := New(cfg, seed)
	return &Session{
		sim: s,
		journal: Journal{
			Seed:   seed,
			Bounds: s.world.Bounds,
		},
	}
}

// Sim returns the underlying simulation.
func (s *Session) Sim() *Simulation {
	return s.sim
}

// SetBounds changes the play area. Journals carry a single size, so this
// is only honored before the first tick.
func (s *Session) SetBounds(width, height float64) bool {
	if len(s.journal.Ticks) > 0 {
		return false
	}
	s.sim.SetBounds(width, height)
	s.journal.Bounds = s.sim.world.Bounds
	return true
}

// Tick records the input and advances the simulation.
func (s *Session) Tick(dt float64, frame core.InputFrame) TickResult {
	s.journal.Ticks = append(s.journal.Ticks, JournalTick{DT: dt, Input: frame.Bits()})

	res := s.sim.Tick(dt, frame)
	if res.Transition != nil && res.Transition.To == PhasePlaying {
		s.attempts = append(s.attempts, Attempt{})
		return res
	}

	if n := len(s.attempts); n > 0 && !s.attempts[n-1].Finished {
		cur := &s.attempts[n-1]
		cur.Ticks++
		cur.Score = s.sim.Score()
		if res.Transition != nil && res.Transition.To == PhaseGameOver {
			cur.Finished = true
			cur.Cause = res.Transition.Trigger
		}
	}
	return res
}

// Journal returns a copy of the recorded journal.
func (s *Session) Journal() Journal {
	j := s.journal
	j.Ticks = append([]JournalTick(nil), s.journal.Ticks...)
	return j
}

// Attempts returns the attempts so far, the last one possibly unfinished.
func (s *Session) Attempts() []Attempt {
	return append([]Attempt(nil), s.attempts...)
}

// Best returns the highest score over all attempts.
func (s *Session) Best() int {
	best := 0
	for _, a := range s.attempts {
		if a.Score > best {
			best = a.Score
		}
	}
	return best
}

// Replay rebuilds a session from a journal by feeding its ticks again.
func Replay(cfg config.FlappyConfig, j Journal) *Session {
	s := NewSession(cfg, j.Seed)
	s.SetBounds(j.Bounds.Width, j.Bounds.Height)
	for _, t := range j.Ticks {
		s.Tick(t.DT, core.FrameFromBits(t.Input))
	}
	return s
}
