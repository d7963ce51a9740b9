package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestAutopilotKeepsPlaying(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := New(cfg, 3)
	ap := NewAutopilot(cfg)

	for i := 0; i < 20*60; i++ {
		s.Tick(1.0/60, ap.Decide(s.Snapshot()))
	}

	assert.Equal(t, PhasePlaying, s.Phase())
	assert.GreaterOrEqual(t, s.Score(), 10)
}

func TestAutopilotRestartsAfterGameOver(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	ap := NewAutopilot(cfg)

	assert.True(t, ap.Decide(Snapshot{Phase: PhaseMainMenu}).Has(core.ActionStart))
	assert.True(t, ap.Decide(Snapshot{Phase: PhaseGameOver}).Has(core.ActionRestart))
	assert.True(t, ap.Decide(Snapshot{Phase: PhasePlaying, Actor: ActorView{Pos: core.Vec2{Y: -20}}}).Has(core.ActionJump))
	assert.False(t, ap.Decide(Snapshot{Phase: PhasePlaying, Actor: ActorView{Pos: core.Vec2{Y: 20}}}).Has(core.ActionJump))
}

func TestSessionTracksAttempts(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	sess := NewSession(cfg, 1)

	sess.Tick(0.1, start)
	for sess.Sim().Phase() == PhasePlaying {
		sess.Tick(0.1, noInput)
	}
	sess.Tick(0.1, noInput)
	sess.Tick(0.1, restart)

	attempts := sess.Attempts()
	require.Len(t, attempts, 2)
	assert.Equal(t, Attempt{Score: 0, Ticks: 7, Cause: TriggerOutOfBounds, Finished: true}, attempts[0])
	assert.False(t, attempts[1].Finished)
	assert.Len(t, sess.Journal().Ticks, 10)
}

func TestReplayReproducesSession(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	sess := NewSession(cfg, 11)
	require.True(t, sess.SetBounds(300, 480))
	ap := NewAutopilot(cfg)

	dts := []float64{1.0 / 60, 1.0 / 30, 0.02}
	for i := 0; i < 1500; i++ {
		frame := ap.Decide(sess.Sim().Snapshot())
		// Drop a stretch of flaps to force a crash and a restart.
		if i > 600 && i < 700 {
			frame.Clear()
		}
		sess.Tick(dts[i%len(dts)], frame)
	}
	require.GreaterOrEqual(t, len(sess.Attempts()), 2)

	j := sess.Journal()
	assert.Equal(t, Bounds{Width: 300, Height: 480}, j.Bounds)
	assert.False(t, sess.SetBounds(100, 100), "bounds are fixed once ticking")
	replayed := Replay(cfg, j)

	assert.Equal(t, sess.Sim().Snapshot(), replayed.Sim().Snapshot())
	assert.Equal(t, sess.Attempts(), replayed.Attempts())
	assert.Equal(t, sess.Best(), replayed.Best())
}

func TestJournalIsACopy(t *testing.T) {
	sess := NewSession(config.DefaultFlappyConfig(), 1)
	sess.Tick(0.1, start)

	j := sess.Journal()
	j.Ticks[0].Input = 0

	assert.Equal(t, start.Bits(), sess.Journal().Ticks[0].Input)
}
