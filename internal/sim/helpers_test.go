package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// calmConfig returns a configuration where the actor floats at y=0 and
// every gap contains y=0, so obstacles stream past without collisions.
func calmConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Spawner.UpperMin = 180
	cfg.Spawner.UpperMax = 290
	return cfg
}

var (
	noInput = core.NewInputFrame()
	start   = core.FrameOf(core.ActionStart)
	restart = core.FrameOf(core.ActionRestart)
	jump    = core.FrameOf(core.ActionJump)
)

// playing returns a simulation that has just entered Playing.
func playing(t *testing.T, cfg config.FlappyConfig) *Simulation {
	t.Helper()
	require.NoError(t, cfg.Validate())
	s := New(cfg, 42)
	res := s.Tick(0, start)
	require.Equal(t, PhasePlaying, res.Phase)
	return s
}

// place inserts an obstacle directly into the arena, already past its spawn tick.
func place(s *Simulation, member Member, x, y float64, scored bool) ObstacleID {
	w, h := s.cfg.ObstacleSize()
	return s.world.Obstacles.Insert(Obstacle{
		Pair:   999,
		Member: member,
		Pos:    core.Vec2{X: x, Y: y},
		Size:   core.Vec2{X: w, Y: h},
		Scored: scored,
		Born:   s.world.Tick,
	})
}

// calmConfigWithGravity is calmConfig with the default gravity restored.
func calmConfigWithGravity() config.FlappyConfig {
	cfg := calmConfig()
	cfg.Physics.Gravity = config.DefaultFlappyConfig().Physics.Gravity
	return cfg
}
