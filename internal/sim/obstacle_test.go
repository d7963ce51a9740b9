package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestArenaStableIDs(t *testing.T) {
	a := NewArena()
	ids := make([]ObstacleID, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, a.Insert(Obstacle{Pos: core.Vec2{X: float64(i)}}))
	}

	require.True(t, a.Remove(ids[1]))
	require.True(t, a.Remove(ids[3]))
	assert.False(t, a.Remove(ids[3]), "second removal reports absence")

	assert.Equal(t, []ObstacleID{ids[0], ids[2], ids[4]}, a.IDs())
	for _, id := range []ObstacleID{ids[0], ids[2], ids[4]} {
		o, ok := a.Get(id)
		require.True(t, ok)
		assert.Equal(t, id, o.ID)
	}

	next := a.Insert(Obstacle{})
	assert.Greater(t, next, ids[4])
	assert.Equal(t, 4, a.Len())
}

func TestArenaGetReturnsCopy(t *testing.T) {
	a := NewArena()
	id := a.Insert(Obstacle{Pos: core.Vec2{X: 1}})

	o, _ := a.Get(id)
	o.Pos.X = 99

	again, _ := a.Get(id)
	assert.Equal(t, 1.0, again.Pos.X)
}

func TestArenaEachVisitsInIDOrder(t *testing.T) {
	a := NewArena()
	for i := 0; i < 40; i++ {
		a.Insert(Obstacle{})
	}

	var seen []ObstacleID
	a.Each(func(o *Obstacle) {
		seen = append(seen, o.ID)
		o.Pos.X = float64(o.ID)
	})
	assert.IsIncreasing(t, seen)
	assert.Len(t, seen, 40)

	for _, o := range a.Snapshot() {
		assert.Equal(t, float64(o.ID), o.Pos.X)
	}
}

func TestMarkScoredFlipsOnce(t *testing.T) {
	o := Obstacle{}
	assert.True(t, o.markScored())
	assert.False(t, o.markScored())
	assert.True(t, o.Scored)
}
