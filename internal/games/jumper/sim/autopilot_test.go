package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

func TestAutopilotReachesFirstPlatform(t *testing.T) {
	w := New(config.DefaultJumperConfig(), rand.New(rand.NewSource(1)))

	sum := RunHeadless(w, 3000, NewAutopilot())

	require.Equal(t, StateActive, sum.State, "autopilot should survive on the platform")
	assert.Equal(t, 3000, sum.Ticks)
	assert.Equal(t, 3000, sum.Score)
	assert.Equal(t, 1, sum.Jumps)
	assert.InDelta(t, 268.0, sum.ActorY, 1e-9)
	assert.Positive(t, sum.Spawned)
}

func TestIdleRunEndsInCollision(t *testing.T) {
	w := New(config.DefaultJumperConfig(), rand.New(rand.NewSource(1)))

	sum := RunHeadless(w, 100000, nil)

	require.Equal(t, StateOver, sum.State)
	assert.Equal(t, sum.Ticks, sum.Score, "every tick, including the last, scores")
	assert.Zero(t, sum.Jumps)
}

func TestRunHeadlessStopsAtMaxTicks(t *testing.T) {
	w := newTestWorld(t)

	sum := RunHeadless(w, 10, nil)

	assert.Equal(t, 10, sum.Ticks)
	assert.Equal(t, StateActive, sum.State)
	assert.Zero(t, sum.Spawned)
}

func TestAutopilotWithoutPlatformsJumpsObstacles(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Platforms.Layout = nil
	w := New(cfg, never())
	w.obstacles.Spawn(w.actor.X + w.actor.W + 30)

	p := NewAutopilot()
	dir, jump := p.Decide(w.Snapshot())
	assert.Zero(t, dir)
	assert.False(t, jump, "actor is not grounded on the first tick")

	w.Tick()
	w.Tick()
	snap := w.Snapshot()
	require.True(t, snap.Actor.Grounded)

	_, jump = p.Decide(snap)
	assert.True(t, jump)
}
