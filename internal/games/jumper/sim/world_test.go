package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// scriptedSource returns its values in order, repeating the last one.
type scriptedSource struct {
	values []float64
	i      int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.i]
	if s.i < len(s.values)-1 {
		s.i++
	}
	return v
}

// never returns a source whose samples never trigger a spawn.
func never() RandomSource {
	return &scriptedSource{values: []float64{0.99}}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return New(config.DefaultJumperConfig(), never())
}

func TestStartDefaults(t *testing.T) {
	w := newTestWorld(t)
	snap := w.Snapshot()

	assert.Equal(t, StateActive, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 100.0, snap.Actor.X)
	assert.Equal(t, 358.0, snap.Actor.Y, "actor starts on the ground line")
	assert.Equal(t, 32.0, snap.Actor.W)
	assert.False(t, snap.Actor.Grounded)
	assert.Empty(t, snap.Obstacles)

	require.Len(t, snap.Platforms, 3)
	assert.Equal(t, 200.0, snap.Platforms[0].X)
	assert.Equal(t, 300.0, snap.Platforms[0].Y)
	assert.Equal(t, 200.0, snap.Platforms[0].W)
	assert.Equal(t, 10.0, snap.Platforms[0].H)
	assert.Equal(t, 400.0, snap.Platforms[1].X)
	assert.Equal(t, 600.0, snap.Platforms[2].X)
	assert.Equal(t, 390.0, snap.GroundY)
}

func TestScoreIncrementsOncePerTick(t *testing.T) {
	w := newTestWorld(t)

	for i := 1; i <= 200; i++ {
		before := w.Score()
		snap := w.Tick()
		require.Equal(t, before+1, snap.Score, "tick %d", i)
	}
}

func TestActorStaysInBounds(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	w := New(cfg, rand.New(rand.NewSource(7)))
	input := rand.New(rand.NewSource(99))

	maxX := cfg.World.Width - cfg.Actor.Width
	maxY := cfg.World.Height - cfg.Actor.Height - cfg.World.GroundOffset

	for i := 0; i < 5000; i++ {
		if w.State() == StateOver {
			w.Restart()
		}
		switch input.Intn(6) {
		case 0:
			w.RequestJump()
		case 1:
			w.SetHorizontalIntent(-1)
		case 2:
			w.SetHorizontalIntent(1)
		case 3:
			w.SetHorizontalIntent(0)
		}

		a := w.Tick().Actor
		require.GreaterOrEqual(t, a.X, 0.0, "tick %d", i)
		require.LessOrEqual(t, a.X, maxX, "tick %d", i)
		require.GreaterOrEqual(t, a.Y, 0.0, "tick %d", i)
		require.LessOrEqual(t, a.Y, maxY, "tick %d", i)
	}
}

func TestOverIsTerminal(t *testing.T) {
	w := newTestWorld(t)
	w.obstacles.Spawn(w.actor.X)

	final := w.Tick()
	require.Equal(t, StateOver, final.State)

	for i := 0; i < 50; i++ {
		w.RequestJump()
		w.SetHorizontalIntent(1)
		assert.Equal(t, final, w.Tick())
	}
	assert.Equal(t, final.Score, w.Score())
}

func TestLethalCollision(t *testing.T) {
	w := newTestWorld(t)
	w.actor.X, w.actor.Y = 100, 368
	w.obstacles.obstacles = append(w.obstacles.obstacles, Obstacle{X: 100, Y: 368, W: 32, H: 32, Speed: 2})

	snap := w.Tick()

	assert.Equal(t, StateOver, snap.State)
	assert.Equal(t, 1, snap.Score, "the tick that ends the session still counts")
}

func TestNoCollisionWhenApart(t *testing.T) {
	w := newTestWorld(t)
	w.obstacles.Spawn(500)

	snap := w.Tick()

	assert.Equal(t, StateActive, snap.State)
	require.Len(t, snap.Obstacles, 1)
	assert.Equal(t, 498.0, snap.Obstacles[0].X)
}

func TestPlatformLanding(t *testing.T) {
	tests := []struct {
		name         string
		y, vy        float64
		wantY        float64
		wantVY       float64
		wantGrounded bool
	}{
		{
			name:         "feet inside the band at rest",
			y:            270, // feet at 302
			wantY:        268,
			wantVY:       0,
			wantGrounded: true,
		},
		{
			name:         "falling into the band",
			y:            262,
			vy:           8, // integrates to 270, feet at 302
			wantY:        268,
			wantVY:       0,
			wantGrounded: true,
		},
		{
			name:         "feet exactly on the top edge",
			y:            268,
			wantY:        268,
			wantVY:       0,
			wantGrounded: true,
		},
		{
			name:         "feet below the band",
			y:            295, // feet at 327, under the 10-unit thick platform
			wantY:        295,
			wantVY:       0.85,
			wantGrounded: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.actor.X = 250
			w.actor.Y = tc.y
			w.actor.VY = tc.vy

			snap := w.Tick()

			assert.InDelta(t, tc.wantY, snap.Actor.Y, 1e-9)
			assert.InDelta(t, tc.wantVY, snap.Actor.VY, 1e-9)
			assert.Equal(t, tc.wantGrounded, snap.Actor.Grounded)
		})
	}
}

func TestPlatformLandingNeedsHorizontalOverlap(t *testing.T) {
	w := newTestWorld(t)
	w.actor.X = 168 // right edge touches platform left edge at 200
	w.actor.Y = 270

	snap := w.Tick()

	assert.False(t, snap.Actor.Grounded)
	assert.InDelta(t, 270.0, snap.Actor.Y, 1e-9)
}

func TestLastMatchingPlatformWins(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Platforms.Layout = []config.PlatformSpec{
		{X: 200, Y: 300, Width: 200},
		{X: 200, Y: 295, Width: 200},
	}
	w := New(cfg, never())
	w.actor.X = 250
	w.actor.Y = 270 // feet at 302: inside the first band

	snap := w.Tick()

	// Snapping to the first platform puts the feet at 300, inside the second band.
	assert.InDelta(t, 263.0, snap.Actor.Y, 1e-9)
	assert.True(t, snap.Actor.Grounded)
}

func TestLandingDoesNotCancelHit(t *testing.T) {
	w := newTestWorld(t)
	w.actor.X = 250
	w.actor.Y = 270
	w.obstacles.obstacles = append(w.obstacles.obstacles, Obstacle{X: 252, Y: 270, W: 32, H: 32, Speed: 2})

	snap := w.Tick()

	assert.Equal(t, StateOver, snap.State)
	assert.True(t, snap.Actor.Grounded)
	assert.InDelta(t, 268.0, snap.Actor.Y, 1e-9)
}

func TestCull(t *testing.T) {
	w := newTestWorld(t)
	// Each obstacle moves 2 units before the cull step.
	for _, x := range []float64{-31, -30, -29, 600} {
		w.obstacles.obstacles = append(w.obstacles.obstacles, Obstacle{X: x, Y: 358, W: 32, H: 32, Speed: 2})
	}

	snap := w.Tick()

	xs := make([]float64, 0, len(snap.Obstacles))
	for _, o := range snap.Obstacles {
		xs = append(xs, o.X)
	}
	// -33 is gone, -32 is exactly at the boundary and stays, order is preserved.
	assert.Equal(t, []float64{-32, -31, 598}, xs)
}

func TestSpawnAtRightEdge(t *testing.T) {
	w := New(config.DefaultJumperConfig(), &scriptedSource{values: []float64{0.0, 0.99}})

	snap := w.Tick()

	require.Len(t, snap.Obstacles, 1)
	assert.Equal(t, 800.0, snap.Obstacles[0].X)
	assert.Equal(t, 358.0, snap.Obstacles[0].Y)
	assert.Equal(t, 1, w.Spawned())

	snap = w.Tick()
	require.Len(t, snap.Obstacles, 1)
	assert.Equal(t, 798.0, snap.Obstacles[0].X)
}

func TestSpawnRate(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	om := NewObstacleManager(rand.New(rand.NewSource(2024)), &cfg)

	const trials = 100000
	for i := 0; i < trials; i++ {
		om.TrySpawn()
	}

	expected := cfg.Obstacles.SpawnChance * trials
	assert.InDelta(t, expected, float64(om.Spawned()), 250, "spawned %d of %d", om.Spawned(), trials)
}

func TestJump(t *testing.T) {
	w := newTestWorld(t)

	// Resting on the ground line, gravity pushes the actor below it every
	// other tick and the clamp snaps it back, so it is grounded on alternate ticks.
	w.Tick()
	require.False(t, w.actor.Grounded)
	w.Tick()
	require.True(t, w.actor.Grounded)
	assert.True(t, w.CanJump())

	w.RequestJump()
	assert.Equal(t, -12.0, w.actor.VY)
	assert.False(t, w.actor.Grounded)

	snap := w.Tick()
	assert.InDelta(t, 346.0, snap.Actor.Y, 1e-9)
	assert.InDelta(t, -11.15, snap.Actor.VY, 1e-9)
}

func TestJumpMidAirIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	w.actor.Y = 100
	w.actor.VY = 3
	w.actor.Grounded = false

	w.RequestJump()

	assert.Equal(t, 3.0, w.actor.VY)
	assert.False(t, w.actor.Grounded)
}

func TestHorizontalIntent(t *testing.T) {
	w := newTestWorld(t)

	w.SetHorizontalIntent(1)
	assert.Equal(t, 3.0, w.actor.VX)

	w.SetHorizontalIntent(5)
	assert.Equal(t, 3.0, w.actor.VX, "unknown direction is a no-op")

	w.SetHorizontalIntent(-1)
	assert.Equal(t, -3.0, w.actor.VX)

	w.SetHorizontalIntent(0)
	assert.Equal(t, 0.0, w.actor.VX)
}

func TestHorizontalClamp(t *testing.T) {
	w := newTestWorld(t)
	w.actor.X = 1
	w.SetHorizontalIntent(-1)

	snap := w.Tick()
	assert.Equal(t, 0.0, snap.Actor.X)

	w.actor.X = 767
	w.SetHorizontalIntent(1)
	snap = w.Tick()
	assert.Equal(t, 768.0, snap.Actor.X)
}

func TestCeilingClamp(t *testing.T) {
	w := newTestWorld(t)
	w.actor.Y = 5
	w.actor.VY = -12

	snap := w.Tick()

	assert.Equal(t, 0.0, snap.Actor.Y)
	assert.Equal(t, 0.0, snap.Actor.VY)
	assert.False(t, snap.Actor.Grounded)
}

func TestRestart(t *testing.T) {
	w := New(config.DefaultJumperConfig(), &scriptedSource{values: []float64{0.0}})
	for i := 0; i < 30 && w.State() == StateActive; i++ {
		w.SetHorizontalIntent(1)
		w.Tick()
	}
	require.NotZero(t, w.Score())

	w.Restart()
	snap := w.Snapshot()

	assert.Equal(t, StateActive, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.Obstacles)
	assert.Equal(t, 100.0, snap.Actor.X)
	assert.Equal(t, 0.0, snap.Actor.VX)
	assert.Len(t, snap.Platforms, 3)
	assert.Equal(t, 0, w.Spawned())
}

func TestSnapshotIsACopy(t *testing.T) {
	w := newTestWorld(t)
	w.obstacles.Spawn(400)

	snap := w.Snapshot()
	snap.Obstacles[0].X = -1000
	snap.Platforms[0].Y = -1000

	fresh := w.Snapshot()
	assert.Equal(t, 400.0, fresh.Obstacles[0].X)
	assert.Equal(t, 300.0, fresh.Platforms[0].Y)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		w := New(config.DefaultJumperConfig(), rand.New(rand.NewSource(12345)))
		var snap Snapshot
		for i := 0; i < 600; i++ {
			if i%40 == 0 {
				w.RequestJump()
			}
			snap = w.Tick()
			if snap.Over() {
				break
			}
		}
		return snap
	}

	assert.Equal(t, run(), run())
}
