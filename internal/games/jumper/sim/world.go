package sim

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
)

// World owns the actor, the obstacles and the platforms of one session.
// It is not safe for concurrent use; a single driver calls Tick once per frame
// and input calls are interleaved between ticks.
type World struct {
	cfg       config.JumperConfig
	actor     Actor
	obstacles *ObstacleManager
	platforms []Platform
	score     int
	state     State
}

// New creates a world and starts its first session.
func New(cfg config.JumperConfig, rng RandomSource) *World {
	w := &World{cfg: cfg}
	w.obstacles = NewObstacleManager(rng, &w.cfg)
	w.Start()
	return w
}

// Start begins a fresh session: actor back at its start pose, no obstacles,
// the fixed platform layout, zero score.
func (w *World) Start() {
	w.actor = newActor(w.cfg)
	w.obstacles.Reset()
	w.platforms = buildPlatforms(w.cfg)
	w.score = 0
	w.state = StateActive
}

// Restart is equivalent to Start.
func (w *World) Restart() {
	w.Start()
}

// Tick advances the world by one frame and returns the resulting snapshot.
// Once the session is over, Tick changes nothing and returns the final snapshot.
func (w *World) Tick() Snapshot {
	if w.state == StateOver {
		return w.Snapshot()
	}

	w.actor.Integrate()
	w.actor.ClampToWorld(w.cfg.World.Width, w.cfg.World.Height, w.cfg.World.GroundOffset)

	w.obstacles.Advance()

	hit := w.resolveCollisions()

	w.obstacles.TrySpawn()
	w.obstacles.Cull()

	// The tick that ends the session still counts.
	w.score++
	if hit {
		w.state = StateOver
	}

	return w.Snapshot()
}

// resolveCollisions runs the lethal check and the platform landing check.
// Both always run; landing on a platform does not cancel a hit.
// Platforms are checked in layout order, so the last match wins.
func (w *World) resolveCollisions() bool {
	hit := w.obstacles.CheckCollision(w.actor.Rect())

	for _, p := range w.platforms {
		if w.actor.landsOn(p) {
			w.actor.standOn(p)
		}
	}

	return hit
}

// RequestJump makes the actor jump if it is standing on something.
func (w *World) RequestJump() {
	if w.state != StateActive {
		return
	}
	w.actor.Jump()
}

// CanJump reports whether a jump request would take effect right now.
func (w *World) CanJump() bool {
	return w.state == StateActive && w.actor.Grounded
}

// SetHorizontalIntent sets the actor's horizontal direction (-1, 0 or 1).
// Other values are ignored.
func (w *World) SetHorizontalIntent(dir int) {
	if w.state != StateActive {
		return
	}
	w.actor.SetHorizontalIntent(dir)
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// State returns the current session state.
func (w *World) State() State {
	return w.state
}

// Spawned returns how many obstacles were spawned in this session.
func (w *World) Spawned() int {
	return w.obstacles.Spawned()
}
