// Package jumper adapts the platform jumper simulation to the arcade platform:
// it maps input frames to the simulation's input API and renders snapshots
// into a character screen.
package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper/sim"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// jumpBufferTicks is how long a jump press waits for the actor to be grounded.
// Resting on the ground line the actor is grounded only on alternate ticks.
const jumpBufferTicks = 4

// Game implements the platform jumper on top of sim.World.
type Game struct {
	world      *sim.World
	snapshot   sim.Snapshot
	cfg        config.JumperConfig
	runtime    core.RuntimeConfig
	paused     bool
	jumpBuffer int // Ticks left for a pending jump request
	intentDir  int // Current horizontal direction
	intentHold int // Ticks left before the direction is released, 0 = held
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platform Jumper"
}

// Reset initializes or restarts the game with a freshly seeded world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		cfg = config.DefaultJumperConfig()
	}
	g.cfg = cfg

	g.world = sim.New(cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.snapshot = g.world.Snapshot()
	g.paused = false
	g.jumpBuffer = 0
	g.intentDir = 0
	g.intentHold = 0
}

// Step applies this frame's input and advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.snapshot.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	g.snapshot = g.world.Tick()

	return core.StepResult{State: g.State()}
}

// applyInput translates actions into calls on the world's input API.
func (g *Game) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionStop):
		g.setIntent(0)
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		g.setIntent(-1)
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		g.setIntent(1)
	}

	// Terminals send repeats while a key is held but never a release,
	// so a direction lapses unless it is refreshed.
	if g.intentHold > 0 {
		g.intentHold--
		if g.intentHold == 0 {
			g.intentDir = 0
		}
	}
	g.world.SetHorizontalIntent(g.intentDir)

	if in.Has(core.ActionJump) {
		g.jumpBuffer = jumpBufferTicks
	}
	if g.jumpBuffer > 0 {
		if g.world.CanJump() {
			g.world.RequestJump()
			g.jumpBuffer = 0
		} else {
			g.jumpBuffer--
		}
	}
}

// setIntent records a horizontal direction and restarts its hold timer.
func (g *Game) setIntent(dir int) {
	g.intentDir = dir
	g.intentHold = 0
	if dir != 0 {
		g.intentHold = g.cfg.Input.HoldTicks
	}
}

// Snapshot returns the snapshot produced by the last tick.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snapshot
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snapshot.Score,
		GameOver: g.snapshot.Over(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("jumper", func() registry.Game {
		return New()
	})
}
