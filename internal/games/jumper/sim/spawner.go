package sim

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// RandomSource supplies uniform samples in [0, 1).
// *rand.Rand satisfies it; tests can pass a scripted source.
type RandomSource interface {
	Float64() float64
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       RandomSource
	cfg       *config.JumperConfig
	spawned   int // Obstacles spawned since the last Reset
}

// NewObstacleManager creates a new obstacle manager drawing from rng.
func NewObstacleManager(rng RandomSource, cfg *config.JumperConfig) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset clears all obstacles. The random source keeps its state.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
	om.spawned = 0
}

// Advance moves every obstacle one tick to the left.
func (om *ObstacleManager) Advance() {
	for i := range om.obstacles {
		om.obstacles[i].Advance()
	}
}

// TrySpawn runs one spawn trial and reports whether an obstacle was added.
// Exactly one sample is drawn per call.
func (om *ObstacleManager) TrySpawn() bool {
	if om.rng.Float64() >= om.cfg.Obstacles.SpawnChance {
		return false
	}
	om.Spawn(om.cfg.World.Width)
	return true
}

// Spawn appends an obstacle at x, standing on the ground line.
func (om *ObstacleManager) Spawn(x float64) {
	o := om.cfg.Obstacles
	om.obstacles = append(om.obstacles, Obstacle{
		X:     x,
		Y:     om.cfg.World.Height - o.Height - om.cfg.World.GroundOffset,
		W:     o.Width,
		H:     o.Height,
		Speed: o.Speed,
	})
	om.spawned++
}

// Cull removes obstacles that have fully left the world, keeping the order
// of the survivors.
func (om *ObstacleManager) Cull() {
	valid := om.obstacles[:0]
	for _, o := range om.obstacles {
		if !o.offScreen() {
			valid = append(valid, o)
		}
	}
	om.obstacles = valid
}

// Obstacles returns the current list of obstacles.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Spawned returns how many obstacles were spawned since the last Reset.
func (om *ObstacleManager) Spawned() int {
	return om.spawned
}

// CheckCollision tests if the given rectangle overlaps any obstacle.
func (om *ObstacleManager) CheckCollision(r core.RectF) bool {
	for _, o := range om.obstacles {
		if r.Overlaps(o.Rect()) {
			return true
		}
	}
	return false
}
