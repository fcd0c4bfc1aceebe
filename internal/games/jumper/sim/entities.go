// Package sim implements the platform jumper simulation: a single actor,
// a flat ground line, static platforms and a stream of lethal obstacles.
// It has no rendering or input code; the game adapter drives it one tick
// per frame.
package sim

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Actor is the player-controlled entity.
type Actor struct {
	X, Y      float64 // Top-left corner in world units
	W, H      float64
	VX, VY    float64 // Velocity in world units per tick
	Speed     float64 // Horizontal speed magnitude
	JumpForce float64 // Vertical velocity applied on jump (negative = up)
	Gravity   float64 // Added to VY every tick
	Grounded  bool
}

// newActor creates an actor at its start pose, standing on the ground line.
func newActor(cfg config.JumperConfig) Actor {
	return Actor{
		X:         cfg.Actor.StartX,
		Y:         cfg.World.Height - cfg.Actor.Height - cfg.World.GroundOffset,
		W:         cfg.Actor.Width,
		H:         cfg.Actor.Height,
		Speed:     cfg.Actor.Speed,
		JumpForce: cfg.Actor.JumpForce,
		Gravity:   cfg.Actor.Gravity,
	}
}

// Rect returns the collision rectangle for the actor.
func (a *Actor) Rect() core.RectF {
	return core.NewRectF(a.X, a.Y, a.W, a.H)
}

// Integrate applies velocity to position, then gravity to vertical velocity.
func (a *Actor) Integrate() {
	a.X += a.VX
	a.Y += a.VY
	a.VY += a.Gravity
}

// ClampToWorld keeps the actor inside the world and on or above the ground line.
// Grounded is recomputed here every tick; a platform landing may set it again later
// in the same tick.
func (a *Actor) ClampToWorld(worldW, worldH, groundOffset float64) {
	a.X = core.ClampF(a.X, 0, worldW-a.W)

	ground := worldH - a.H - groundOffset
	switch {
	case a.Y > ground:
		a.Y = ground
		a.VY = 0
		a.Grounded = true
	case a.Y < 0:
		a.Y = 0
		a.VY = 0
	default:
		a.Grounded = false
	}
}

// Jump launches the actor upward. Mid-air jumps are ignored.
func (a *Actor) Jump() {
	if !a.Grounded {
		return
	}
	a.VY = a.JumpForce
	a.Grounded = false
}

// SetHorizontalIntent sets horizontal velocity from a direction of -1, 0 or 1.
// Any other value is ignored.
func (a *Actor) SetHorizontalIntent(dir int) {
	switch dir {
	case -1, 0, 1:
		a.VX = float64(dir) * a.Speed
	}
}

// landsOn reports whether the actor's feet are within the platform's thickness
// while the two overlap horizontally. Unlike Overlaps, the vertical band is inclusive.
func (a *Actor) landsOn(p Platform) bool {
	feet := a.Y + a.H
	return a.X < p.X+p.W &&
		a.X+a.W > p.X &&
		feet >= p.Y &&
		feet <= p.Y+p.H
}

// standOn places the actor exactly on top of the platform.
func (a *Actor) standOn(p Platform) {
	a.Y = p.Y - a.H
	a.VY = 0
	a.Grounded = true
}

// Obstacle is a hazard moving leftward along the ground.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Advance moves the obstacle one tick to the left.
func (o *Obstacle) Advance() {
	o.X -= o.Speed
}

// offScreen reports whether the obstacle has fully left the world on the left.
func (o Obstacle) offScreen() bool {
	return o.X < -o.W
}

// Platform is a static surface the actor can stand on.
type Platform struct {
	X, Y float64
	W, H float64
}

// Rect returns the rectangle covered by the platform.
func (p Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// buildPlatforms creates the fixed layout in configuration order.
func buildPlatforms(cfg config.JumperConfig) []Platform {
	platforms := make([]Platform, 0, len(cfg.Platforms.Layout))
	for _, spec := range cfg.Platforms.Layout {
		platforms = append(platforms, Platform{
			X: spec.X,
			Y: spec.Y,
			W: spec.Width,
			H: cfg.Platforms.Height,
		})
	}
	return platforms
}
