package sim

import "github.com/vovakirdan/tui-jumper/internal/core"

// State is the session state of the world.
type State string

const (
	StateActive State = "active"
	StateOver   State = "over"
)

// ActorView is a read-only copy of the actor pose.
type ActorView struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool
}

// Rect returns the actor rectangle.
func (a ActorView) Rect() core.RectF {
	return core.NewRectF(a.X, a.Y, a.W, a.H)
}

// Snapshot is everything a presentation layer needs to draw one frame.
// Slices are copies; mutating them does not affect the world.
type Snapshot struct {
	Score     int
	State     State
	Actor     ActorView
	Obstacles []core.RectF
	Platforms []core.RectF
	WorldW    float64
	WorldH    float64
	GroundY   float64 // Y of the ground line (top of the ground strip)
}

// Over reports whether the session has ended.
func (s Snapshot) Over() bool {
	return s.State == StateOver
}

// Snapshot returns the current world state without advancing it.
func (w *World) Snapshot() Snapshot {
	obstacles := make([]core.RectF, 0, len(w.obstacles.Obstacles()))
	for _, o := range w.obstacles.Obstacles() {
		obstacles = append(obstacles, o.Rect())
	}

	platforms := make([]core.RectF, 0, len(w.platforms))
	for _, p := range w.platforms {
		platforms = append(platforms, p.Rect())
	}

	a := w.actor
	return Snapshot{
		Score: w.score,
		State: w.state,
		Actor: ActorView{
			X: a.X, Y: a.Y,
			W: a.W, H: a.H,
			VX: a.VX, VY: a.VY,
			Grounded: a.Grounded,
		},
		Obstacles: obstacles,
		Platforms: platforms,
		WorldW:    w.cfg.World.Width,
		WorldH:    w.cfg.World.Height,
		GroundY:   w.cfg.World.Height - w.cfg.World.GroundOffset,
	}
}
