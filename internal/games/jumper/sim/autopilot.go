package sim

import "github.com/vovakirdan/tui-jumper/internal/core"

// Autopilot is a simple scripted player for headless runs.
// With platforms present it walks under the first one and jumps onto it;
// without platforms it jumps over obstacles that come close.
type Autopilot struct {
	Tolerance float64 // Horizontal distance counted as "arrived"
	Lookahead float64 // Distance at which an approaching obstacle triggers a jump
}

// NewAutopilot returns an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{Tolerance: 4, Lookahead: 40}
}

// Decide returns the horizontal direction and whether to jump this tick.
func (p *Autopilot) Decide(s Snapshot) (dir int, jump bool) {
	a := s.Actor
	if len(s.Platforms) == 0 {
		return 0, a.Grounded && p.obstacleAhead(s)
	}

	target := s.Platforms[0]
	if a.Grounded && a.Y+a.H == target.Y && overlapsX(a.Rect(), target) {
		return 0, false
	}

	goal := target.X + target.W/2 - a.W/2
	switch dx := goal - a.X; {
	case dx > p.Tolerance:
		dir = 1
	case dx < -p.Tolerance:
		dir = -1
	}

	below := a.Y+a.H > target.Bottom()
	return dir, a.Grounded && below && overlapsX(a.Rect(), target)
}

// obstacleAhead reports whether an obstacle is within Lookahead to the right of the actor.
func (p *Autopilot) obstacleAhead(s Snapshot) bool {
	right := s.Actor.X + s.Actor.W
	for _, o := range s.Obstacles {
		if gap := o.X - right; gap >= 0 && gap <= p.Lookahead {
			return true
		}
	}
	return false
}

func overlapsX(a, b core.RectF) bool {
	return a.X < b.Right() && a.Right() > b.X
}

// Summary describes the outcome of a headless run.
type Summary struct {
	Seed      int64   `yaml:"seed"`
	Ticks     int     `yaml:"ticks"`
	Score     int     `yaml:"score"`
	State     State   `yaml:"state"`
	Spawned   int     `yaml:"spawned"`
	Jumps     int     `yaml:"jumps"`
	Obstacles int     `yaml:"obstacles_alive"`
	ActorX    float64 `yaml:"actor_x"`
	ActorY    float64 `yaml:"actor_y"`
}

// RunHeadless ticks w up to maxTicks times, stopping early when the session ends.
// A nil pilot leaves the actor idle.
func RunHeadless(w *World, maxTicks int, pilot *Autopilot) Summary {
	var sum Summary
	snap := w.Snapshot()

	for sum.Ticks < maxTicks && !snap.Over() {
		if pilot != nil {
			dir, jump := pilot.Decide(snap)
			w.SetHorizontalIntent(dir)
			if jump && w.CanJump() {
				w.RequestJump()
				sum.Jumps++
			}
		}
		snap = w.Tick()
		sum.Ticks++
	}

	sum.Score = snap.Score
	sum.State = snap.State
	sum.Spawned = w.Spawned()
	sum.Obstacles = len(snap.Obstacles)
	sum.ActorX = snap.Actor.X
	sum.ActorY = snap.Actor.Y
	return sum
}
