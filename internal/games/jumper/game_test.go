package jumper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("jumper") {
		t.Fatal("jumper is not registered")
	}
	g, err := registry.Create("jumper")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Platform Jumper" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestStepAdvancesScore(t *testing.T) {
	g := newTestGame(t)

	for i := 1; i <= 5; i++ {
		res := g.Step(frame())
		if res.State.GameOver {
			t.Skipf("seed produced an early collision at tick %d", i)
		}
		if res.State.Score != i {
			t.Fatalf("Score after %d steps = %d", i, res.State.Score)
		}
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	score := res.State.Score

	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	if g.State().Score != score {
		t.Errorf("score changed while paused: %d -> %d", score, g.State().Score)
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause press should resume")
	}
}

func TestJumpIsBuffered(t *testing.T) {
	g := newTestGame(t)

	// Press jump on the first tick, when the resting actor is not yet grounded.
	g.Step(frame(core.ActionJump))
	for i := 0; i < jumpBufferTicks; i++ {
		if g.Snapshot().Actor.VY < 0 {
			return
		}
		g.Step(frame())
	}
	if g.Snapshot().Actor.VY >= 0 {
		t.Errorf("buffered jump never fired, VY = %v", g.Snapshot().Actor.VY)
	}
}

func TestHorizontalIntentLapses(t *testing.T) {
	g := newTestGame(t)
	hold := g.cfg.Input.HoldTicks

	g.Step(frame(core.ActionRight))
	if vx := g.Snapshot().Actor.VX; vx != g.cfg.Actor.Speed {
		t.Fatalf("VX after right = %v, expected %v", vx, g.cfg.Actor.Speed)
	}

	for i := 0; i < hold; i++ {
		g.Step(frame())
	}
	if vx := g.Snapshot().Actor.VX; vx != 0 {
		t.Errorf("VX after %d idle ticks = %v, expected 0", hold, vx)
	}
}

func TestStopClearsIntent(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionLeft))
	if vx := g.Snapshot().Actor.VX; vx != -g.cfg.Actor.Speed {
		t.Fatalf("VX after left = %v", vx)
	}

	g.Step(frame(core.ActionStop))
	if vx := g.Snapshot().Actor.VX; vx != 0 {
		t.Errorf("VX after stop = %v, expected 0", vx)
	}
}

func TestOppositeDirectionsCancel(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionLeft, core.ActionRight))
	if vx := g.Snapshot().Actor.VX; vx != 0 {
		t.Errorf("VX with both directions = %v, expected 0", vx)
	}
}

func TestRenderDrawsWorld(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 1") {
		t.Errorf("HUD missing score:\n%s", out)
	}
	if !strings.ContainsRune(out, ActorChar) {
		t.Error("actor not drawn")
	}
	if !strings.ContainsRune(out, PlatformChar) {
		t.Error("platforms not drawn")
	}
	if !strings.ContainsRune(screen.Row(23), GroundChar) {
		t.Error("ground strip not drawn on the last row")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 100000 && !g.State().GameOver; i++ {
		g.Step(frame())
	}
	if !g.State().GameOver {
		t.Fatal("game never ended")
	}

	score := g.State().Score
	res := g.Step(frame(core.ActionJump))
	if res.State.Score != score {
		t.Error("steps after game over must not change the score")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestViewportCoversSmallEntities(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	vp := newViewport(snap, 80, 24)

	for _, p := range snap.Platforms {
		r := vp.cell(p)
		if r.W < 1 || r.H < 1 {
			t.Errorf("platform %+v maps to empty cell rect %+v", p, r)
		}
	}
}
