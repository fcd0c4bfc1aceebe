package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper/sim"
)

// Visual characters for rendering
const (
	ActorChar    = '█'
	ObstacleChar = '▓'
	PlatformChar = '▀'
	GroundChar   = '═'
)

// Colors for each entity kind
const (
	ActorColor    = core.ColorRed
	ObstacleColor = core.ColorBlue
	PlatformColor = core.ColorBrown
	GroundColor   = core.ColorGray
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world coordinates onto the playfield part of a screen.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(snap sim.Snapshot, screenW, screenH int) viewport {
	rows := core.Max(screenH-hudRows, 1)
	vp := viewport{top: hudRows}
	if snap.WorldW > 0 {
		vp.sx = float64(screenW) / snap.WorldW
	}
	if snap.WorldH > 0 {
		vp.sy = float64(rows) / snap.WorldH
	}
	return vp
}

// cell converts a world rectangle into the covered screen cells.
// Anything with a positive size covers at least one cell.
func (vp viewport) cell(r core.RectF) core.Rect {
	x0 := int(math.Round(r.X * vp.sx))
	y0 := int(math.Round(r.Y * vp.sy))
	x1 := int(math.Round(r.Right() * vp.sx))
	y1 := int(math.Round(r.Bottom() * vp.sy))
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+vp.top, x1-x0, y1-y0)
}

// row converts a world y coordinate into a screen row.
func (vp viewport) row(y float64) int {
	return int(math.Round(y*vp.sy)) + vp.top
}

// Render draws the last snapshot into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.snapshot
	vp := newViewport(snap, dst.Width(), dst.Height())

	// Ground strip
	for y := vp.row(snap.GroundY); y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, GroundColor)
	}

	for _, p := range snap.Platforms {
		dst.DrawRectColored(vp.cell(p), PlatformChar, PlatformColor)
	}

	for _, o := range snap.Obstacles {
		dst.DrawRectColored(vp.cell(o), ObstacleChar, ObstacleColor)
	}

	dst.DrawRectColored(vp.cell(snap.Actor.Rect()), ActorChar, ActorColor)

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawText(2, 0, scoreText)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.Over() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  |  B menu", snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
