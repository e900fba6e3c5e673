package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/square-runner/internal/config"
	"github.com/vovakirdan/square-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	BlockChar     = '█'
	BlockTopChar  = '▀'
	SpikeChar     = '▲'
	GroundChar    = '▓'
	GroundTopChar = '═'
)

// hudRows is the number of screen rows reserved above the world.
const hudRows = 1

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(world config.WorldConfig, w, h int) viewport {
	return viewport{
		sx: float64(w) / world.Width,
		sy: float64(core.Max(h-hudRows, 1)) / world.Height,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Round(x * v.sx))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Round(y*v.sy))
}

// rect converts a world box to cells, never collapsing below one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, x1 := v.col(b.X), v.col(b.Right())
	y0, y1 := v.row(b.Y), v.row(b.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := newViewport(g.cfg.World, dst.Width(), dst.Height())

	// Ground band
	groundRow := vp.row(g.cfg.World.GroundLine())
	dst.DrawHLine(0, groundRow, dst.Width(), GroundTopChar, core.ColorGray)
	dst.DrawRect(core.NewRect(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1), GroundChar, core.ColorGray)

	for _, o := range g.session.obstacles {
		r := vp.rect(o.Box())
		switch o.Kind {
		case KindBlock:
			drawBlock(dst, r)
		case KindSpike:
			drawSpike(dst, r)
		}
	}

	dst.DrawRect(vp.rect(g.session.player.Box()), PlayerChar, core.ColorOrange)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.session.Score()))

	// Key hints are drawn by the host below the world.
	if g.paused {
		drawCenteredMessage(dst, "PAUSED")
	}

	if g.session.IsOver() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.session.Score()))
	}
}

// drawBlock fills the block with a highlighted top row.
func drawBlock(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, BlockChar, core.ColorBlue)
	dst.DrawHLine(r.X, r.Y, r.W, BlockTopChar, core.ColorTeal)
}

// drawSpike draws a triangle whose base spans the bottom row of r.
func drawSpike(dst *core.Screen, r core.Rect) {
	for i := 0; i < r.H; i++ {
		width := r.W * (i + 1) / r.H
		if width < 1 {
			width = 1
		}
		x := r.X + (r.W-width)/2
		dst.DrawHLine(x, r.Y+i, width, SpikeChar, core.ColorRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 3
	if len(lines) > 0 {
		boxH++
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}
