package skyhop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '●'
	BarrierChar   = '█'
	CapTopChar    = '▄'
	CapBottomChar = '▀'
	GroundChar    = '═'
)

// Minimum screen size for a playable projection
const (
	MinScreenW = 20
	MinScreenH = 8
)

// Render draws the current session state to the screen.
func (s *Session) Render(dst *core.Screen) {
	RenderSnapshot(dst, s.Snapshot())
}

// RenderSnapshot projects world units onto the screen: row 0 is the HUD,
// the last row is the ground line, everything between is the play field.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Window too small")
		return
	}

	p := projection{
		sx:    float64(w) / snap.WorldW,
		sy:    float64(h-2) / snap.WorldH,
		top:   1,
		floor: h - 1,
	}

	dst.DrawHLine(0, h-1, w, GroundChar, core.ColorGray)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, p, o)
	}

	pl := snap.Player
	x0, x1 := p.span(pl.X, pl.X+pl.W, p.sx, 0)
	y0, y1 := p.span(pl.Y, pl.Y+pl.H, p.sy, p.top)
	dst.FillRect(x0, y0, x1, y1, PlayerChar, core.ColorBrightYellow)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	best := fmt.Sprintf(" Best: %d ", snap.Best)
	dst.DrawText(w-len(best)-2, 0, best)

	switch snap.State {
	case StateIdle:
		dst.DrawMessageBox("SKYHOP", "Enter to start  |  S scores  |  Q quit")
	case StateGameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  Best: %d  |  R to restart", snap.Score, snap.Best))
	}
}

type projection struct {
	sx, sy float64 // Cells per world unit
	top    int     // First play field row
	floor  int     // Ground row (exclusive)
}

// span maps the world interval [a, b) to a cell range at least one cell wide.
func (p projection) span(a, b, scale float64, offset int) (int, int) {
	c0 := offset + int(math.Floor(a*scale))
	c1 := offset + int(math.Ceil(b*scale))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

func drawObstacle(dst *core.Screen, p projection, o Obstacle) {
	x0, x1 := p.span(o.X, o.Right(), p.sx, 0)

	gapStart := p.top + int(math.Floor(o.GapTop*p.sy))
	gapEnd := p.top + int(math.Ceil((o.GapTop+o.GapHeight)*p.sy))
	if gapEnd > p.floor {
		gapEnd = p.floor
	}

	// Top barrier with its cap on the last row
	dst.FillRect(x0, p.top, x1, gapStart, BarrierChar, core.ColorGreen)
	if gapStart > p.top {
		dst.FillRect(x0, gapStart-1, x1, gapStart, CapTopChar, core.ColorBrightGreen)
	}

	// Bottom barrier with its cap on the first row
	dst.FillRect(x0, gapEnd, x1, p.floor, BarrierChar, core.ColorGreen)
	if gapEnd < p.floor {
		dst.FillRect(x0, gapEnd, x1, gapEnd+1, CapBottomChar, core.ColorBrightGreen)
	}
}
