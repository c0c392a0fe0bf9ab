package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// RandSource supplies uniform values in [0, 1).
// *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Obstacle is a top and bottom barrier sharing an x-position, separated by a gap.
type Obstacle struct {
	ID        uint64  // Unique, increases in creation order
	X         float64 // Left edge
	GapTop    float64 // Y where the gap starts
	GapHeight float64 // Height of the passable gap
	Width     float64
	Speed     float64 // Leftward speed per frame unit
	Passed    bool    // Scored already
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// TopRect returns the collision rectangle of the top barrier.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.GapTop)
}

// BottomRect returns the collision rectangle of the bottom barrier.
func (o Obstacle) BottomRect(worldH float64) core.Rect {
	bottomY := o.GapTop + o.GapHeight
	return core.NewRect(o.X, bottomY, o.Width, worldH-bottomY)
}

// Generator creates obstacles with randomized gaps and speeds.
type Generator struct {
	rng    RandSource
	cfg    config.ObstacleConfig
	nextID uint64
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng RandSource, cfg config.ObstacleConfig) *Generator {
	return &Generator{
		rng:    rng,
		cfg:    cfg,
		nextID: 1,
	}
}

// Spawn returns a new obstacle just beyond the right edge of the world.
// The caller owns insertion into the live sequence.
func (g *Generator) Spawn(worldW, worldH float64) Obstacle {
	c := g.cfg

	gapHeight := g.uniform(c.GapMin, c.GapMax)

	// Config validation keeps this range non-empty; clamp to the top edge if not.
	minTop := c.GapEdge
	maxTop := worldH - gapHeight - c.GapEdge
	gapTop := minTop
	if maxTop > minTop {
		gapTop = g.uniform(minTop, maxTop)
	}

	o := Obstacle{
		ID:        g.nextID,
		X:         worldW + c.SpawnMargin,
		GapTop:    gapTop,
		GapHeight: gapHeight,
		Width:     c.Width,
		Speed:     c.BaseSpeed + g.uniform(0, c.SpeedJitter),
	}
	g.nextID++
	return o
}

// uniform draws from [lo, hi].
func (g *Generator) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return core.ClampF(lo+g.rng.Float64()*(hi-lo), lo, hi)
}
