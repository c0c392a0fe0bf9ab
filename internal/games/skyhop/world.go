package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
)

// World owns the live obstacle sequence and the spawn clock.
type World struct {
	cfg        config.Config
	gen        *Generator
	obstacles  []Obstacle // Spawn order, oldest first
	sinceSpawn float64    // Milliseconds since the last spawn
	spawned    bool       // Whether anything spawned since Reset
}

// NewWorld creates an empty world that spawns through gen.
func NewWorld(cfg config.Config, gen *Generator) *World {
	return &World{
		cfg:       cfg,
		gen:       gen,
		obstacles: make([]Obstacle, 0, cfg.Obstacles.MaxLive),
	}
}

// Reset clears all obstacles and the spawn clock.
func (w *World) Reset() {
	w.obstacles = w.obstacles[:0]
	w.sinceSpawn = 0
	w.spawned = false
}

// Update moves obstacles, scores the ones whose trailing edge is now left
// of the player, drops the ones past the left edge and spawns on cadence.
// Returns the number of obstacles scored this step.
func (w *World) Update(player Player, dtMillis float64) int {
	frames := dtMillis / w.cfg.Physics.FrameUnitMs
	scored := 0

	for i := range w.obstacles {
		o := &w.obstacles[i]
		o.X -= o.Speed * frames

		if !o.Passed && o.Right() < player.X {
			o.Passed = true
			scored++
		}
	}

	// Remove obstacles that have moved off the left side
	limit := -w.cfg.Obstacles.OffscreenMargin
	live := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Right() >= limit {
			live = append(live, o)
		}
	}
	w.obstacles = live

	w.sinceSpawn += dtMillis
	if !w.spawned || w.sinceSpawn > w.cfg.Obstacles.IntervalMs {
		w.insert(w.gen.Spawn(w.cfg.World.Width, w.cfg.World.Height))
		w.sinceSpawn = 0
		w.spawned = true
	}

	return scored
}

// insert appends an obstacle, evicting the oldest beyond the live cap.
func (w *World) insert(o Obstacle) {
	w.obstacles = append(w.obstacles, o)
	if excess := len(w.obstacles) - w.cfg.Obstacles.MaxLive; excess > 0 {
		w.obstacles = append(w.obstacles[:0], w.obstacles[excess:]...)
	}
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the world; copy it to keep it past the next Update.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}
