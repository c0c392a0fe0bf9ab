package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Player is the controlled entity. Position is the top-left of its hitbox.
type Player struct {
	X, Y float64 // World position
	VY   float64 // Vertical velocity per frame unit (negative = up)
	W, H float64 // Hitbox size
}

// NewPlayer returns a player at the configured initial pose, at rest.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X: cfg.StartX,
		Y: cfg.StartY,
		W: cfg.Width,
		H: cfg.Height,
	}
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Jump sets the upward jump velocity and applies the instant lift.
func Jump(p *Player, cfg config.Config) {
	p.VY = cfg.Physics.JumpVelocity
	p.Y = core.ClampF(p.Y-cfg.Physics.JumpLift, 0, cfg.World.Height-p.H)
}

// UpdatePlayer integrates horizontal input and gravity over dtMillis and
// clamps the player into the world.
func UpdatePlayer(p *Player, in core.Input, dtMillis float64, cfg config.Config) {
	ph := cfg.Physics

	// Opposite keys held together cancel out
	if in.MoveLeft {
		p.X -= ph.HorizSpeed
	}
	if in.MoveRight {
		p.X += ph.HorizSpeed
	}
	p.X = core.ClampF(p.X, 0, cfg.World.Width-p.W)

	frames := dtMillis / ph.FrameUnitMs
	p.VY += ph.Gravity * min(frames, ph.MaxGravityStep)
	p.Y += p.VY * frames

	floor := cfg.World.Height - p.H
	switch {
	case p.Y > floor:
		p.Y = floor
		p.VY = 0
	case p.Y < 0:
		p.Y = 0
		p.VY = 0
	}
}
