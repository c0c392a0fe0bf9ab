// Package config provides YAML-based configuration loading and validation
// for the simulation parameters.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains every tunable simulation parameter.
// All distances are world units; all durations are milliseconds.
type Config struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Input     InputConfig    `yaml:"input"`
}

// WorldConfig defines the play field.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player hitbox and initial pose.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player kinematics.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`          // Velocity added per frame unit
	JumpVelocity   float64 `yaml:"jump_velocity"`    // Negative = up
	JumpLift       float64 `yaml:"jump_lift"`        // Instant upward displacement on jump
	HorizSpeed     float64 `yaml:"horiz_speed"`      // Per-step horizontal displacement
	FrameUnitMs    float64 `yaml:"frame_unit_ms"`    // Reference frame duration
	MaxGravityStep float64 `yaml:"max_gravity_step"` // Cap on dt/frame_unit for gravity
}

// ObstacleConfig defines obstacle generation and movement.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	GapMin          float64 `yaml:"gap_min"`
	GapMax          float64 `yaml:"gap_max"`
	GapEdge         float64 `yaml:"gap_edge"` // Minimum barrier segment height
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedJitter     float64 `yaml:"speed_jitter"`
	IntervalMs      float64 `yaml:"interval_ms"`
	SpawnMargin     float64 `yaml:"spawn_margin"`
	OffscreenMargin float64 `yaml:"offscreen_margin"`
	MaxLive         int     `yaml:"max_live"`
}

// InputConfig defines how the terminal adapter interprets key presses.
type InputConfig struct {
	// HoldMs is how long a direction key counts as held after its last
	// press. Terminals deliver presses and auto-repeat, never releases.
	HoldMs int `yaml:"hold_ms"`
}

// Validate checks the configuration and returns every violation found,
// each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	w, p, ph, o := c.World, c.Player, c.Physics, c.Obstacles

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"world.width", w.Width},
		{"world.height", w.Height},
		{"player.start_x", p.StartX},
		{"player.start_y", p.StartY},
		{"player.width", p.Width},
		{"player.height", p.Height},
		{"physics.gravity", ph.Gravity},
		{"physics.jump_velocity", ph.JumpVelocity},
		{"physics.jump_lift", ph.JumpLift},
		{"physics.horiz_speed", ph.HorizSpeed},
		{"physics.frame_unit_ms", ph.FrameUnitMs},
		{"physics.max_gravity_step", ph.MaxGravityStep},
		{"obstacles.width", o.Width},
		{"obstacles.gap_min", o.GapMin},
		{"obstacles.gap_max", o.GapMax},
		{"obstacles.gap_edge", o.GapEdge},
		{"obstacles.base_speed", o.BaseSpeed},
		{"obstacles.speed_jitter", o.SpeedJitter},
		{"obstacles.interval_ms", o.IntervalMs},
		{"obstacles.spawn_margin", o.SpawnMargin},
		{"obstacles.offscreen_margin", o.OffscreenMargin},
	} {
		check(!math.IsInf(f.value, 0) && !math.IsNaN(f.value), "%s must be finite, got %g", f.name, f.value)
	}

	check(w.Width > 0, "world.width must be positive, got %g", w.Width)
	check(w.Height > 0, "world.height must be positive, got %g", w.Height)

	check(p.Width > 0 && p.Width <= w.Width, "player.width must be in (0, world.width], got %g", p.Width)
	check(p.Height > 0 && p.Height <= w.Height, "player.height must be in (0, world.height], got %g", p.Height)
	check(p.StartX >= 0 && p.StartX <= w.Width-p.Width,
		"player.start_x must be in [0, %g], got %g", w.Width-p.Width, p.StartX)
	check(p.StartY >= 0 && p.StartY <= w.Height-p.Height,
		"player.start_y must be in [0, %g], got %g", w.Height-p.Height, p.StartY)

	check(ph.Gravity >= 0, "physics.gravity must not be negative, got %g", ph.Gravity)
	check(ph.JumpVelocity < 0, "physics.jump_velocity must be negative (up), got %g", ph.JumpVelocity)
	check(ph.JumpLift >= 0, "physics.jump_lift must not be negative, got %g", ph.JumpLift)
	check(ph.HorizSpeed >= 0, "physics.horiz_speed must not be negative, got %g", ph.HorizSpeed)
	check(ph.FrameUnitMs > 0, "physics.frame_unit_ms must be positive, got %g", ph.FrameUnitMs)
	check(ph.MaxGravityStep > 0, "physics.max_gravity_step must be positive, got %g", ph.MaxGravityStep)

	check(o.Width > 0, "obstacles.width must be positive, got %g", o.Width)
	check(o.GapMin > 0, "obstacles.gap_min must be positive, got %g", o.GapMin)
	check(o.GapMin <= o.GapMax, "obstacles.gap_min (%g) must not exceed gap_max (%g)", o.GapMin, o.GapMax)
	check(o.GapEdge >= 0, "obstacles.gap_edge must not be negative, got %g", o.GapEdge)
	check(w.Height >= o.GapMax+2*o.GapEdge,
		"world.height (%g) must be at least gap_max + 2*gap_edge (%g)", w.Height, o.GapMax+2*o.GapEdge)
	check(o.BaseSpeed > 0, "obstacles.base_speed must be positive, got %g", o.BaseSpeed)
	check(o.SpeedJitter >= 0, "obstacles.speed_jitter must not be negative, got %g", o.SpeedJitter)
	check(o.IntervalMs > 0, "obstacles.interval_ms must be positive, got %g", o.IntervalMs)
	check(o.SpawnMargin >= 0, "obstacles.spawn_margin must not be negative, got %g", o.SpawnMargin)
	check(o.OffscreenMargin >= 0, "obstacles.offscreen_margin must not be negative, got %g", o.OffscreenMargin)
	check(o.MaxLive >= 1, "obstacles.max_live must be at least 1, got %d", o.MaxLive)

	check(c.Input.HoldMs >= 0, "input.hold_ms must not be negative, got %d", c.Input.HoldMs)

	return errors.Join(errs...)
}
