package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/skyhop.yaml and is used when the embedded file cannot
// be parsed.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX: 80,
			StartY: 285,
			Width:  30,
			Height: 30,
		},
		Physics: PhysicsConfig{
			Gravity:        0.5,
			JumpVelocity:   -8,
			JumpLift:       2,
			HorizSpeed:     4,
			FrameUnitMs:    16.67,
			MaxGravityStep: 3,
		},
		Obstacles: ObstacleConfig{
			Width:           60,
			GapMin:          140,
			GapMax:          200,
			GapEdge:         40,
			BaseSpeed:       3,
			SpeedJitter:     1.5,
			IntervalMs:      1600,
			SpawnMargin:     20,
			OffscreenMargin: 20,
			MaxLive:         16,
		},
		Input: InputConfig{
			HoldMs: 180,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
