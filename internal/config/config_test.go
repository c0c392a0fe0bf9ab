package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() differ:\n%+v\n%+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantSub string
	}{
		{
			name:    "world too short for widest gap",
			mutate:  func(c *Config) { c.World.Height = c.Obstacles.GapMax + 79 },
			wantSub: "gap_max + 2*gap_edge",
		},
		{
			name:    "gap range inverted",
			mutate:  func(c *Config) { c.Obstacles.GapMin = 250 },
			wantSub: "must not exceed gap_max",
		},
		{
			name:    "jump points down",
			mutate:  func(c *Config) { c.Physics.JumpVelocity = 3 },
			wantSub: "jump_velocity",
		},
		{
			name:    "zero frame unit",
			mutate:  func(c *Config) { c.Physics.FrameUnitMs = 0 },
			wantSub: "frame_unit_ms",
		},
		{
			name:    "player starts outside world",
			mutate:  func(c *Config) { c.Player.StartX = c.World.Width },
			wantSub: "player.start_x",
		},
		{
			name:    "no live obstacles allowed",
			mutate:  func(c *Config) { c.Obstacles.MaxLive = 0 },
			wantSub: "max_live",
		},
		{
			name:    "negative hold window",
			mutate:  func(c *Config) { c.Input.HoldMs = -1 },
			wantSub: "hold_ms",
		},
		{
			name:    "infinite horizontal speed",
			mutate:  func(c *Config) { c.Physics.HorizSpeed = math.Inf(1) },
			wantSub: "physics.horiz_speed must be finite",
		},
		{
			name:    "NaN gravity",
			mutate:  func(c *Config) { c.Physics.Gravity = math.NaN() },
			wantSub: "physics.gravity must be finite",
		},
		{
			name:    "infinite world width",
			mutate:  func(c *Config) { c.World.Width = math.Inf(1) },
			wantSub: "world.width must be finite",
		},
		{
			name:    "infinite obstacle width",
			mutate:  func(c *Config) { c.Obstacles.Width = math.Inf(1) },
			wantSub: "obstacles.width must be finite",
		},
		{
			name:    "negative infinite jump velocity",
			mutate:  func(c *Config) { c.Physics.JumpVelocity = math.Inf(-1) },
			wantSub: "physics.jump_velocity must be finite",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q should mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := Default()
	cfg.World.Width = 0
	cfg.Obstacles.BaseSpeed = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "world.width") || !strings.Contains(msg, "base_speed") {
		t.Errorf("expected both violations in %q", msg)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("obstacles:\n  gap_min: 150\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Obstacles.GapMin != 150 {
		t.Errorf("GapMin = %g, expected 150", cfg.Obstacles.GapMin)
	}
	if cfg.Obstacles.GapMax != Default().Obstacles.GapMax {
		t.Errorf("GapMax should keep default, got %g", cfg.Obstacles.GapMax)
	}
}

func TestParseNonFiniteFailsValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantSub string
	}{
		{"inf", "physics:\n  horiz_speed: .inf\n  gravity: .inf\n", "physics.horiz_speed"},
		{"nan", "obstacles:\n  interval_ms: .nan\n", "obstacles.interval_ms"},
		{"negative inf", "player:\n  start_y: -.inf\n", "player.start_y"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			err = cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.wantSub+" must be finite") {
				t.Errorf("error %q should reject %s as non-finite", err, tc.wantSub)
			}
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("world: [oops")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 1024\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.World.Width != 1024 {
		t.Errorf("World.Width = %g, expected 1024", cfg.World.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("obstacles:\n  max_live: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Obstacles.MaxLive != 4 {
		t.Errorf("MaxLive = %d, expected 4", cfg.Obstacles.MaxLive)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "gap_edge: 40") {
		t.Errorf("marshalled YAML missing gap_edge:\n%s", data)
	}
}
