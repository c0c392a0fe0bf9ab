package skyhop

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

func TestNewSessionRejectsNonFiniteConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"infinite horizontal speed and gravity", func(c *config.Config) {
			c.Physics.HorizSpeed = math.Inf(1)
			c.Physics.Gravity = math.Inf(1)
		}},
		{"NaN jump lift", func(c *config.Config) { c.Physics.JumpLift = math.NaN() }},
		{"infinite obstacle width", func(c *config.Config) { c.Obstacles.Width = math.Inf(1) }},
		{"infinite world height", func(c *config.Config) { c.World.Height = math.Inf(1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)

			s, err := NewSession(cfg, rand.New(rand.NewSource(1)), 0)
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Fatalf("NewSession() error = %v, want ErrInvalidConfig", err)
			}
			if s != nil {
				t.Error("session should be nil on error")
			}
		})
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.World.Height = cfg.Obstacles.GapMax + 2*cfg.Obstacles.GapEdge - 1

	s, err := NewSession(cfg, rand.New(rand.NewSource(1)), 0)
	if err == nil {
		t.Fatal("NewSession should refuse an invalid config")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig: %v", err)
	}
	if s != nil {
		t.Error("session should be nil on error")
	}
}

func TestNewSessionIsIdle(t *testing.T) {
	s, err := NewSession(config.Default(), rand.New(rand.NewSource(1)), -5)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	if s.State() != StateIdle {
		t.Errorf("State() = %q, expected idle", s.State())
	}
	if s.Best() != 0 {
		t.Errorf("negative persisted best should become 0, got %d", s.Best())
	}
}

func TestStepIgnoredWhenIdle(t *testing.T) {
	s := newTestSession(t, 1)
	before := s.Snapshot()

	result := s.Step(frameMs, core.Input{JumpRequested: true, MoveRight: true})

	if result.State != StateIdle || result.ScoreDelta != 0 || result.Collided {
		t.Errorf("Step while idle returned %+v", result)
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("Step while idle should not mutate state")
	}
}

func TestStepIgnoredAfterGameOver(t *testing.T) {
	s := newTestSession(t, 1)
	s.Start()
	s.world.insert(Obstacle{ID: 1000, X: s.player.X, GapTop: 400, GapHeight: 150, Width: 60})

	if r := s.Step(frameMs, core.Input{}); r.State != StateGameOver {
		t.Fatalf("expected game over, got %+v", r)
	}

	frozen := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Step(frameMs, core.Input{JumpRequested: true})
	}
	if !reflect.DeepEqual(frozen, s.Snapshot()) {
		t.Error("Step after game over should not mutate state")
	}

	// Start from GameOver is allowed
	s.Start()
	if s.State() != StateRunning {
		t.Errorf("Start from game over should run, got %q", s.State())
	}
}

func TestStartResetsRun(t *testing.T) {
	s := newTestSession(t, 3)
	s.Start()
	for i := 0; i < 30; i++ {
		s.Step(frameMs, core.Input{MoveRight: true})
	}
	s.score = 4
	s.state = StateGameOver

	s.Start()

	snap := s.Snapshot()
	if snap.State != StateRunning {
		t.Errorf("State = %q, expected running", snap.State)
	}
	if snap.Score != 0 || snap.Tick != 0 || snap.ElapsedMs != 0 {
		t.Errorf("run counters not reset: %+v", snap)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("obstacles not cleared: %d", len(snap.Obstacles))
	}
	if snap.Player != NewPlayer(s.cfg.Player) {
		t.Errorf("player not at initial pose: %+v", snap.Player)
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	s := newTestSession(t, 3)
	s.Start()
	for i := 0; i < 10; i++ {
		s.Step(frameMs, core.Input{})
	}
	before := s.Snapshot()

	s.Start()

	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("Start while running should not reset the run")
	}
}

func TestRestartIdempotent(t *testing.T) {
	s := newTestSession(t, 5)
	s.Start()
	for i := 0; i < 50; i++ {
		s.Step(frameMs, core.Input{})
	}
	s.state = StateGameOver

	s.Restart()
	once := s.Snapshot()
	s.Restart()
	twice := s.Snapshot()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Restart twice differs from once:\n%+v\n%+v", once, twice)
	}
	if twice.Score != 0 || len(twice.Obstacles) != 0 || twice.Player != NewPlayer(s.cfg.Player) {
		t.Errorf("Restart did not reset: %+v", twice)
	}
}

func TestRestartFromIdle(t *testing.T) {
	s := newTestSession(t, 5)
	s.Restart()
	if s.State() != StateRunning {
		t.Errorf("Restart from idle should run, got %q", s.State())
	}
}

// 100 frames with no input: nothing reaches the player yet.
func TestScenarioNoObstacleReachesPlayer(t *testing.T) {
	s := newTestSession(t, 11)
	s.Start()

	for i := 0; i < 100; i++ {
		r := s.Step(frameMs, core.Input{})
		if r.State != StateRunning {
			t.Fatalf("step %d: state %q, expected running", i, r.State)
		}
	}

	if s.Score() != 0 {
		t.Errorf("Score = %d, expected 0", s.Score())
	}
	if s.State() != StateRunning {
		t.Errorf("State = %q, expected running", s.State())
	}
}

func TestScenarioCollisionEndsRun(t *testing.T) {
	s := newTestSession(t, 11)
	s.Start()

	// Obstacle on top of the player, player below the gap top (inside top barrier)
	s.world.insert(Obstacle{ID: 1000, X: s.player.X, GapTop: 400, GapHeight: 150, Width: 60})
	s.score = 3

	r := s.Step(frameMs, core.Input{})

	if r.State != StateGameOver || !r.Collided {
		t.Fatalf("expected collision game over, got %+v", r)
	}
	if s.Best() != 3 || !r.NewBest {
		t.Errorf("Best = %d NewBest = %v, expected 3 and true", s.Best(), r.NewBest)
	}
}

func TestCollisionKeepsHigherBest(t *testing.T) {
	s, err := NewSession(config.Default(), rand.New(rand.NewSource(1)), 10)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.Start()
	s.world.insert(Obstacle{ID: 1000, X: s.player.X, GapTop: 400, GapHeight: 150, Width: 60})
	s.score = 5

	r := s.Step(frameMs, core.Input{})

	if r.State != StateGameOver {
		t.Fatalf("expected game over, got %+v", r)
	}
	if s.Best() != 10 || r.NewBest {
		t.Errorf("Best = %d NewBest = %v, expected 10 and false", s.Best(), r.NewBest)
	}
}

// A large dt carries the obstacle several widths past the player: one point.
func TestScenarioLargeDeltaScoresOnce(t *testing.T) {
	s := newTestSession(t, 11)
	s.Start()

	o := wideGap(s.player.X + 1 - 60)
	o.Speed = 10
	s.world.insert(o)

	r := s.Step(500, core.Input{})
	if r.ScoreDelta != 1 || s.Score() != 1 {
		t.Fatalf("ScoreDelta = %d Score = %d, expected 1 and 1", r.ScoreDelta, s.Score())
	}
	if r.State != StateRunning {
		t.Fatalf("state = %q, expected running", r.State)
	}

	for i := 0; i < 5; i++ {
		s.Step(frameMs, core.Input{})
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d after further steps, expected 1", s.Score())
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	s := newTestSession(t, 21)
	cfg := s.Config()
	rng := rand.New(rand.NewSource(42))
	s.Start()

	maxX := cfg.World.Width - cfg.Player.Width
	maxY := cfg.World.Height - cfg.Player.Height

	for i := 0; i < 5000; i++ {
		in := core.Input{
			MoveLeft:      rng.Intn(2) == 0,
			MoveRight:     rng.Intn(3) == 0,
			JumpRequested: rng.Intn(6) == 0,
		}
		s.Step(rng.Float64()*250, in)

		p := s.Snapshot().Player
		if p.X < 0 || p.X > maxX || p.Y < 0 || p.Y > maxY {
			t.Fatalf("step %d: player out of bounds %+v", i, p)
		}

		if s.State() == StateGameOver {
			s.Restart()
		}
	}
}

func TestStepJump(t *testing.T) {
	s := newTestSession(t, 1)
	s.Start()
	startY := s.player.Y

	s.Step(0, core.Input{JumpRequested: true})

	p := s.Snapshot().Player
	if p.VY != s.cfg.Physics.JumpVelocity {
		t.Errorf("VY = %v, expected jump velocity %v", p.VY, s.cfg.Physics.JumpVelocity)
	}
	if p.Y != startY-s.cfg.Physics.JumpLift {
		t.Errorf("Y = %v, expected %v", p.Y, startY-s.cfg.Physics.JumpLift)
	}

	// Next frame without a new press keeps falling back under gravity
	s.Step(frameMs, core.Input{})
	if s.player.VY <= s.cfg.Physics.JumpVelocity {
		t.Errorf("gravity should slow the jump, VY = %v", s.player.VY)
	}
}

func TestStepBadDeltaTreatedAsZero(t *testing.T) {
	for _, dt := range []float64{-16, math.NaN(), math.Inf(1)} {
		s := newTestSession(t, 1)
		s.Start()
		start := s.player

		s.Step(dt, core.Input{})

		if s.player != start {
			t.Errorf("dt=%v moved the player: %+v", dt, s.player)
		}
		if s.Snapshot().ElapsedMs != 0 {
			t.Errorf("dt=%v advanced the clock", dt)
		}
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(t, 12345)
		s.Start()
		for i := 0; i < 400; i++ {
			in := core.Input{JumpRequested: i%18 == 0, MoveRight: i%50 < 10}
			if s.Step(frameMs, in).State == StateGameOver {
				break
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs produced different snapshots:\n%+v\n%+v", a, b)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newTestSession(t, 1)
	s.Start()
	s.Step(0, core.Input{})

	snap := s.Snapshot()
	snap.Obstacles[0].X = -999
	snap.Player.X = -999

	again := s.Snapshot()
	if again.Obstacles[0].X == -999 || again.Player.X == -999 {
		t.Error("mutating a snapshot should not affect the session")
	}
}
