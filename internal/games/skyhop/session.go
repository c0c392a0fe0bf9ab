// Package skyhop implements the side-scrolling obstacle game simulation.
// The player drifts under gravity, jumps, steers horizontally and scores a
// point for every obstacle whose trailing edge passes it. A single Session
// owns all simulation state and must be driven from one goroutine.
package skyhop

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// GameID is the key used for score storage.
const GameID = "skyhop"

// State is the session run state.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// StepResult is returned by Session.Step.
type StepResult struct {
	State      State
	ScoreDelta int
	Collided   bool
	NewBest    bool // Best score increased this step; persist it
}

// Session is the game state machine: Idle -> Running -> GameOver -> Running.
type Session struct {
	cfg       config.Config
	player    Player
	world     *World
	state     State
	score     int
	best      int
	tick      uint64
	elapsedMs float64
}

// NewSession validates cfg and returns an idle session.
// best is the previously persisted best score; negative values become 0.
func NewSession(cfg config.Config, rng RandSource, best int) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		player: NewPlayer(cfg.Player),
		world:  NewWorld(cfg, NewGenerator(rng, cfg.Obstacles)),
		state:  StateIdle,
		best:   max(best, 0),
	}
	return s, nil
}

// Start begins a run from Idle or GameOver. It is a no-op while Running.
func (s *Session) Start() {
	if s.state == StateRunning {
		return
	}
	s.reset()
	s.state = StateRunning
}

// Restart has the same effect as Start.
func (s *Session) Restart() {
	s.Start()
}

func (s *Session) reset() {
	s.player = NewPlayer(s.cfg.Player)
	s.world.Reset()
	s.score = 0
	s.tick = 0
	s.elapsedMs = 0
}

// Step advances the simulation by dtMillis. Outside Running it changes nothing.
// Order: jump, kinematics, world, collision.
func (s *Session) Step(dtMillis float64, in core.Input) StepResult {
	if s.state != StateRunning {
		return StepResult{State: s.state}
	}

	if dtMillis < 0 || math.IsNaN(dtMillis) || math.IsInf(dtMillis, 0) {
		dtMillis = 0
	}

	s.tick++
	s.elapsedMs += dtMillis

	if in.JumpRequested {
		Jump(&s.player, s.cfg)
	}
	UpdatePlayer(&s.player, in, dtMillis, s.cfg)

	delta := s.world.Update(s.player, dtMillis)
	s.score += delta

	result := StepResult{ScoreDelta: delta}

	if DetectCollision(s.player, s.world.Obstacles(), s.cfg.World.Height) {
		s.state = StateGameOver
		result.Collided = true
		if s.score > s.best {
			s.best = s.score
			result.NewBest = true
		}
	}

	result.State = s.state
	return result
}

// State returns the current run state.
func (s *Session) State() State {
	return s.state
}

// Score returns the score of the current or last run.
func (s *Session) Score() int {
	return s.score
}

// Best returns the best score seen by this session.
func (s *Session) Best() int {
	return s.best
}

// Config returns the parameters the session was built with.
func (s *Session) Config() config.Config {
	return s.cfg
}
