package skyhop

// Snapshot is a read-only copy of the session for rendering, persistence
// and determinism checks.
type Snapshot struct {
	Tick      uint64
	ElapsedMs float64
	State     State
	Score     int
	Best      int
	WorldW    float64
	WorldH    float64
	Player    Player
	Obstacles []Obstacle // Spawn order
}

// Snapshot returns a copy of the current state. Mutating it does not
// affect the session.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.world.Obstacles()))
	copy(obstacles, s.world.Obstacles())

	return Snapshot{
		Tick:      s.tick,
		ElapsedMs: s.elapsedMs,
		State:     s.state,
		Score:     s.score,
		Best:      s.best,
		WorldW:    s.cfg.World.Width,
		WorldH:    s.cfg.World.Height,
		Player:    s.player,
		Obstacles: obstacles,
	}
}
