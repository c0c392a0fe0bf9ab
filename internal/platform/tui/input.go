package tui

import (
	"time"

	"github.com/vovakirdan/skyhop/internal/core"
)

// inputTracker turns terminal key presses into per-step input.
// Terminals report presses and auto-repeat but never releases, so a
// direction counts as held until hold has passed since its last press.
// Jump is an edge: one press yields exactly one JumpRequested.
type inputTracker struct {
	hold      time.Duration
	lastLeft  time.Time
	lastRight time.Time
	jump      bool
}

func newInputTracker(hold time.Duration) inputTracker {
	return inputTracker{hold: hold}
}

// Press records a key press at the given time.
func (t *inputTracker) Press(a core.Action, at time.Time) {
	switch a {
	case core.ActionLeft:
		t.lastLeft = at
	case core.ActionRight:
		t.lastRight = at
	case core.ActionJump:
		t.jump = true
	}
}

// Frame returns the input for a step taken at the given time and consumes
// the pending jump.
func (t *inputTracker) Frame(at time.Time) core.Input {
	in := core.Input{
		MoveLeft:      t.held(t.lastLeft, at),
		MoveRight:     t.held(t.lastRight, at),
		JumpRequested: t.jump,
	}
	t.jump = false
	return in
}

// Reset forgets all pressed keys.
func (t *inputTracker) Reset() {
	t.lastLeft = time.Time{}
	t.lastRight = time.Time{}
	t.jump = false
}

func (t *inputTracker) held(last, at time.Time) bool {
	if last.IsZero() {
		return false
	}
	return at.Sub(last) <= t.hold
}

// frameClock computes the delta between consecutive frames in milliseconds.
// The first frame after a reset has a zero delta.
type frameClock struct {
	last time.Time
}

// Delta returns milliseconds since the previous frame.
func (c *frameClock) Delta(at time.Time) float64 {
	if c.last.IsZero() || at.Before(c.last) {
		c.last = at
		return 0
	}
	dt := at.Sub(c.last)
	c.last = at
	return float64(dt) / float64(time.Millisecond)
}

// Reset makes the next frame a first frame.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
