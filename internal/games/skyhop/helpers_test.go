package skyhop

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
)

// frameMs is one 60 Hz frame as a browser-style caller would measure it.
const frameMs = 16.7

// seqRand replays a fixed list of values.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := NewSession(config.Default(), rand.New(rand.NewSource(seed)), 0)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// wideGap returns an obstacle whose gap spans almost the whole world.
func wideGap(x float64) Obstacle {
	return Obstacle{
		ID:        1000,
		X:         x,
		GapTop:    40,
		GapHeight: 520,
		Width:     60,
		Speed:     1,
	}
}
