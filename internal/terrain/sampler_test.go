package terrain

import (
	"math"
	"testing"

	"isle/internal/core"
)

// scriptedSource replays a fixed list of values, cycling when exhausted.
type scriptedSource struct {
	vals []uint64
	i    int
}

func (s *scriptedSource) Uint64() uint64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// unit encodes f in [0, 1) so that rand.Rand.Float64 returns it exactly.
func unit(f float64) uint64 { return uint64(f * (1 << 53)) }

func TestRandPointWithinRFormula(t *testing.T) {
	for _, order := range [][]uint64{
		{unit(0.25), unit(0.5)},
		{unit(0.5), unit(0.25)},
	} {
		rng := core.NewRNGFromSource(&scriptedSource{vals: order})
		dx, dy := RandPointWithinR(rng, 10)
		// a=0.25, b=0.5: angle = pi, magnitude 5.
		if dx != -5 || dy != 0 {
			t.Fatalf("got (%d, %d), want (-5, 0)", dx, dy)
		}
	}
}

func TestRandPointWithinRStaysInRadius(t *testing.T) {
	rng := core.NewRNG(5)
	const r = 20.0
	sum := 0.0
	const n = 5000
	for i := 0; i < n; i++ {
		dx, dy := RandPointWithinR(rng, r)
		// floor can push each axis one further in the negative direction.
		if d := math.Hypot(float64(dx), float64(dy)); d > r+math.Sqrt2 {
			t.Fatalf("offset (%d, %d) at distance %.2f exceeds radius %.0f", dx, dy, d, r)
		}
		sum += math.Hypot(float64(dx)+0.5, float64(dy)+0.5)
	}
	if mean := sum / n; mean >= r {
		t.Fatalf("mean distance %.2f should sit well inside the radius", mean)
	}
}

func TestRandPointWithinRZeroRadius(t *testing.T) {
	rng := core.NewRNG(1)
	for i := 0; i < 10; i++ {
		if dx, dy := RandPointWithinR(rng, 0); dx != 0 || dy != 0 {
			t.Fatalf("zero radius produced (%d, %d)", dx, dy)
		}
	}
}
