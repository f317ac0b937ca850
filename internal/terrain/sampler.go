package terrain

import (
	"math"

	"isle/internal/core"
)

// RandPointWithinR returns an integer offset no farther than r from the
// origin, plus one cell of flooring on the negative side. The larger of two
// uniform draws sets the distance and their ratio sets the angle.
func RandPointWithinR(rng *core.RNG, r float64) (int, int) {
	a := rng.Float64()
	b := rng.Float64()
	if b < a {
		a, b = b, a
	}
	if r <= 0 || b == 0 {
		return 0, 0
	}
	angle := 2 * math.Pi * a / b
	return int(math.Floor(b * r * math.Cos(angle))), int(math.Floor(b * r * math.Sin(angle)))
}
