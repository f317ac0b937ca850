package terrain

import (
	"fmt"
	"strings"

	"isle/internal/core"
)

// Direction is one of the eight compass directions a lava walk can travel.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if d > NorthWest {
		return "?"
	}
	return directionNames[d]
}

// ParseDirection resolves a compass abbreviation such as "n" or "SW".
func ParseDirection(s string) (Direction, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == up {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Delta returns the offset of the neighbour lying in direction d.
func (d Direction) Delta() (int, int) {
	o := neighbourOffsets[d]
	return o[0], o[1]
}

var neighbourOffsets = [8][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// frontierOffsets holds, per direction, the three neighbours in the arc
// ahead of a walk travelling that way.
var frontierOffsets = [8][3][2]int{
	North:     {{-1, -1}, {0, -1}, {1, -1}},
	NorthEast: {{0, -1}, {1, -1}, {1, 0}},
	East:      {{1, -1}, {1, 0}, {1, 1}},
	SouthEast: {{1, 0}, {1, 1}, {0, 1}},
	South:     {{1, 1}, {0, 1}, {-1, 1}},
	SouthWest: {{0, 1}, {-1, 1}, {-1, 0}},
	West:      {{-1, 1}, {-1, 0}, {-1, -1}},
	NorthWest: {{-1, 0}, {-1, -1}, {0, -1}},
}

// Frontier returns the three cells ahead of (x, y) for a walk heading in
// dir, each axis clamped to the grid.
func Frontier(sz core.Size, x, y int, dir Direction) [3]core.Point {
	var out [3]core.Point
	for i, off := range frontierOffsets[dir] {
		fx, fy := clampTo(sz, x+off[0], y+off[1])
		out[i] = core.Point{X: fx, Y: fy}
	}
	return out
}

// Volcano is a generation-time eruption source.
type Volcano struct {
	X, Y      int
	Eruptions int
}

// EruptionStats summarises one eruption simulation.
type EruptionStats struct {
	Volcanoes      []Volcano
	Walks          int
	Steps          int
	TruncatedWalks int
}

// PlaceVolcanoes picks the volcano seeds around the grid centre. Seeds are
// clamped inside the grid.
func PlaceVolcanoes(sz core.Size, rng *core.RNG, p Params) []Volcano {
	cx, cy := sz.W/2, sz.H/2
	n := rng.IntRange(p.VolcanoCountMin, p.VolcanoCountMax)
	radius := p.SeedSpread * float64(sz.W)
	volcanoes := make([]Volcano, 0, n)
	for i := 0; i < n; i++ {
		dx, dy := RandPointWithinR(rng, radius)
		x, y := clampTo(sz, cx+dx, cy+dy)
		volcanoes = append(volcanoes, Volcano{
			X:         x,
			Y:         y,
			Eruptions: rng.IntRange(p.EruptionsMin, p.EruptionsMax),
		})
	}
	return volcanoes
}

// SimulateEruptions places volcanoes and runs every lava walk, depositing
// height into s in place.
func SimulateEruptions(s Surface, rng *core.RNG, p Params) EruptionStats {
	stats := EruptionStats{Volcanoes: PlaceVolcanoes(s.Size(), rng, p)}
	for _, v := range stats.Volcanoes {
		Erupt(s, rng, v, p, &stats)
	}
	return stats
}

// Erupt raises the seed cell and runs v.Eruptions independent lava walks
// from it.
func Erupt(s Surface, rng *core.RNG, v Volcano, p Params, stats *EruptionStats) {
	sz := s.Size()
	s.Set(v.X, v.Y, p.SeedHeight)
	for n := 0; n < v.Eruptions; n++ {
		dir := Direction(rng.IntN(8))
		dx, dy := dir.Delta()
		x, y := clampTo(sz, v.X+dx, v.Y+dy)
		power := rng.FloatRange(p.PowerMin, p.PowerMax)
		steps, truncated := walk(s, rng, x, y, dir, power, p)
		if stats != nil {
			stats.Walks++
			stats.Steps += steps
			if truncated {
				stats.TruncatedWalks++
			}
		}
	}
}

// walk runs one lava flow. The direction is fixed for the whole walk; it is
// never recomputed from the actual movement.
func walk(s Surface, rng *core.RNG, x, y int, dir Direction, power float64, p Params) (int, bool) {
	sz := s.Size()
	steps := 0
	for power > 0 {
		if steps >= p.MaxWalkSteps {
			return steps, true
		}
		deposit(s, x, y, power)
		frontier := Frontier(sz, x, y, dir)
		for _, c := range frontier {
			deposit(s, c.X, c.Y, p.FrontierDeposit)
		}
		next := frontier[rng.IntN(len(frontier))]
		x, y = next.X, next.Y
		power -= p.PowerDecay
		steps++
	}
	return steps, false
}
