package terrain

import (
	"math"

	"isle/internal/core"
)

// Band maps every height up to and including Upper to Kind.
type Band struct {
	Upper float64
	Kind  TileKind
}

// The last band is open-ended: it takes every value the others reject,
// NaN included, so classification is total.
var canonicalBands = []Band{
	{Upper: -0.3, Kind: DeepWater},
	{Upper: 0, Kind: Water},
	{Upper: 0.3, Kind: Sand},
	{Upper: 2, Kind: Grass},
	{Upper: 5, Kind: Forest},
	{Upper: 10, Kind: Hills},
	{Upper: 15, Kind: Mountain},
	{Upper: math.Inf(1), Kind: Snow},
}

// Bands returns a copy of the classification table.
func Bands() []Band {
	return append([]Band(nil), canonicalBands...)
}

// Classify maps a height to its tile kind.
func Classify(h float64) TileKind {
	last := len(canonicalBands) - 1
	for _, b := range canonicalBands[:last] {
		if h <= b.Upper {
			return b.Kind
		}
	}
	return canonicalBands[last].Kind
}

// ClassifyGrid classifies every cell of a heightmap.
func ClassifyGrid(heights *core.Grid[float64]) *core.Grid[TileKind] {
	tiles := core.NewGrid[TileKind](heights.W, heights.H)
	out := tiles.Cells()
	for i, h := range heights.Cells() {
		out[i] = Classify(h)
	}
	return tiles
}
