package terrain

import (
	"encoding/json"
	"fmt"

	"isle/internal/core"
)

// Island is the generated tile map. It is never mutated after generation;
// accessors hand out copies.
type Island struct {
	Width  int
	Height int

	tiles *core.Grid[TileKind]
}

func newIsland(tiles *core.Grid[TileKind]) *Island {
	return &Island{Width: tiles.W, Height: tiles.H, tiles: tiles}
}

// IslandFromRows builds an island from explicit rows indexed [row][column].
// Rows must be non-empty, rectangular and hold only valid kinds.
func IslandFromRows(rows [][]TileKind) (*Island, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrInvalidDimensions)
	}
	g := core.NewGrid[TileKind](len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.W {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidDimensions, y, len(row), g.W)
		}
		for x, k := range row {
			if !k.Valid() {
				return nil, fmt.Errorf("invalid tile kind %d at (%d, %d)", uint8(k), x, y)
			}
			g.Set(x, y, k)
		}
	}
	return newIsland(g), nil
}

// InBounds reports whether (x, y) lies on the island grid.
func (is *Island) InBounds(x, y int) bool { return is.tiles.InBounds(x, y) }

// At returns the tile at column x, row y. It panics when (x, y) is outside
// the grid; check InBounds first for untrusted coordinates.
func (is *Island) At(x, y int) TileKind { return is.tiles.At(x, y) }

// Row returns a copy of row y.
func (is *Island) Row(y int) []TileKind { return is.tiles.Row(y) }

// Rows returns a copy of the whole grid, indexed [row][column].
func (is *Island) Rows() [][]TileKind {
	rows := make([][]TileKind, is.Height)
	for y := range rows {
		rows[y] = is.tiles.Row(y)
	}
	return rows
}

// Find returns every cell of the given kind in row-major order.
func (is *Island) Find(kind TileKind) []core.Point {
	var pts []core.Point
	for y := 0; y < is.Height; y++ {
		for x := 0; x < is.Width; x++ {
			if is.tiles.At(x, y) == kind {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Counts tallies cells per tile kind. Kinds absent from the island are
// omitted.
func (is *Island) Counts() map[TileKind]int {
	counts := make(map[TileKind]int)
	for _, k := range is.tiles.Cells() {
		counts[k]++
	}
	return counts
}

// Cells returns the tiles as a row-major byte buffer for palette rendering.
func (is *Island) Cells() []uint8 {
	src := is.tiles.Cells()
	out := make([]uint8, len(src))
	for i, k := range src {
		out[i] = uint8(k)
	}
	return out
}

type islandJSON struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Legend []string `json:"legend"`
	Tiles  [][]int  `json:"tiles"`
}

// MarshalJSON encodes the island as rows of tile indices plus a legend that
// names each index.
func (is *Island) MarshalJSON() ([]byte, error) {
	out := islandJSON{
		Width:  is.Width,
		Height: is.Height,
		Legend: tileNames[:],
		Tiles:  make([][]int, is.Height),
	}
	for y := range out.Tiles {
		row := make([]int, is.Width)
		for x := range row {
			row[x] = int(is.tiles.At(x, y))
		}
		out.Tiles[y] = row
	}
	return json.Marshal(out)
}
