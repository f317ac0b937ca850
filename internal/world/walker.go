package world

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"isle/internal/core"
	"isle/internal/terrain"
)

// Walker describes which terrain a creature may stand on.
type Walker struct {
	allowed mapset.Set[terrain.TileKind]
}

// NewWalker returns a walker allowed onto the given kinds.
func NewWalker(kinds ...terrain.TileKind) Walker {
	allowed := mapset.New[terrain.TileKind]()
	for _, k := range kinds {
		allowed.Put(k)
	}
	return Walker{allowed: allowed}
}

// PlayerTerrain lets the player onto everything between the beach and the
// mountains.
func PlayerTerrain() Walker {
	return NewWalker(terrain.Sand, terrain.Grass, terrain.Forest, terrain.Hills, terrain.Mountain)
}

// SheepTerrain keeps sheep off the water and the mountains.
func SheepTerrain() Walker {
	return NewWalker(terrain.Sand, terrain.Grass, terrain.Forest, terrain.Hills)
}

// Allows reports whether kind is walkable.
func (w Walker) Allows(kind terrain.TileKind) bool {
	return w.allowed.Has(kind)
}

// Kinds lists the walkable kinds from lowest to highest.
func (w Walker) Kinds() []terrain.TileKind {
	var kinds []terrain.TileKind
	w.allowed.Each(func(k terrain.TileKind) { kinds = append(kinds, k) })
	slices.Sort(kinds)
	return kinds
}

// CanEnter reports whether w may stand on (x, y) of the island. Cells off
// the grid are never enterable.
func CanEnter(is *terrain.Island, w Walker, x, y int) bool {
	if is == nil || !is.InBounds(x, y) {
		return false
	}
	return w.Allows(is.At(x, y))
}

// Step returns the cell one move from p in dir.
func Step(p core.Point, dir terrain.Direction) core.Point {
	dx, dy := dir.Delta()
	return core.Point{X: p.X + dx, Y: p.Y + dy}
}
