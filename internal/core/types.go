package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Point addresses a single grid cell.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Map is the read side of a generated tile map as seen by the viewer: a
// fixed-size byte buffer of tile values that can be regenerated from a seed.
type Map interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Cells() []uint8
}
