package terrain

import (
	"fmt"

	"isle/internal/core"
)

// DefaultBaseline is the ocean-floor elevation every cell starts at.
const DefaultBaseline = -0.3

// Surface is the mutable height storage eruption walks deposit into.
// *core.Grid[float64] satisfies it.
type Surface interface {
	Size() core.Size
	At(x, y int) float64
	Set(x, y int, v float64)
}

// NewHeightmap returns a w x h grid filled with baseline.
func NewHeightmap(w, h int, baseline float64) (*core.Grid[float64], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return core.NewFilledGrid(w, h, baseline), nil
}

func deposit(s Surface, x, y int, v float64) {
	s.Set(x, y, s.At(x, y)+v)
}

func clampTo(sz core.Size, x, y int) (int, int) {
	return core.ClampInt(x, 0, sz.W-1), core.ClampInt(y, 0, sz.H-1)
}
