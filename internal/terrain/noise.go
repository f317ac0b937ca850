package terrain

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"isle/internal/core"
)

// Detail noise kinds accepted by Params.NoiseKind.
const (
	NoiseNone    = "none"
	NoisePerlin  = "perlin"
	NoiseSimplex = "simplex"
)

var noiseKinds = []string{NoiseNone, NoisePerlin, NoiseSimplex}

// NoiseField samples a smooth 2D field with values roughly in [-1, 1].
type NoiseField interface {
	At(x, y float64) float64
}

type perlinField struct{ p *perlin.Perlin }

func (f perlinField) At(x, y float64) float64 { return f.p.Noise2D(x, y) }

type simplexField struct{ n opensimplex.Noise }

func (f simplexField) At(x, y float64) float64 { return f.n.Eval2(x, y) }

// NewNoiseField builds the detail noise backend named by kind.
func NewNoiseField(kind string, seed int64) (NoiseField, error) {
	switch kind {
	case NoisePerlin:
		return perlinField{p: perlin.NewPerlin(2, 2, 3, seed)}, nil
	case NoiseSimplex:
		return simplexField{n: opensimplex.New(seed)}, nil
	case "", NoiseNone:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: unknown noise kind %q", ErrInvalidParams, kind)
}

// ApplyNoise perturbs every cell by amplitude * field(x*scale, y*scale).
// It roughens coastlines without moving the volcanic peaks.
func ApplyNoise(heights *core.Grid[float64], field NoiseField, amplitude, scale float64) {
	if field == nil || amplitude == 0 {
		return
	}
	for y := 0; y < heights.H; y++ {
		for x := 0; x < heights.W; x++ {
			n := field.At(float64(x)*scale, float64(y)*scale)
			heights.Set(x, y, heights.At(x, y)+amplitude*n)
		}
	}
}
