package terrain

import "isle/internal/core"

// EffectiveOctave returns the largest octave <= octave whose sample period
// fits inside the smaller grid dimension. Negative octaves become 0.
func EffectiveOctave(octave, w, h int) int {
	if octave < 0 {
		return 0
	}
	limit := w
	if h < limit {
		limit = h
	}
	o := 0
	for o < octave && 1<<(o+1) <= limit {
		o++
	}
	return o
}

// Smooth resamples src on a coarse lattice of spacing 2^octave and blends
// the lattice bilinearly. Lattice lookups wrap on both axes.
func Smooth(src *core.Grid[float64], octave int) *core.Grid[float64] {
	w, h := src.W, src.H
	out := core.NewGrid[float64](w, h)
	period := 1 << EffectiveOctave(octave, w, h)
	freq := 1 / float64(period)

	for i := 0; i < w; i++ {
		i0 := (i / period) * period
		i1 := (i0 + period) % w
		hBlend := float64(i-i0) * freq
		for j := 0; j < h; j++ {
			j0 := (j / period) * period
			j1 := (j0 + period) % h
			vBlend := float64(j-j0) * freq

			top := lerp(src.At(i0, j0), src.At(i1, j0), hBlend)
			bottom := lerp(src.At(i0, j1), src.At(i1, j1), hBlend)
			out.Set(i, j, lerp(top, bottom, vBlend))
		}
	}
	return out
}

// lerp interpolates between v0 and v1. Equal endpoints return v0 exactly.
func lerp(v0, v1, t float64) float64 {
	return v0 + t*(v1-v0)
}
