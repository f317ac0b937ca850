package render

import (
	"image/color"
	"math"
)

// FillPalette converts tile values into RGBA pixels using a palette. Values
// past the end of the palette use its last colour. When the palette is empty
// the buffer is cleared to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		setPixel(buf, i, palette[idx])
	}
}

// FillRelief shades a heightmap of width w: colour follows normalised
// height and opacity grows with the steepest drop to a 4-neighbour.
func FillRelief(buf []byte, heights []float64, w int) {
	if len(heights) == 0 || w <= 0 {
		return
	}
	h := len(heights) / w
	lo, hi := heights[0], heights[0]
	for _, v := range heights {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			v := heights[i]
			col := reliefColor((v - lo) / span)

			drop := 0.0
			if x > 0 {
				drop = math.Max(drop, math.Abs(v-heights[i-1]))
			}
			if x+1 < w {
				drop = math.Max(drop, math.Abs(v-heights[i+1]))
			}
			if y > 0 {
				drop = math.Max(drop, math.Abs(v-heights[i-w]))
			}
			if y+1 < h {
				drop = math.Max(drop, math.Abs(v-heights[i+w]))
			}
			slope := clamp01(drop / span)
			col.A = uint8(math.Round(float64(col.A) * (0.55 + 0.45*slope)))
			setPixel(buf, i, col)
		}
	}
}

// Mark paints a single cell of a w-wide buffer. Cells outside the buffer
// are ignored.
func Mark(buf []byte, w, x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= w {
		return
	}
	i := y*w + x
	if 4*i+3 >= len(buf) {
		return
	}
	setPixel(buf, i, col)
}

func setPixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

var reliefStops = []struct {
	t   float64
	col color.RGBA
}{
	{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
	{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
	{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
	{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
	{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
}

func reliefColor(t float64) color.RGBA {
	t = clamp01(t)
	for i := 1; i < len(reliefStops); i++ {
		curr := reliefStops[i]
		if t <= curr.t {
			prev := reliefStops[i-1]
			return lerpRGBA(prev.col, curr.col, (t-prev.t)/(curr.t-prev.t))
		}
	}
	return reliefStops[len(reliefStops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
