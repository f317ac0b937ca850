//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image per grid and re-uploads it each frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Pixels exposes the staging buffer so callers can mark cells before Draw.
func (gp *GridPainter) Pixels() []byte { return gp.buf }

// Width returns the grid width in cells.
func (gp *GridPainter) Width() int { return gp.w }

// Palette fills the staging buffer from palette-indexed cells.
func (gp *GridPainter) Palette(cells []uint8, palette []color.RGBA) bool {
	if len(cells) != gp.w*gp.h {
		return false
	}
	FillPalette(gp.buf, cells, palette)
	return true
}

// Relief fills the staging buffer with height shading.
func (gp *GridPainter) Relief(heights []float64) bool {
	if len(heights) != gp.w*gp.h {
		return false
	}
	FillRelief(gp.buf, heights, gp.w)
	return true
}

// Draw uploads the staging buffer and draws it scaled onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
