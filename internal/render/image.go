package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Image renders a w x h tile buffer to an RGBA image, each tile drawn as a
// scale x scale block.
func Image(cells []uint8, w, h int, palette []color.RGBA, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	FillPalette(src.Pix, cells[:min(len(cells), w*h)], palette)
	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			block := image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale)
			draw.Draw(dst, block, image.NewUniform(src.RGBAAt(x, y)), image.Point{}, draw.Src)
		}
	}
	return dst
}
