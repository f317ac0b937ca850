package terrain

import (
	"fmt"
	"image/color"
	"strings"
)

var tilePalette = [numTileKinds]color.RGBA{
	DeepWater: {R: 30, G: 144, B: 255, A: 255},  // dodgerblue
	Water:     {R: 0, G: 191, B: 255, A: 255},   // deepskyblue
	Sand:      {R: 245, G: 245, B: 220, A: 255}, // beige
	Grass:     {R: 34, G: 139, B: 34, A: 255},   // forestgreen
	Forest:    {R: 0, G: 128, B: 0, A: 255},     // green
	Hills:     {R: 128, G: 128, B: 128, A: 255}, // grey
	Mountain:  {R: 169, G: 169, B: 169, A: 255}, // darkgrey
	Snow:      {R: 240, G: 255, B: 255, A: 255}, // azure
}

var tileGlyphs = [numTileKinds]byte{
	DeepWater: '~',
	Water:     '-',
	Sand:      '.',
	Grass:     ',',
	Forest:    'T',
	Hills:     'n',
	Mountain:  '^',
	Snow:      '*',
}

// Palette returns the display colours indexed by tile kind.
func Palette() []color.RGBA {
	return append([]color.RGBA(nil), tilePalette[:]...)
}

// Palette exposes the colour palette used for rendering islands.
func (g *Generator) Palette() []color.RGBA { return Palette() }

// Color returns the display colour of k.
func (k TileKind) Color() color.RGBA {
	if !k.Valid() {
		return color.RGBA{A: 255}
	}
	return tilePalette[k]
}

// Glyph returns the single-character ASCII rendering of k.
func (k TileKind) Glyph() byte {
	if !k.Valid() {
		return '?'
	}
	return tileGlyphs[k]
}

// ASCII renders the island one glyph per tile, one line per row.
func (is *Island) ASCII() string {
	var b strings.Builder
	b.Grow((is.Width + 1) * is.Height)
	for y := 0; y < is.Height; y++ {
		for x := 0; x < is.Width; x++ {
			b.WriteByte(is.At(x, y).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// LandFraction is the share of tiles at or above sand.
func (is *Island) LandFraction() float64 {
	land := 0
	for k, n := range is.Counts() {
		if k >= Sand {
			land += n
		}
	}
	return float64(land) / float64(is.Width*is.Height)
}

// Summary describes the most recent island in a few short lines for the
// viewer panel.
func (g *Generator) Summary() []string {
	lines := []string{fmt.Sprintf("seed %d", g.cfg.Seed)}
	if g.island == nil {
		return lines
	}
	rep := g.report
	return append(lines,
		fmt.Sprintf("volcanoes %d  walks %d", rep.Volcanoes, rep.Walks),
		fmt.Sprintf("land %.0f%%  peak %.1f", 100*g.island.LandFraction(), rep.MaxHeight),
	)
}
