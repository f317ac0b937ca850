//go:build ebiten

package ui

import (
	"image/color"

	"isle/internal/core"
	"isle/internal/render"
	"isle/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type heightProvider interface {
	Heights() []float64
}

type volcanoProvider interface {
	Volcanoes() []terrain.Volcano
}

var volcanoColor = color.RGBA{R: 255, G: 120, B: 40, A: 230}

// Overlay draws optional debugging layers on top of the island: relief
// shading from the smoothed heights (key 1) and volcano seeds (key 2).
type Overlay struct {
	m     core.Map
	scale int

	showRelief   bool
	showVolcanos bool

	relief *render.GridPainter
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(m core.Map, scale int) *Overlay {
	size := m.Size()
	o := &Overlay{m: m, scale: max(scale, 1), relief: render.NewGridPainter(size.W, size.H)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRelief = !o.showRelief
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showVolcanos = !o.showVolcanos
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showRelief {
		if p, ok := o.m.(heightProvider); ok && o.relief.Relief(p.Heights()) {
			o.relief.Draw(screen, o.scale)
		}
	}
	if o.showVolcanos {
		if p, ok := o.m.(volcanoProvider); ok {
			s := float64(o.scale)
			for _, v := range p.Volcanoes() {
				o.drawPoint(screen, (float64(v.X)+0.5)*s, (float64(v.Y)+0.5)*s, s*1.5, volcanoColor)
			}
		}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
