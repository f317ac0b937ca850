//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"isle/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type summaryProvider interface {
	Summary() []string
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the parameter panel to the right of the island view.
type HUD struct {
	m          core.Map
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	summary     []string
	offsetX     int
	title       string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided map and panel width.
func NewHUD(m core.Map, width int) *HUD {
	h := &HUD{m: m, width: max(width, 0), title: "Controls"}
	if m != nil && m.Name() != "" {
		h.title = fmt.Sprintf("%s%s controls", strings.ToUpper(m.Name()[:1]), m.Name()[1:])
	}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := m.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls(), h.width, h.controlsTop())
	}
	h.intSetter, _ = m.(core.IntParameterSetter)
	h.floatSetter, _ = m.(core.FloatParameterSetter)
	return h
}

// Summary lines sit between the title and the controls.
func (h *HUD) controlsTop() int {
	lines := 0
	if p, ok := h.m.(summaryProvider); ok {
		lines = len(p.Summary())
	}
	return controlsTopFor(lines)
}

// Update refreshes values from the map and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	if p, ok := h.m.(core.ParameterProvider); ok {
		refreshControls(h.controls, p.Parameters())
	}
	if p, ok := h.m.(summaryProvider); ok {
		h.summary = p.Summary()
		moveControls(h.controls, controlsTopFor(len(h.summary)))
	}
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.m.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)
	h.drawPanel()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		s := &h.controls[i]
		switch {
		case pointInRect(px, my, s.minusRect):
			s.apply(-1, h.intSetter, h.floatSetter)
			return
		case pointInRect(px, my, s.plusRect):
			s.apply(1, h.intSetter, h.floatSetter)
			return
		}
	}
}

func (h *HUD) drawPanel() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.summary {
		y += summarySpacing
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y+lineHeight, dimColor)
		return
	}
	for i := range h.controls {
		s := &h.controls[i]
		baseline := s.top + labelBaseline
		text.Draw(h.panel, s.control.Label, face, panelPadding, baseline, textColor)

		valueColor := textColor
		if !s.hasValue {
			valueColor = dimColor
		}
		valueWidth := text.BoundString(face, s.value).Dx()
		text.Draw(h.panel, s.value, face, s.minusRect.Min.X-buttonGap-valueWidth, baseline, valueColor)

		_, canDown := s.next(-1)
		_, canUp := s.next(1)
		h.drawButton(s.minusRect, "-", canDown)
		h.drawButton(s.plusRect, "+", canUp)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
