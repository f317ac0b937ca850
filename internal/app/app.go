//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log"
	"time"

	"isle/internal/core"
	"isle/internal/render"
	"isle/internal/terrain"
	"isle/internal/ui"
	"isle/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	playerColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	sheepColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// moveKeys follows the qwe/a d/zsc layout around the home row.
var moveKeys = map[ebiten.Key]terrain.Direction{
	ebiten.KeyW: terrain.North,
	ebiten.KeyE: terrain.NorthEast,
	ebiten.KeyD: terrain.East,
	ebiten.KeyC: terrain.SouthEast,
	ebiten.KeyS: terrain.South,
	ebiten.KeyZ: terrain.SouthWest,
	ebiten.KeyA: terrain.West,
	ebiten.KeyQ: terrain.NorthWest,
}

// Game adapts an island generator to the ebiten.Game interface.
type Game struct {
	gen       *terrain.Generator
	world     *world.State
	spawnedOn *terrain.Island
	painter   *render.GridPainter
	overlay   *ui.Overlay
	hud       *ui.HUD

	scale    int
	hudWidth int
	seed     int64
}

// New constructs a Game for the provided generator.
func New(gen *terrain.Generator, scale, hudWidth int, seed int64) *Game {
	size := gen.Size()
	g := &Game{
		gen:      gen,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(gen, scale),
		scale:    max(scale, 1),
		hudWidth: max(hudWidth, 0),
		seed:     seed,
	}
	g.Reset(seed)
	// The HUD sizes its layout from the summary of a generated island.
	g.hud = ui.NewHUD(gen, hudWidth)
	return g
}

// Reset regenerates the island with the provided seed and respawns.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gen.Reset(seed)
	g.spawn()
}

// spawn places the player and sheep on the current island. Islands
// without a beach are shown empty.
func (g *Game) spawn() {
	is := g.gen.Island()
	g.world, g.spawnedOn = nil, is
	if is == nil {
		return
	}
	st, err := world.New(is, core.NewRNG(g.seed))
	if err != nil {
		if !errors.Is(err, world.ErrNoSpawn) {
			log.Printf("spawn failed: %v", err)
		}
		return
	}
	g.world = st
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	w, _ := g.painter.Size()
	g.hud.Update(w * g.scale)

	// A HUD change regenerates the island underneath the world.
	if g.spawnedOn != g.gen.Island() {
		g.spawn()
	}
	if g.world != nil {
		for key, dir := range moveKeys {
			if inpututil.IsKeyJustPressed(key) {
				g.world.MovePlayer(dir)
			}
		}
	}
	return nil
}

// Draw renders the island, entities, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.painter.Palette(g.gen.Cells(), g.gen.Palette()) {
		return
	}
	if g.world != nil {
		buf, w := g.painter.Pixels(), g.painter.Width()
		for _, e := range g.world.Entities {
			render.Mark(buf, w, e.Pos.X, e.Pos.Y, sheepColor)
		}
		render.Mark(buf, w, g.world.Player.Pos.X, g.world.Player.Pos.Y, playerColor)
	}
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	w, _ := g.painter.Size()
	g.hud.Draw(screen, w*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + g.hudWidth, h * g.scale
}
