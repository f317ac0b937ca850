//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"isle/internal/app"
	"isle/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()

	tcfg, err := cfg.Terrain()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gen, err := terrain.New(tcfg)
	if err != nil {
		log.Fatalf("generator: %v", err)
	}

	game := app.New(gen, cfg.Scale, cfg.HUDWidth, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("isle")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
