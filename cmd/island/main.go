package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"slices"

	"isle/internal/app"
	"isle/internal/core"
	"isle/internal/render"
	"isle/internal/terrain"
	"isle/internal/world"
)

var formats = []string{"ascii", "json", "params", "world", "png"}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	format := flag.String("format", "ascii", "output format: ascii, json, params, world or png")
	out := flag.String("o", "", "output file (default stdout)")
	scale := flag.Int("scale", 4, "pixels per tile for png output")
	flag.Parse()

	tcfg, err := cfg.Terrain()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := run(tcfg, *format, *out, *scale); err != nil {
		log.Fatal(err)
	}
}

// run writes the island in the given format to path, or stdout when path
// is empty. Close errors on the output file are reported.
func run(cfg terrain.Config, format, path string, scale int) (err error) {
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown format %q", format)
	}
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}
	return emit(w, cfg, format, scale)
}

func emit(w io.Writer, cfg terrain.Config, format string, scale int) error {
	if format == "params" {
		return writeJSON(w, cfg.Parameters())
	}

	gen, err := terrain.New(cfg)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	is, rep, err := gen.GenerateWithReport()
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	switch format {
	case "ascii":
		if _, err := io.WriteString(w, is.ASCII()); err != nil {
			return fmt.Errorf("write ascii: %w", err)
		}
		log.Printf("seed %d: %d volcanoes, %d walks, %d steps, land %.1f%%",
			cfg.Seed, rep.Volcanoes, rep.Walks, rep.Steps, 100*is.LandFraction())
		return nil
	case "json":
		return writeJSON(w, struct {
			Seed   int64           `json:"seed"`
			Report terrain.Report  `json:"report"`
			Island *terrain.Island `json:"island"`
		}{cfg.Seed, rep, is})
	case "world":
		st, err := world.New(is, core.NewRNG(cfg.Seed))
		if err != nil {
			return fmt.Errorf("spawn: %w", err)
		}
		return writeJSON(w, st)
	case "png":
		img := render.Image(is.Cells(), is.Width, is.Height, terrain.Palette(), scale)
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
