package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"isle/internal/app"
	"isle/internal/terrain"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 64, "islands to generate per configuration")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	compare := flag.Bool("compare", false, "survey every registered preset instead of the configured one")
	flag.Parse()

	var names []string
	if *compare {
		names = terrain.PresetNames()
	} else {
		names = []string{cfg.Preset}
	}

	fmt.Printf("Surveying %d seeds from %d (%dx%d, %d workers)\n", *runs, cfg.Seed, cfg.Width, cfg.Height, *workers)
	fmt.Printf("%-12s %6s %7s %8s  %s\n", "preset", "land", "peak", "trunc", tileHeader())
	for _, name := range names {
		cfg.Preset = name
		base, err := cfg.Terrain()
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		start := time.Now()
		res := terrain.Survey(base, *runs, *workers)
		if res.Failures > 0 {
			log.Printf("%d of %d runs failed: %v", res.Failures, *runs, firstError(res))
		}
		label := name
		if label == "" {
			label = "(custom)"
		}
		fmt.Printf("%-12s %5.1f%% %7.2f %8d  %s  (%s)\n",
			label, 100*res.LandFraction, res.MeanMaxHeight, res.TruncatedWalks, tileColumns(res), time.Since(start).Round(time.Millisecond))
	}
}

func tileHeader() string {
	var b strings.Builder
	for _, k := range terrain.TileKinds() {
		fmt.Fprintf(&b, "%7.7s", k)
	}
	return b.String()
}

func tileColumns(res terrain.SurveyResult) string {
	var b strings.Builder
	for _, k := range terrain.TileKinds() {
		fmt.Fprintf(&b, "%6.1f%%", 100*res.MeanFraction[k])
	}
	return b.String()
}

func firstError(res terrain.SurveyResult) error {
	for _, r := range res.Runs {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
