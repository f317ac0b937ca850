package terrain

import (
	"math"
	"sync"
)

// SurveyRun records the outcome of one seed in a survey.
type SurveyRun struct {
	Seed   int64
	Report Report
	Counts map[TileKind]int
	Err    error
}

// SurveyResult aggregates a batch of generations that share parameters but
// differ in seed.
type SurveyResult struct {
	Runs []SurveyRun

	// MeanFraction is the average share of the map covered by each kind.
	MeanFraction map[TileKind]float64
	// LandFraction is the average share of tiles above water.
	LandFraction   float64
	MeanMaxHeight  float64
	TruncatedWalks int
	Failures       int
}

// Survey generates one island per seed in [base.Seed, base.Seed+runs) on a
// bounded pool of workers and aggregates tile statistics. Results are in
// seed order regardless of scheduling.
func Survey(base Config, runs, workers int) SurveyResult {
	if runs <= 0 {
		runs = 1
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]SurveyRun, runs)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i := 0; i < runs; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			cfg := base
			cfg.Seed = base.Seed + int64(i)
			results[i] = surveyOne(cfg)
		}(i)
	}
	wg.Wait()

	return summarize(results, base.Width*base.Height)
}

func surveyOne(cfg Config) SurveyRun {
	run := SurveyRun{Seed: cfg.Seed}
	g, err := New(cfg)
	if err != nil {
		run.Err = err
		return run
	}
	is, rep, err := g.GenerateWithReport()
	if err != nil {
		run.Err = err
		return run
	}
	run.Report = rep
	run.Counts = is.Counts()
	return run
}

func summarize(runs []SurveyRun, cells int) SurveyResult {
	res := SurveyResult{Runs: runs, MeanFraction: make(map[TileKind]float64)}
	ok := 0
	for _, r := range runs {
		if r.Err != nil {
			res.Failures++
			continue
		}
		ok++
		land := 0
		for k, n := range r.Counts {
			res.MeanFraction[k] += float64(n) / float64(cells)
			if k >= Sand {
				land += n
			}
		}
		res.LandFraction += float64(land) / float64(cells)
		res.MeanMaxHeight += r.Report.MaxHeight
		res.TruncatedWalks += r.Report.TruncatedWalks
	}
	if ok == 0 {
		res.MeanMaxHeight = math.NaN()
		return res
	}
	for k := range res.MeanFraction {
		res.MeanFraction[k] /= float64(ok)
	}
	res.LandFraction /= float64(ok)
	res.MeanMaxHeight /= float64(ok)
	return res
}
