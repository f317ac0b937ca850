package terrain

import (
	"log"
	"math"
	"math/rand/v2"

	"isle/internal/core"
)

// Report captures telemetry from one generation run. It is not part of the
// island.
type Report struct {
	Volcanoes      int     `json:"volcanoes"`
	Walks          int     `json:"walks"`
	Steps          int     `json:"steps"`
	TruncatedWalks int     `json:"truncated_walks"`
	Octave         int     `json:"octave"`
	RawMax         float64 `json:"raw_max"`
	MinHeight      float64 `json:"min_height"`
	MaxHeight      float64 `json:"max_height"`
}

// Generator builds islands from a configuration and a random stream. It is
// not safe for concurrent use; successive calls continue the same stream.
type Generator struct {
	cfg Config
	rng *core.RNG

	island    *Island
	heights   *core.Grid[float64]
	volcanoes []Volcano
	report    Report
}

// New returns a Generator seeded from cfg.Seed.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, rng: core.NewRNG(cfg.Seed)}, nil
}

// NewWithSource returns a Generator drawing from src instead of cfg.Seed.
// cfg.Seed still seeds the detail noise.
func NewWithSource(cfg Config, src rand.Source) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, rng: core.NewRNGFromSource(src)}, nil
}

// GenerateIsland builds a width x height island with the default parameters.
func GenerateIsland(width, height int, seed int64) (*Island, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// HeightField runs the pipeline up to classification and returns the
// smoothed heightmap.
func (g *Generator) HeightField() (*core.Grid[float64], Report, error) {
	heights, rep, _, err := g.heightField()
	return heights, rep, err
}

func (g *Generator) heightField() (*core.Grid[float64], Report, []Volcano, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, Report{}, nil, err
	}
	p := g.cfg.Params
	raw, err := NewHeightmap(g.cfg.Width, g.cfg.Height, p.Baseline)
	if err != nil {
		return nil, Report{}, nil, err
	}
	stats := SimulateEruptions(raw, g.rng, p)

	octave := EffectiveOctave(p.Octave, raw.W, raw.H)
	heights := Smooth(raw, octave)

	field, err := NewNoiseField(p.NoiseKind, g.cfg.Seed)
	if err != nil {
		return nil, Report{}, nil, err
	}
	ApplyNoise(heights, field, p.NoiseAmplitude, p.NoiseScale)

	rep := Report{
		Volcanoes:      len(stats.Volcanoes),
		Walks:          stats.Walks,
		Steps:          stats.Steps,
		TruncatedWalks: stats.TruncatedWalks,
		Octave:         octave,
		RawMax:         math.Inf(-1),
		MinHeight:      math.Inf(1),
		MaxHeight:      math.Inf(-1),
	}
	for _, h := range raw.Cells() {
		rep.RawMax = math.Max(rep.RawMax, h)
	}
	for _, h := range heights.Cells() {
		rep.MinHeight = math.Min(rep.MinHeight, h)
		rep.MaxHeight = math.Max(rep.MaxHeight, h)
	}
	return heights, rep, stats.Volcanoes, nil
}

// Generate runs the full pipeline and returns a new island.
func (g *Generator) Generate() (*Island, error) {
	is, _, err := g.GenerateWithReport()
	return is, err
}

// GenerateWithReport runs the full pipeline and also returns its telemetry.
func (g *Generator) GenerateWithReport() (*Island, Report, error) {
	heights, rep, volcanoes, err := g.heightField()
	if err != nil {
		return nil, Report{}, err
	}
	is := newIsland(ClassifyGrid(heights))
	g.island, g.heights, g.volcanoes, g.report = is, heights, volcanoes, rep
	return is, rep, nil
}

// Island returns the most recently generated island, or nil.
func (g *Generator) Island() *Island { return g.island }

// Heights returns a copy of the smoothed heights behind the most recent
// island.
func (g *Generator) Heights() []float64 {
	if g.heights == nil {
		return nil
	}
	return g.heights.Clone().Cells()
}

// Volcanoes returns the seeds behind the most recent island.
func (g *Generator) Volcanoes() []Volcano {
	return append([]Volcano(nil), g.volcanoes...)
}

// LastReport returns the telemetry of the most recent run.
func (g *Generator) LastReport() Report { return g.report }

// Name returns the map identifier.
func (g *Generator) Name() string { return "island" }

// Size reports the grid dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Cells exposes the tiles of the most recent island as palette indices.
func (g *Generator) Cells() []uint8 {
	if g.island == nil {
		return make([]uint8, g.cfg.Width*g.cfg.Height)
	}
	return g.island.Cells()
}

// Reset reseeds the random stream and regenerates. A zero seed keeps the
// configured one.
func (g *Generator) Reset(seed int64) {
	if seed != 0 {
		g.cfg.Seed = seed
	}
	g.rng = core.NewRNG(g.cfg.Seed)
	if _, _, err := g.GenerateWithReport(); err != nil {
		log.Printf("island reset failed: %v", err)
	}
}
