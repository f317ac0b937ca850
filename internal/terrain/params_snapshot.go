package terrain

import (
	"strconv"

	"isle/internal/core"
)

// Parameters describes the current configuration for display.
func (g *Generator) Parameters() core.ParameterSnapshot {
	return g.cfg.Parameters()
}

// Parameters describes the configuration for display.
func (c Config) Parameters() core.ParameterSnapshot {
	p := c.Params
	groups := []core.ParameterGroup{
		{
			Name: "Island",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
				floatParam("baseline", "Ocean floor", p.Baseline),
			},
		},
		{
			Name: "Volcanoes",
			Params: []core.Parameter{
				intParam("volcano_count_min", "Volcano count min", p.VolcanoCountMin),
				intParam("volcano_count_max", "Volcano count max", p.VolcanoCountMax),
				floatParam("seed_spread", "Seed spread", p.SeedSpread),
				floatParam("seed_height", "Seed height", p.SeedHeight),
				intParam("eruptions_min", "Eruptions min", p.EruptionsMin),
				intParam("eruptions_max", "Eruptions max", p.EruptionsMax),
			},
		},
		{
			Name: "Lava",
			Params: []core.Parameter{
				floatParam("power_min", "Power min", p.PowerMin),
				floatParam("power_max", "Power max", p.PowerMax),
				floatParam("power_decay", "Power decay", p.PowerDecay),
				floatParam("frontier_deposit", "Frontier deposit", p.FrontierDeposit),
				intParam("max_walk_steps", "Max walk steps", p.MaxWalkSteps),
			},
		},
		{
			Name: "Smoothing",
			Params: []core.Parameter{
				intParam("octave", "Octave", p.Octave),
				stringParam("noise", "Detail noise", p.NoiseKind),
				floatParam("noise_amplitude", "Noise amplitude", p.NoiseAmplitude),
				floatParam("noise_scale", "Noise scale", p.NoiseScale),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the viewer HUD can adjust.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "volcano_count_min", Label: "Volcanoes min", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 32, HasMax: true},
		{Key: "volcano_count_max", Label: "Volcanoes max", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 32, HasMax: true},
		{Key: "seed_spread", Label: "Seed spread", Type: core.ParamTypeFloat, Step: 0.025, Min: 0, HasMin: true, Max: 0.5, HasMax: true},
		{Key: "eruptions_max", Label: "Eruptions max", Type: core.ParamTypeInt, Step: 8, Min: 0, HasMin: true, Max: 256, HasMax: true},
		{Key: "power_max", Label: "Power max", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, HasMin: true, Max: 10, HasMax: true},
		{Key: "octave", Label: "Octave", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 6, HasMax: true},
		{Key: "noise_amplitude", Label: "Noise amplitude", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true, Max: 3, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter and regenerates with the
// current seed. Values that would make the configuration invalid are
// rejected.
func (g *Generator) SetIntParameter(key string, value int) bool {
	if _, ok := intKeys[key]; !ok {
		return false
	}
	return g.trySet(key, strconv.Itoa(value))
}

// SetFloatParameter updates a floating-point parameter and regenerates with
// the current seed.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	if _, ok := floatKeys[key]; !ok {
		return false
	}
	return g.trySet(key, strconv.FormatFloat(value, 'f', -1, 64))
}

func (g *Generator) trySet(key, value string) bool {
	next := g.cfg
	if err := next.Set(key, value); err != nil {
		return false
	}
	if err := next.Validate(); err != nil {
		return false
	}
	g.cfg = next
	g.Reset(0)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
