package terrain

import (
	"fmt"
	"sort"
)

// Preset adjusts a configuration in place. Presets never touch the
// dimensions or the seed.
type Preset func(p *Params)

var presets = map[string]Preset{}

// RegisterPreset adds a named preset.
func RegisterPreset(name string, p Preset) {
	if name == "" || p == nil {
		return
	}
	presets[name] = p
}

// PresetNames lists the registered presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset applies the named preset to c.
func ApplyPreset(name string, c *Config) error {
	p, ok := presets[name]
	if !ok {
		if s := suggest(name, PresetNames()); s != "" {
			return fmt.Errorf("%w: unknown preset %q (did you mean %q?)", ErrInvalidParams, name, s)
		}
		return fmt.Errorf("%w: unknown preset %q", ErrInvalidParams, name)
	}
	p(&c.Params)
	return nil
}

func init() {
	RegisterPreset("default", func(p *Params) { *p = DefaultParams() })

	// Single tight cluster of seeds: one round island.
	RegisterPreset("compact", func(p *Params) {
		*p = DefaultParams()
		p.VolcanoCountMin = 3
		p.VolcanoCountMax = 5
		p.SeedSpread = 0.25
	})

	RegisterPreset("archipelago", func(p *Params) {
		*p = DefaultParams()
		p.VolcanoCountMin = 10
		p.VolcanoCountMax = 16
		p.SeedSpread = 0.45
		p.EruptionsMin = 12
		p.EruptionsMax = 28
		p.PowerMax = 2.5
		p.NoiseKind = NoiseSimplex
		p.NoiseAmplitude = 0.4
		p.NoiseScale = 0.15
	})

	// Looser spread and a coarser blur, closer to the early prototypes.
	RegisterPreset("classic", func(p *Params) {
		*p = DefaultParams()
		p.SeedSpread = 0.25
		p.Octave = 4
		p.NoiseKind = NoisePerlin
		p.NoiseAmplitude = 0.25
		p.NoiseScale = 0.08
	})
}
