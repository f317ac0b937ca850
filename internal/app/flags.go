package app

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"isle/internal/terrain"
)

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map. Later repeats of a key win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Config represents the command-line parameters shared by the island tools.
type Config struct {
	Width      int
	Height     int
	Seed       int64
	Preset     string
	ParamsFile string
	Overrides  KVList

	Scale    int
	TPS      int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := terrain.DefaultConfig()
	return &Config{Width: d.Width, Height: d.Height, Seed: d.Seed, Scale: 8, TPS: 30, HUDWidth: 260}
}

// Bind attaches the generation flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "island width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "island height in tiles")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed")
	fs.StringVar(&c.Preset, "preset", c.Preset, "named parameter preset ("+strings.Join(terrain.PresetNames(), ", ")+")")
	fs.StringVar(&c.ParamsFile, "config", c.ParamsFile, "JSON file of parameter overrides")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// BindViewer attaches the window flags to the provided FlagSet.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
}

// Terrain resolves the flags into a generator configuration. Layers apply
// in order: defaults, preset, params file, -set overrides, then -w/-h/-seed.
func (c *Config) Terrain() (terrain.Config, error) {
	cfg := terrain.DefaultConfig()
	if c.Preset != "" {
		if err := terrain.ApplyPreset(c.Preset, &cfg); err != nil {
			return cfg, err
		}
	}
	if c.ParamsFile != "" {
		f, err := os.Open(c.ParamsFile)
		if err != nil {
			return cfg, fmt.Errorf("open params file: %w", err)
		}
		defer f.Close()
		if err := cfg.ApplyJSON(f); err != nil {
			return cfg, fmt.Errorf("%s: %w", c.ParamsFile, err)
		}
	}
	if err := cfg.Apply(c.Overrides.Map()); err != nil {
		return cfg, err
	}
	cfg.Width, cfg.Height, cfg.Seed = c.Width, c.Height, c.Seed
	return cfg, cfg.Validate()
}
