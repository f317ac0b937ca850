package terrain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

var (
	// ErrInvalidDimensions reports a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid island dimensions")
	// ErrInvalidParams reports an inconsistent or unknown generation parameter.
	ErrInvalidParams = errors.New("invalid generation parameters")
)

// Params holds the tunables of the island pipeline. Ranges are half-open:
// [Min, Max). A range with Min == Max always yields Min.
type Params struct {
	Baseline float64 `json:"baseline"`

	VolcanoCountMin int     `json:"volcano_count_min"`
	VolcanoCountMax int     `json:"volcano_count_max"`
	SeedSpread      float64 `json:"seed_spread"`
	SeedHeight      float64 `json:"seed_height"`
	EruptionsMin    int     `json:"eruptions_min"`
	EruptionsMax    int     `json:"eruptions_max"`

	PowerMin        float64 `json:"power_min"`
	PowerMax        float64 `json:"power_max"`
	PowerDecay      float64 `json:"power_decay"`
	FrontierDeposit float64 `json:"frontier_deposit"`
	MaxWalkSteps    int     `json:"max_walk_steps"`

	Octave int `json:"octave"`

	NoiseKind      string  `json:"noise"`
	NoiseAmplitude float64 `json:"noise_amplitude"`
	NoiseScale     float64 `json:"noise_scale"`
}

// Config controls the island dimensions and generation parameters.
type Config struct {
	Width  int   `json:"w"`
	Height int   `json:"h"`
	Seed   int64 `json:"seed"`

	Params Params `json:"params"`
}

// DefaultParams returns the standard tunables.
func DefaultParams() Params {
	return Params{
		Baseline:        DefaultBaseline,
		VolcanoCountMin: 6,
		VolcanoCountMax: 8,
		SeedSpread:      1 / 3.5,
		SeedHeight:      100,
		EruptionsMin:    32,
		EruptionsMax:    64,
		PowerMin:        0.6,
		PowerMax:        4.0,
		PowerDecay:      0.1,
		FrontierDeposit: 0.2,
		MaxWalkSteps:    1000,
		Octave:          3,
		NoiseKind:       NoiseNone,
		NoiseAmplitude:  0,
		NoiseScale:      0.1,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  80,
		Height: 80,
		Seed:   1337,
		Params: DefaultParams(),
	}
}

// Validate checks dimensions and parameter consistency.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	p := c.Params
	switch {
	case p.VolcanoCountMin < 0 || p.VolcanoCountMax < p.VolcanoCountMin:
		return fmt.Errorf("%w: volcano count range [%d, %d)", ErrInvalidParams, p.VolcanoCountMin, p.VolcanoCountMax)
	case p.EruptionsMin < 0 || p.EruptionsMax < p.EruptionsMin:
		return fmt.Errorf("%w: eruptions range [%d, %d)", ErrInvalidParams, p.EruptionsMin, p.EruptionsMax)
	case p.PowerMin < 0 || p.PowerMax < p.PowerMin:
		return fmt.Errorf("%w: power range [%g, %g)", ErrInvalidParams, p.PowerMin, p.PowerMax)
	case p.PowerDecay <= 0:
		return fmt.Errorf("%w: power_decay must be positive, got %g", ErrInvalidParams, p.PowerDecay)
	case p.MaxWalkSteps <= 0:
		return fmt.Errorf("%w: max_walk_steps must be positive, got %d", ErrInvalidParams, p.MaxWalkSteps)
	case p.SeedSpread < 0:
		return fmt.Errorf("%w: seed_spread must not be negative, got %g", ErrInvalidParams, p.SeedSpread)
	case p.Octave < 0:
		return fmt.Errorf("%w: octave must not be negative, got %d", ErrInvalidParams, p.Octave)
	case p.NoiseAmplitude != 0 && p.NoiseScale <= 0:
		return fmt.Errorf("%w: noise_scale must be positive, got %g", ErrInvalidParams, p.NoiseScale)
	}
	if _, err := NewNoiseField(p.NoiseKind, c.Seed); err != nil {
		return err
	}
	return nil
}

var intKeys = map[string]func(*Config) *int{
	"w":                 func(c *Config) *int { return &c.Width },
	"h":                 func(c *Config) *int { return &c.Height },
	"volcano_count_min": func(c *Config) *int { return &c.Params.VolcanoCountMin },
	"volcano_count_max": func(c *Config) *int { return &c.Params.VolcanoCountMax },
	"eruptions_min":     func(c *Config) *int { return &c.Params.EruptionsMin },
	"eruptions_max":     func(c *Config) *int { return &c.Params.EruptionsMax },
	"max_walk_steps":    func(c *Config) *int { return &c.Params.MaxWalkSteps },
	"octave":            func(c *Config) *int { return &c.Params.Octave },
}

var floatKeys = map[string]func(*Config) *float64{
	"baseline":         func(c *Config) *float64 { return &c.Params.Baseline },
	"seed_spread":      func(c *Config) *float64 { return &c.Params.SeedSpread },
	"seed_height":      func(c *Config) *float64 { return &c.Params.SeedHeight },
	"power_min":        func(c *Config) *float64 { return &c.Params.PowerMin },
	"power_max":        func(c *Config) *float64 { return &c.Params.PowerMax },
	"power_decay":      func(c *Config) *float64 { return &c.Params.PowerDecay },
	"frontier_deposit": func(c *Config) *float64 { return &c.Params.FrontierDeposit },
	"noise_amplitude":  func(c *Config) *float64 { return &c.Params.NoiseAmplitude },
	"noise_scale":      func(c *Config) *float64 { return &c.Params.NoiseScale },
}

// Keys lists every key accepted by Set, sorted.
func Keys() []string {
	keys := []string{"seed", "noise"}
	for k := range intKeys {
		keys = append(keys, k)
	}
	for k := range floatKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set applies a single key=value override.
func (c *Config) Set(key, value string) error {
	if field, ok := intKeys[key]; ok {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidParams, key, value)
		}
		*field(c) = v
		return nil
	}
	if field, ok := floatKeys[key]; ok {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidParams, key, value)
		}
		*field(c) = v
		return nil
	}
	switch key {
	case "seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: seed=%q is not an integer", ErrInvalidParams, value)
		}
		c.Seed = v
		return nil
	case "noise":
		if _, err := NewNoiseField(value, c.Seed); err != nil {
			if s := suggest(value, noiseKinds); s != "" {
				return fmt.Errorf("%w (did you mean %q?)", err, s)
			}
			return err
		}
		c.Params.NoiseKind = value
		return nil
	}
	if s := suggest(key, Keys()); s != "" {
		return fmt.Errorf("%w: unknown parameter %q (did you mean %q?)", ErrInvalidParams, key, s)
	}
	return fmt.Errorf("%w: unknown parameter %q", ErrInvalidParams, key)
}

// Apply sets every override in kv. Keys are applied in sorted order so the
// first error reported is stable.
func (c *Config) Apply(kv map[string]string) error {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := c.Set(k, kv[k]); err != nil {
			return err
		}
	}
	return nil
}

// ApplyJSON reads a flat JSON object of overrides, e.g.
// {"octave": 4, "noise": "perlin"}, and applies it.
func (c *Config) ApplyJSON(r io.Reader) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode params: %w", err)
	}
	kv := make(map[string]string, len(raw))
	for k, v := range raw {
		kv[k] = fmt.Sprint(v)
	}
	return c.Apply(kv)
}

// FromMap populates the config from a string map (flag-style key/value pairs)
// on top of DefaultConfig.
func FromMap(kv map[string]string) (Config, error) {
	c := DefaultConfig()
	if kv == nil {
		return c, nil
	}
	if err := c.Apply(kv); err != nil {
		return c, err
	}
	return c, c.Validate()
}
