package terrain

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestBuiltinPresetsValidate(t *testing.T) {
	names := PresetNames()
	for _, want := range []string{"archipelago", "classic", "compact", "default"} {
		if !slices.Contains(names, want) {
			t.Fatalf("preset %q not registered, have %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("preset names not sorted: %v", names)
	}
	for _, name := range names {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height, cfg.Seed = 33, 21, 99
		if err := ApplyPreset(name, &cfg); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cfg.Width != 33 || cfg.Height != 21 || cfg.Seed != 99 {
			t.Fatalf("%s: preset changed dimensions or seed", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s: invalid config: %v", name, err)
		}
	}
}

func TestPresetResetsEarlierOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Octave = 6
	if err := ApplyPreset("default", &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Params != DefaultParams() {
		t.Fatalf("default preset should restore defaults, got %+v", cfg.Params)
	}
}

func TestUnknownPresetSuggests(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyPreset("archipelgo", &cfg)
	if !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), `"archipelago"`) {
		t.Fatalf("expected a suggestion, got %v", err)
	}
}

func TestRegisterPresetIgnoresEmpty(t *testing.T) {
	before := len(PresetNames())
	RegisterPreset("", func(*Params) {})
	RegisterPreset("nil-preset", nil)
	if len(PresetNames()) != before {
		t.Fatal("empty registrations should be ignored")
	}
}
