package terrain

import (
	"fmt"
	"strings"
)

// TileKind enumerates the biome categories, ordered by nominal elevation.
type TileKind uint8

const (
	DeepWater TileKind = iota
	Water
	Sand
	Grass
	Forest
	Hills
	Mountain
	Snow

	numTileKinds
)

var tileNames = [numTileKinds]string{
	DeepWater: "deep_water",
	Water:     "water",
	Sand:      "sand",
	Grass:     "grass",
	Forest:    "forest",
	Hills:     "hills",
	Mountain:  "mountain",
	Snow:      "snow",
}

// TileKinds lists every tile kind from lowest to highest.
func TileKinds() []TileKind {
	kinds := make([]TileKind, numTileKinds)
	for i := range kinds {
		kinds[i] = TileKind(i)
	}
	return kinds
}

// Valid reports whether k is one of the enumerated kinds.
func (k TileKind) Valid() bool { return k < numTileKinds }

func (k TileKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("TileKind(%d)", uint8(k))
	}
	return tileNames[k]
}

// ParseTileKind resolves a tile name. Matching ignores case and accepts
// spaces or dashes in place of underscores.
func ParseTileKind(name string) (TileKind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	if norm == "deepwater" {
		return DeepWater, nil
	}
	for i, n := range tileNames {
		if n == norm {
			return TileKind(i), nil
		}
	}
	if s := suggest(norm, tileNames[:]); s != "" {
		return 0, fmt.Errorf("unknown tile kind %q (did you mean %q?)", name, s)
	}
	return 0, fmt.Errorf("unknown tile kind %q", name)
}

// MarshalText encodes the kind by name, which also makes it usable as a
// JSON object key.
func (k TileKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid tile kind %d", uint8(k))
	}
	return []byte(tileNames[k]), nil
}

// UnmarshalText decodes a kind from its name.
func (k *TileKind) UnmarshalText(b []byte) error {
	parsed, err := ParseTileKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
