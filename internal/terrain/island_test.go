package terrain

import (
	"encoding/json"
	"errors"
	"testing"

	"isle/internal/core"
)

func testIsland() *Island {
	g := core.NewFilledGrid(3, 2, DeepWater)
	g.Set(1, 0, Sand)
	g.Set(2, 0, Grass)
	g.Set(0, 1, Sand)
	g.Set(2, 1, Snow)
	return newIsland(g)
}

func TestIslandFindAndCounts(t *testing.T) {
	is := testIsland()
	sand := is.Find(Sand)
	want := []core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}
	if len(sand) != len(want) || sand[0] != want[0] || sand[1] != want[1] {
		t.Fatalf("Find(Sand) = %v, want %v", sand, want)
	}
	if got := is.Find(Forest); len(got) != 0 {
		t.Fatalf("Find(Forest) = %v", got)
	}
	counts := is.Counts()
	if counts[DeepWater] != 2 || counts[Sand] != 2 || counts[Grass] != 1 || counts[Snow] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if _, ok := counts[Forest]; ok {
		t.Fatal("absent kinds should be omitted")
	}
}

func TestIslandRowsAreCopies(t *testing.T) {
	is := testIsland()
	rows := is.Rows()
	rows[0][0] = Snow
	if is.At(0, 0) != DeepWater {
		t.Fatal("mutating Rows() leaked into the island")
	}
	row := is.Row(1)
	row[1] = Snow
	if is.At(1, 1) != DeepWater {
		t.Fatal("mutating Row() leaked into the island")
	}
	cells := is.Cells()
	cells[0] = uint8(Snow)
	if is.At(0, 0) != DeepWater {
		t.Fatal("mutating Cells() leaked into the island")
	}
}

func TestIslandJSON(t *testing.T) {
	data, err := json.Marshal(testIsland())
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Width  int      `json:"width"`
		Height int      `json:"height"`
		Legend []string `json:"legend"`
		Tiles  [][]int  `json:"tiles"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Width != 3 || decoded.Height != 2 || len(decoded.Tiles) != 2 {
		t.Fatalf("unexpected shape: %s", data)
	}
	if decoded.Legend[decoded.Tiles[1][2]] != "snow" {
		t.Fatalf("legend does not name tile (2, 1): %s", data)
	}
}

func TestIslandASCII(t *testing.T) {
	want := "~.,\n.~*\n"
	if got := testIsland().ASCII(); got != want {
		t.Fatalf("ASCII() = %q, want %q", got, want)
	}
}

func TestIslandFromRows(t *testing.T) {
	is, err := IslandFromRows(testIsland().Rows())
	if err != nil {
		t.Fatal(err)
	}
	if is.ASCII() != testIsland().ASCII() {
		t.Fatalf("round trip through rows changed the island:\n%s", is.ASCII())
	}
	if _, err := IslandFromRows(nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("empty rows err = %v", err)
	}
	if _, err := IslandFromRows([][]TileKind{{Sand, Sand}, {Sand}}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("ragged rows err = %v", err)
	}
	if _, err := IslandFromRows([][]TileKind{{Sand, TileKind(42)}}); err == nil {
		t.Fatal("invalid kind should be rejected")
	}
}

func TestLandFraction(t *testing.T) {
	// Sand, grass, sand and snow out of six tiles.
	if got := testIsland().LandFraction(); got != 4.0/6.0 {
		t.Fatalf("LandFraction() = %v", got)
	}
}

func TestSummary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 20, 20, 8
	g, _ := New(cfg)
	if lines := g.Summary(); len(lines) != 1 || lines[0] != "seed 8" {
		t.Fatalf("summary before generation = %q", lines)
	}
	g.Reset(0)
	if lines := g.Summary(); len(lines) != 3 {
		t.Fatalf("summary after generation = %q", lines)
	}
}
