package terrain

import (
	"math"
	"testing"

	"isle/internal/core"
)

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		h    float64
		want TileKind
	}{
		{-1.0, DeepWater},
		{-0.3, DeepWater},
		{-0.2999, Water},
		{0, Water},
		{0.1, Sand},
		{0.3, Sand},
		{0.31, Grass},
		{2, Grass},
		{3.5, Forest},
		{5, Forest},
		{7, Hills},
		{10, Hills},
		{12, Mountain},
		{15, Mountain},
		{15.0001, Snow},
		{1e9, Snow},
		{math.Inf(1), Snow},
		{math.Inf(-1), DeepWater},
	}
	for _, tc := range cases {
		if got := Classify(tc.h); got != tc.want {
			t.Errorf("Classify(%g) = %v, want %v", tc.h, got, tc.want)
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	if got := Classify(math.NaN()); !got.Valid() {
		t.Fatalf("NaN classified to invalid kind %d", got)
	}
	bands := Bands()
	if !math.IsInf(bands[len(bands)-1].Upper, 1) {
		t.Fatal("last band must be open-ended")
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Upper <= bands[i-1].Upper {
			t.Fatalf("band %d does not increase: %g <= %g", i, bands[i].Upper, bands[i-1].Upper)
		}
		if bands[i].Kind <= bands[i-1].Kind {
			t.Fatalf("band %d kind %v not above %v", i, bands[i].Kind, bands[i-1].Kind)
		}
	}
	if len(bands) != int(numTileKinds) {
		t.Fatalf("expected one band per tile kind, got %d", len(bands))
	}
}

func TestBandsReturnsCopy(t *testing.T) {
	b := Bands()
	b[0].Kind = Snow
	if Classify(-5) != DeepWater {
		t.Fatal("mutating Bands() result changed classification")
	}
}

func TestClassifyGrid(t *testing.T) {
	hm := core.NewFilledGrid(3, 2, -0.3)
	hm.Set(1, 0, 0.3)
	hm.Set(2, 1, 20)
	tiles := ClassifyGrid(hm)
	if tiles.W != 3 || tiles.H != 2 {
		t.Fatalf("unexpected size %dx%d", tiles.W, tiles.H)
	}
	if tiles.At(0, 0) != DeepWater || tiles.At(1, 0) != Sand || tiles.At(2, 1) != Snow {
		t.Fatalf("unexpected tiles %v", tiles.Cells())
	}
}
