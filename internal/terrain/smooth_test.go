package terrain

import (
	"testing"

	"isle/internal/core"
)

func TestSmoothFlatMapUnchanged(t *testing.T) {
	for _, octave := range []int{0, 1, 3, 5, 64} {
		src := core.NewFilledGrid(37, 21, DefaultBaseline)
		out := Smooth(src, octave)
		for i, v := range out.Cells() {
			if v != DefaultBaseline {
				t.Fatalf("octave %d: cell %d = %v, want %v", octave, i, v, DefaultBaseline)
			}
		}
	}
}

func TestSmoothOctaveZeroIsIdentity(t *testing.T) {
	src := core.NewGrid[float64](6, 5)
	rng := core.NewRNG(4)
	for i := range src.Cells() {
		src.Cells()[i] = rng.FloatRange(-1, 20)
	}
	out := Smooth(src, 0)
	for i := range src.Cells() {
		if out.Cells()[i] != src.Cells()[i] {
			t.Fatalf("cell %d changed: %v -> %v", i, src.Cells()[i], out.Cells()[i])
		}
	}
}

func TestSmoothKeepsLatticePoints(t *testing.T) {
	src := core.NewGrid[float64](16, 16)
	rng := core.NewRNG(8)
	for i := range src.Cells() {
		src.Cells()[i] = rng.FloatRange(0, 10)
	}
	out := Smooth(src, 2)
	for y := 0; y < 16; y += 4 {
		for x := 0; x < 16; x += 4 {
			if out.At(x, y) != src.At(x, y) {
				t.Fatalf("lattice point (%d, %d) moved: %v -> %v", x, y, src.At(x, y), out.At(x, y))
			}
		}
	}
}

func TestSmoothWrapsAroundEdges(t *testing.T) {
	src := core.NewGrid[float64](8, 8)
	src.Set(0, 0, 8)
	out := Smooth(src, 2)
	// (6, 0) blends lattice columns 4 and 8 mod 8 = 0 halfway.
	if got := out.At(6, 0); got != 4 {
		t.Fatalf("wrapped blend at (6, 0) = %v, want 4", got)
	}
	if got := out.At(0, 6); got != 4 {
		t.Fatalf("wrapped blend at (0, 6) = %v, want 4", got)
	}
	if got := out.At(2, 2); got != 2 {
		t.Fatalf("bilinear blend at (2, 2) = %v, want 2", got)
	}
}

func TestEffectiveOctave(t *testing.T) {
	cases := []struct {
		octave, w, h, want int
	}{
		{3, 80, 80, 3},
		{64, 80, 80, 6},
		{5, 10, 40, 3},
		{-1, 10, 10, 0},
		{2, 1, 1, 0},
		{4, 16, 16, 4},
	}
	for _, tc := range cases {
		if got := EffectiveOctave(tc.octave, tc.w, tc.h); got != tc.want {
			t.Errorf("EffectiveOctave(%d, %d, %d) = %d, want %d", tc.octave, tc.w, tc.h, got, tc.want)
		}
	}
}

func TestSmoothSameDimensions(t *testing.T) {
	src := core.NewGrid[float64](13, 9)
	out := Smooth(src, 3)
	if out.W != 13 || out.H != 9 {
		t.Fatalf("smoothing changed size to %dx%d", out.W, out.H)
	}
}
