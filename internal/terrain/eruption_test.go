package terrain

import (
	"testing"

	"isle/internal/core"
)

// boundedSurface wraps a heightmap and reports any access outside the grid
// instead of letting it reach the backing slice.
type boundedSurface struct {
	t    *testing.T
	grid *core.Grid[float64]

	touched map[core.Point]int
}

func newBoundedSurface(t *testing.T, w, h int) *boundedSurface {
	return &boundedSurface{t: t, grid: core.NewFilledGrid(w, h, DefaultBaseline), touched: map[core.Point]int{}}
}

func (b *boundedSurface) Size() core.Size { return b.grid.Size() }

func (b *boundedSurface) At(x, y int) float64 {
	if !b.grid.InBounds(x, y) {
		b.t.Fatalf("read outside %dx%d grid at (%d, %d)", b.grid.W, b.grid.H, x, y)
	}
	return b.grid.At(x, y)
}

func (b *boundedSurface) Set(x, y int, v float64) {
	if !b.grid.InBounds(x, y) {
		b.t.Fatalf("write outside %dx%d grid at (%d, %d)", b.grid.W, b.grid.H, x, y)
	}
	b.touched[core.Point{X: x, Y: y}]++
	b.grid.Set(x, y, v)
}

func TestFrontierLiesAhead(t *testing.T) {
	sz := core.Size{W: 11, H: 11}
	for d := North; d <= NorthWest; d++ {
		dx, dy := d.Delta()
		for _, c := range Frontier(sz, 5, 5, d) {
			ox, oy := c.X-5, c.Y-5
			if ox*dx+oy*dy <= 0 {
				t.Errorf("%v frontier cell offset (%d, %d) is not ahead", d, ox, oy)
			}
			if ox < -1 || ox > 1 || oy < -1 || oy > 1 {
				t.Errorf("%v frontier cell offset (%d, %d) is not a neighbour", d, ox, oy)
			}
		}
	}

	got := Frontier(sz, 5, 5, North)
	want := [3]core.Point{{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4}}
	if got != want {
		t.Fatalf("north frontier = %v, want %v", got, want)
	}
}

func TestFrontierClampsAtEdges(t *testing.T) {
	sz := core.Size{W: 4, H: 3}
	for _, c := range Frontier(sz, 0, 0, NorthWest) {
		if c.X != 0 || c.Y != 0 {
			t.Fatalf("corner frontier escaped to %v", c)
		}
	}
	for _, c := range Frontier(sz, 3, 2, SouthEast) {
		if c.X != 3 || c.Y != 2 {
			t.Fatalf("corner frontier escaped to %v", c)
		}
	}
}

func TestEruptionsStayInBounds(t *testing.T) {
	p := DefaultParams()
	p.SeedSpread = 2 // offsets routinely land outside the grid before clamping
	for _, sz := range []core.Size{{W: 1, H: 1}, {W: 5, H: 5}, {W: 3, H: 40}, {W: 64, H: 7}} {
		for seed := int64(1); seed <= 3; seed++ {
			s := newBoundedSurface(t, sz.W, sz.H)
			stats := SimulateEruptions(s, core.NewRNG(seed), p)
			for _, v := range stats.Volcanoes {
				if !s.grid.InBounds(v.X, v.Y) {
					t.Fatalf("volcano seed (%d, %d) outside %dx%d", v.X, v.Y, sz.W, sz.H)
				}
			}
			if stats.TruncatedWalks != 0 {
				t.Fatalf("default power range should never hit the step cap, got %d truncated", stats.TruncatedWalks)
			}
		}
	}
}

func TestPlaceVolcanoesRanges(t *testing.T) {
	p := DefaultParams()
	sz := core.Size{W: 80, H: 80}
	rng := core.NewRNG(11)
	for i := 0; i < 50; i++ {
		vs := PlaceVolcanoes(sz, rng, p)
		if len(vs) < p.VolcanoCountMin || len(vs) >= p.VolcanoCountMax {
			t.Fatalf("volcano count %d outside [%d, %d)", len(vs), p.VolcanoCountMin, p.VolcanoCountMax)
		}
		for _, v := range vs {
			if v.Eruptions < p.EruptionsMin || v.Eruptions >= p.EruptionsMax {
				t.Fatalf("eruptions %d outside [%d, %d)", v.Eruptions, p.EruptionsMin, p.EruptionsMax)
			}
		}
	}

	p.SeedSpread = 0
	p.VolcanoCountMin, p.VolcanoCountMax = 2, 2
	for _, v := range PlaceVolcanoes(sz, rng, p) {
		if v.X != 40 || v.Y != 40 {
			t.Fatalf("zero spread should place seeds at the centre, got (%d, %d)", v.X, v.Y)
		}
	}
}

func TestEruptSetsSeedHeight(t *testing.T) {
	p := DefaultParams()
	s := newBoundedSurface(t, 9, 9)
	Erupt(s, core.NewRNG(1), Volcano{X: 4, Y: 4, Eruptions: 0}, p, nil)
	if got := s.grid.At(4, 4); got != p.SeedHeight {
		t.Fatalf("seed height = %g, want %g", got, p.SeedHeight)
	}
}

func TestWalkKeepsDirection(t *testing.T) {
	p := DefaultParams()
	s := newBoundedSurface(t, 64, 40)
	steps, truncated := walk(s, core.NewRNG(3), 10, 20, East, 1.0, p)
	if truncated {
		t.Fatal("short walk should not be truncated")
	}
	if steps < 10 || steps > 11 {
		t.Fatalf("power 1.0 with decay 0.1 should take 10 or 11 steps, got %d", steps)
	}
	cols := map[int]bool{}
	for c := range s.touched {
		if c.X < 10 {
			t.Fatalf("eastward walk touched column %d behind its start", c.X)
		}
		if c.X > 10+steps {
			t.Fatalf("eastward walk touched column %d beyond %d steps", c.X, steps)
		}
		cols[c.X] = true
	}
	for x := 10; x <= 10+steps; x++ {
		if !cols[x] {
			t.Fatalf("eastward walk skipped column %d", x)
		}
	}
}

func TestWalkStepCap(t *testing.T) {
	p := DefaultParams()
	p.PowerDecay = 1e-12
	p.MaxWalkSteps = 50
	s := newBoundedSurface(t, 8, 8)
	steps, truncated := walk(s, core.NewRNG(9), 4, 4, South, 1, p)
	if !truncated || steps != 50 {
		t.Fatalf("expected truncation at 50 steps, got steps=%d truncated=%v", steps, truncated)
	}
}

func TestDirectionStrings(t *testing.T) {
	if North.String() != "N" || NorthWest.String() != "NW" || Direction(9).String() != "?" {
		t.Fatal("unexpected direction names")
	}
}

func TestParseDirection(t *testing.T) {
	for d := North; d <= NorthWest; d++ {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Fatalf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if d, err := ParseDirection(" se "); err != nil || d != SouthEast {
		t.Fatalf("lower-case input: %v, %v", d, err)
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Fatal("expected an error for an unknown direction")
	}
}
