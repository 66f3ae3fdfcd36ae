package terrain

import (
	"errors"
	"math"
	"testing"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	cases := []struct {
		size     float32
		segments int
	}{
		{0, 10},
		{-1, 10},
		{10, 0},
		{10, -3},
		{float32(math.NaN()), 10},
		{float32(math.Inf(1)), 10},
	}
	for _, c := range cases {
		g, err := New(c.size, c.segments)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("New(%v, %d) error = %v, want ErrInvalidArgument", c.size, c.segments, err)
		}
		if g != nil {
			t.Fatalf("New(%v, %d) returned a grid alongside an error", c.size, c.segments)
		}
	}
}

func TestNewLayout(t *testing.T) {
	g, err := New(20, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Count(); got != 10201 {
		t.Fatalf("count = %d, want 10201", got)
	}
	if got := g.Subdivision(); math.Abs(float64(got)-0.2) > 1e-6 {
		t.Fatalf("subdivision = %f, want 0.2", got)
	}
	if len(g.Elevations()) != g.Count() || len(g.Intensities()) != g.Count() {
		t.Fatal("state arrays must have exactly count samples")
	}

	first := g.BasePosition(0)
	if first.X() != -10 || first.Y() != 0 || first.Z() != -10 {
		t.Fatalf("first sample at %v, want (-10, 0, -10)", first)
	}
	last := g.BasePosition(g.Count() - 1)
	if last.X() != 10 || last.Z() != 10 {
		t.Fatalf("last sample at %v, want (10, 0, 10)", last)
	}
	// Row-major: index 1 steps along x, index segments+1 steps along z.
	if dx := g.BasePosition(1).X() - first.X(); math.Abs(float64(dx)-0.2) > 1e-5 {
		t.Fatalf("x step = %f, want 0.2", dx)
	}
	if dz := g.BasePosition(101).Z() - first.Z(); math.Abs(float64(dz)-0.2) > 1e-5 {
		t.Fatalf("z step = %f, want 0.2", dz)
	}
	for i := 0; i < g.Count(); i++ {
		if g.Elevation(i) != 0 || g.TrackIntensity(i) != 0 {
			t.Fatalf("sample %d not zero-initialised", i)
		}
	}
}

func TestWorldToIndex(t *testing.T) {
	g, err := New(20, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.WorldToIndex(0, 0); got != 50*101+50 {
		t.Fatalf("WorldToIndex(0,0) = %d, want %d", got, 50*101+50)
	}
	if got := g.WorldToIndex(-10, -10); got != 0 {
		t.Fatalf("WorldToIndex(-10,-10) = %d, want 0", got)
	}
	// Floor, not round: just below the next sample stays in the lower cell.
	if got := g.WorldToIndex(0.19, 0); got != 50*101+50 {
		t.Fatalf("WorldToIndex(0.19,0) = %d, want lower cell %d", got, 50*101+50)
	}
	// Out of range clamps per axis.
	if got := g.WorldToIndex(-100, 100); got != 100*101 {
		t.Fatalf("WorldToIndex(-100,100) = %d, want %d", got, 100*101)
	}
	if got := g.WorldToIndex(100, -100); got != 100 {
		t.Fatalf("WorldToIndex(100,-100) = %d, want 100", got)
	}
	if got := g.WorldToIndex(float32(math.NaN()), 0); got != 50*101 {
		t.Fatalf("WorldToIndex(NaN,0) = %d, want %d", got, 50*101)
	}
}

func TestWorldToIndexAlwaysInRange(t *testing.T) {
	g, err := New(7, 13)
	if err != nil {
		t.Fatal(err)
	}
	for x := float32(-12); x <= 12; x += 0.37 {
		for z := float32(-12); z <= 12; z += 0.41 {
			i := g.WorldToIndex(x, z)
			if i < 0 || i >= g.Count() {
				t.Fatalf("WorldToIndex(%f,%f) = %d out of range", x, z, i)
			}
			if again := g.WorldToIndex(x, z); again != i {
				t.Fatalf("WorldToIndex(%f,%f) not deterministic: %d then %d", x, z, i, again)
			}
		}
	}
}

func TestCoordsInvertsIndex(t *testing.T) {
	g, err := New(4, 8)
	if err != nil {
		t.Fatal(err)
	}
	for z := 0; z <= 8; z++ {
		for x := 0; x <= 8; x++ {
			gx, gz := g.Coords(g.Index(x, z))
			if gx != x || gz != z {
				t.Fatalf("Coords(Index(%d,%d)) = (%d,%d)", x, z, gx, gz)
			}
		}
	}
}

func TestResetClearsState(t *testing.T) {
	g, err := New(20, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ApplyRadialDeformation(1, -2, 1.5, 0.2, 0.8); err != nil {
		t.Fatal(err)
	}
	if s := g.Stats(); s.Pressed == 0 {
		t.Fatal("press should have touched samples")
	}
	base := g.BasePosition(1234)

	g.Reset()

	if len(g.Elevations()) != g.Count() || len(g.Intensities()) != g.Count() {
		t.Fatal("reset must keep count-sized arrays")
	}
	for i := 0; i < g.Count(); i++ {
		if g.Elevation(i) != 0 || g.TrackIntensity(i) != 0 {
			t.Fatalf("sample %d not cleared: elev=%f track=%f", i, g.Elevation(i), g.TrackIntensity(i))
		}
	}
	if g.BasePosition(1234) != base {
		t.Fatal("reset must not move base positions")
	}
}

func TestStats(t *testing.T) {
	g, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ApplyRadialDeformation(0, 0, 0.5, 0.3, 1); err != nil {
		t.Fatal(err)
	}
	s := g.Stats()
	if s.Pressed != 1 {
		t.Fatalf("pressed = %d, want 1", s.Pressed)
	}
	if math.Abs(float64(s.MinElevation)+0.3) > 1e-6 {
		t.Fatalf("min elevation = %f, want -0.3", s.MinElevation)
	}
	if s.MaxIntensity != 1 {
		t.Fatalf("max intensity = %f, want 1", s.MaxIntensity)
	}
	if math.Abs(float64(s.MeanIntensity)-1.0/9) > 1e-6 {
		t.Fatalf("mean intensity = %f, want 1/9", s.MeanIntensity)
	}
}
