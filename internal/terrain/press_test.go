package terrain

import (
	"errors"
	"math"
	"slices"
	"testing"

	"snowtrack/internal/core"
)

func near(a, b float32, tol float64) bool {
	return math.Abs(float64(a)-float64(b)) <= tol
}

func TestPressScenario(t *testing.T) {
	g, err := New(20, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ApplyRadialDeformation(0, 0, 0.5, 0.1, 0.6); err != nil {
		t.Fatal(err)
	}

	center := g.WorldToIndex(0, 0)
	if !near(g.Elevation(center), -0.1, 1e-6) {
		t.Fatalf("center elevation = %f, want -0.1", g.Elevation(center))
	}
	if !near(g.TrackIntensity(center), 0.6, 1e-6) {
		t.Fatalf("center intensity = %f, want 0.6", g.TrackIntensity(center))
	}

	// d = 0.4 -> influence 0.2.
	inner := g.Index(52, 50)
	if !near(g.Elevation(inner), -0.02, 1e-5) || !near(g.TrackIntensity(inner), 0.12, 1e-5) {
		t.Fatalf("inner sample elev=%f track=%f, want -0.02/0.12", g.Elevation(inner), g.TrackIntensity(inner))
	}

	for _, i := range []int{g.Index(53, 50), g.Index(52, 52), g.Index(50, 47)} {
		if g.Elevation(i) != 0 || g.TrackIntensity(i) != 0 {
			t.Fatalf("sample %d beyond radius was touched: elev=%f track=%f", i, g.Elevation(i), g.TrackIntensity(i))
		}
	}
}

func TestPressExactRadiusUntouched(t *testing.T) {
	g, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ApplyRadialDeformation(0, 0, 1, 0.5, 1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < g.Count(); i++ {
		if i == g.Index(1, 1) {
			if g.Elevation(i) != -0.5 {
				t.Fatalf("center elevation = %f, want -0.5", g.Elevation(i))
			}
			continue
		}
		if g.Elevation(i) != 0 || g.TrackIntensity(i) != 0 {
			t.Fatalf("sample %d at distance >= radius was touched", i)
		}
	}
}

func TestPressMinWins(t *testing.T) {
	g, err := New(20, 100)
	if err != nil {
		t.Fatal(err)
	}
	center := g.WorldToIndex(0, 0)
	if err := g.ApplyRadialDeformation(0, 0, 0.5, 0.1, 0.6); err != nil {
		t.Fatal(err)
	}
	if err := g.ApplyRadialDeformation(0, 0, 0.5, 0.05, 0.6); err != nil {
		t.Fatal(err)
	}
	if !near(g.Elevation(center), -0.1, 1e-6) {
		t.Fatalf("center elevation = %f, want -0.1 (min, not sum)", g.Elevation(center))
	}
}

func TestPressIntensityIsMaxNotSum(t *testing.T) {
	g, err := New(4, 8) // spacing 0.5
	if err != nil {
		t.Fatal(err)
	}
	target := g.WorldToIndex(0.5, 0)
	if err := g.ApplyRadialDeformation(0, 0, 1, 0.1, 0.6); err != nil {
		t.Fatal(err)
	}
	if !near(g.TrackIntensity(target), 0.3, 1e-6) {
		t.Fatalf("after first press intensity = %f, want 0.3", g.TrackIntensity(target))
	}
	if err := g.ApplyRadialDeformation(0.5, 0, 1, 0.1, 0.6); err != nil {
		t.Fatal(err)
	}
	if !near(g.TrackIntensity(target), 0.6, 1e-6) {
		t.Fatalf("after second press intensity = %f, want 0.6", g.TrackIntensity(target))
	}
	if err := g.ApplyRadialDeformation(0, 0, 1, 0.1, 0.6); err != nil {
		t.Fatal(err)
	}
	if !near(g.TrackIntensity(target), 0.6, 1e-6) {
		t.Fatalf("weaker press lowered intensity to %f", g.TrackIntensity(target))
	}
}

func TestPressInvariantsHold(t *testing.T) {
	g, err := New(10, 40)
	if err != nil {
		t.Fatal(err)
	}
	rng := core.NewRNG(7)
	prevElev := slices.Clone(g.Elevations())
	prevTrack := slices.Clone(g.Intensities())
	for n := 0; n < 200; n++ {
		cx := rng.Float32Range(-7, 7)
		cz := rng.Float32Range(-7, 7)
		radius := rng.Float32Range(0.05, 2)
		depth := rng.Float32Range(0, 0.5)
		intensity := rng.Float32Range(0, 1)
		if err := g.ApplyRadialDeformation(cx, cz, radius, depth, intensity); err != nil {
			t.Fatal(err)
		}
		elev, track := g.Elevations(), g.Intensities()
		for i := range elev {
			if elev[i] > 0 {
				t.Fatalf("press %d: elevation[%d] = %f > 0", n, i, elev[i])
			}
			if track[i] < 0 || track[i] > 1 {
				t.Fatalf("press %d: intensity[%d] = %f outside [0,1]", n, i, track[i])
			}
			if elev[i] > prevElev[i] {
				t.Fatalf("press %d raised sample %d", n, i)
			}
			if track[i] < prevTrack[i] {
				t.Fatalf("press %d faded sample %d", n, i)
			}
		}
		copy(prevElev, elev)
		copy(prevTrack, track)
	}
}

// bruteForce is the unbounded O(count) scan.
func bruteForce(g *Grid, elev, track []float32, cx, cz, radius, depth, intensity float32) {
	for i, p := range g.base {
		dx := p.X() - cx
		dz := p.Z() - cz
		d := float32(math.Sqrt(float64(dx*dx + dz*dz)))
		if d >= radius {
			continue
		}
		influence := 1 - d/radius
		elev[i] = min(elev[i], -depth*influence)
		track[i] = max(track[i], intensity*influence)
	}
}

func TestBoundedScanMatchesFullScan(t *testing.T) {
	g, err := New(6, 37)
	if err != nil {
		t.Fatal(err)
	}
	elev := make([]float32, g.Count())
	track := make([]float32, g.Count())
	rng := core.NewRNG(99)
	for n := 0; n < 150; n++ {
		cx := rng.Float32Range(-5, 5)
		cz := rng.Float32Range(-5, 5)
		radius := rng.Float32Range(0.01, 3)
		depth := rng.Float32Range(0, 1)
		intensity := rng.Float32Range(0, 1)
		if err := g.ApplyRadialDeformation(cx, cz, radius, depth, intensity); err != nil {
			t.Fatal(err)
		}
		bruteForce(g, elev, track, cx, cz, radius, depth, intensity)
	}
	if !slices.Equal(elev, g.Elevations()) {
		t.Fatal("bounded scan elevations differ from full scan")
	}
	if !slices.Equal(track, g.Intensities()) {
		t.Fatal("bounded scan intensities differ from full scan")
	}
}

func TestPressRejectsInvalidArguments(t *testing.T) {
	g, err := New(20, 100)
	if err != nil {
		t.Fatal(err)
	}
	nan := float32(math.NaN())
	cases := []struct {
		name                             string
		cx, cz, radius, depth, intensity float32
	}{
		{"zero radius", 0, 0, 0, 0.1, 0.5},
		{"negative radius", 0, 0, -1, 0.1, 0.5},
		{"negative depth", 0, 0, 1, -0.1, 0.5},
		{"intensity above one", 0, 0, 1, 0.1, 1.5},
		{"negative intensity", 0, 0, 1, 0.1, -0.5},
		{"nan center", nan, 0, 1, 0.1, 0.5},
		{"inf depth", 0, 0, 1, float32(math.Inf(1)), 0.5},
	}
	for _, c := range cases {
		err := g.ApplyRadialDeformation(c.cx, c.cz, c.radius, c.depth, c.intensity)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: error = %v, want ErrInvalidArgument", c.name, err)
		}
	}
	if s := g.Stats(); s.Pressed != 0 {
		t.Fatalf("rejected presses modified %d samples", s.Pressed)
	}
}

func TestMultiPointRejectsWholePattern(t *testing.T) {
	g, err := New(20, 100)
	if err != nil {
		t.Fatal(err)
	}
	g.DeriveRenderAttributes(&Attributes{})
	pattern := []Press{
		{OffsetX: -1, Radius: 0.5, Depth: 0.1, Intensity: 0.6},
		{OffsetX: 1, Radius: 0, Depth: 0.1, Intensity: 0.6},
	}
	if err := g.ApplyMultiPointDeformation(0, 0, pattern); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if s := g.Stats(); s.Pressed != 0 {
		t.Fatalf("invalid pattern partially applied to %d samples", s.Pressed)
	}
	if g.Dirty() {
		t.Fatal("invalid pattern marked the grid dirty")
	}
}

func TestMultiPointOrderIndependent(t *testing.T) {
	pattern := []Press{
		{OffsetX: -0.6, OffsetZ: -0.9, Radius: 0.3, Depth: 0.1, Intensity: 0.6},
		{OffsetX: 0.6, OffsetZ: -0.9, Radius: 0.3, Depth: 0.1, Intensity: 0.6},
		{OffsetX: -0.6, OffsetZ: 0.9, Radius: 0.3, Depth: 0.1, Intensity: 0.6},
		{OffsetX: 0.6, OffsetZ: 0.9, Radius: 0.3, Depth: 0.1, Intensity: 0.6},
		{Radius: 1.2, Depth: 0.04, Intensity: 0.25},
	}
	reversed := slices.Clone(pattern)
	slices.Reverse(reversed)

	a, err := New(10, 50)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(10, 50)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.ApplyMultiPointDeformation(1, -0.5, pattern); err != nil {
		t.Fatal(err)
	}
	if err := b.ApplyMultiPointDeformation(1, -0.5, reversed); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Elevations(), b.Elevations()) || !slices.Equal(a.Intensities(), b.Intensities()) {
		t.Fatal("pattern order changed the result")
	}

	// The lower cell of each wheel center lies within the wheel radius.
	for _, p := range pattern[:4] {
		i := a.WorldToIndex(1+p.OffsetX, -0.5+p.OffsetZ)
		if a.Elevation(i) >= 0 {
			t.Fatalf("wheel at offset (%f,%f) not pressed", p.OffsetX, p.OffsetZ)
		}
	}
}
