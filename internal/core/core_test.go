package core

import (
	"image/color"
	"slices"
	"testing"
	"time"
)

func TestFloatGridIndexing(t *testing.T) {
	g := NewFloatGrid(4, 3)
	if g.Len() != 12 {
		t.Fatalf("len = %d, want 12", g.Len())
	}
	g.Set(3, 2, -1.5)
	if got := g.Values()[g.Index(3, 2)]; got != -1.5 {
		t.Fatalf("value at (3,2) = %f, want -1.5", got)
	}
	if g.At(3, 2) != -1.5 {
		t.Fatalf("At(3,2) = %f, want -1.5", g.At(3, 2))
	}
	if x, y := g.Coords(g.Index(3, 2)); x != 3 || y != 2 {
		t.Fatalf("Coords = (%d,%d), want (3,2)", x, y)
	}
	if x, y := g.Clamp(-5, 9); x != 0 || y != 2 {
		t.Fatalf("Clamp(-5,9) = (%d,%d), want (0,2)", x, y)
	}
	g.Set(0, 0, 2)
	lo, hi := g.MinMax()
	if lo != -1.5 || hi != 2 {
		t.Fatalf("MinMax = (%f,%f), want (-1.5,2)", lo, hi)
	}
	g.Clear()
	if !slices.Equal(g.Values(), make([]float32, 12)) {
		t.Fatal("Clear left non-zero samples")
	}
}

func TestNewFloatGridGuardsDimensions(t *testing.T) {
	g := NewFloatGrid(0, -2)
	if g.W != 1 || g.H != 1 || g.Len() != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}

func TestFixedStepCadence(t *testing.T) {
	now := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not fire")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step elapsed, should not fire")
	}
	now = now.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step elapsed, should fire")
	}

	// A long stall yields at most two catch-up ticks.
	now = now.Add(5 * time.Second)
	fired := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 2 {
		t.Fatalf("fired %d times after stall, want 2", fired)
	}
}

func TestFixedStepRateFallback(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("step = %v, want 1/60s", fs.Step())
	}
	fs.SetRate(4)
	if fs.Step() != 250*time.Millisecond {
		t.Fatalf("step = %v, want 250ms", fs.Step())
	}
}

func TestSurfaceRegistry(t *testing.T) {
	RegisterSurface("", func(map[string]string) Surface { return Surface{} })
	RegisterSurface("test-ice", nil)
	if _, ok := Surfaces()[""]; ok {
		t.Fatal("empty name must not register")
	}
	if _, ok := Surfaces()["test-ice"]; ok {
		t.Fatal("nil factory must not register")
	}

	RegisterSurface("test-ice", func(map[string]string) Surface {
		return Surface{Name: "test-ice", BaseColor: color.NRGBA{200, 220, 255, 255}, DepthScale: 0.2, IntensityScale: 0.4}
	})
	s, ok := LookupSurface("test-ice", nil)
	if !ok || s.DepthScale != 0.2 {
		t.Fatalf("lookup = %+v, %v", s, ok)
	}
	if !slices.Contains(SurfaceNames(), "test-ice") {
		t.Fatal("SurfaceNames missing registered surface")
	}
	if !slices.IsSorted(SurfaceNames()) {
		t.Fatal("SurfaceNames must be sorted")
	}
	if _, ok := LookupSurface("no-such-surface", nil); ok {
		t.Fatal("unknown surface should not resolve")
	}
}

func TestParameterHelpers(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name: "Grid",
		Params: []Parameter{
			IntParam("segments", "Segments", 100),
			FloatParam("size", "Size", 20.5),
			StringParam("surface", "Surface", "snow"),
		},
	}}}
	p, ok := snap.Lookup("size")
	if !ok || p.Value != "20.5" || p.Type != ParamTypeFloat {
		t.Fatalf("lookup size = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not resolve")
	}
	ctrl := ParameterControl{Min: 0.1, Max: 2}
	if ctrl.Clamp(5) != 2 || ctrl.Clamp(-1) != 0.1 || ctrl.Clamp(1) != 1 {
		t.Fatal("Clamp does not respect bounds")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Float32Range(-1, 1) != b.Float32Range(-1, 1) {
			t.Fatal("same seed produced different sequences")
		}
		n := a.IntRange(3, 7)
		if n != b.IntRange(3, 7) || n < 3 || n > 7 {
			t.Fatalf("IntRange out of sync or range: %d", n)
		}
	}
	if a.IntRange(5, 5) != 5 || a.IntRange(5, 2) != 5 {
		t.Fatal("degenerate IntRange should return lo")
	}
}
