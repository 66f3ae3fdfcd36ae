package core

// FloatGrid stores a 2D field of float32 sample values in row-major order.
type FloatGrid struct {
	W, H int
	data []float32
}

// NewFloatGrid allocates a zeroed field with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float32, w*h)}
}

// Values exposes the backing slice so callers can read/write samples directly.
func (g *FloatGrid) Values() []float32 { return g.data }

// Len returns the number of samples.
func (g *FloatGrid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// Coords is the inverse of Index.
func (g *FloatGrid) Coords(i int) (int, int) { return i % g.W, i / g.W }

// Clamp pins the provided coordinates to the grid bounds.
func (g *FloatGrid) Clamp(x, y int) (int, int) {
	return ClampInt(x, 0, g.W-1), ClampInt(y, 0, g.H-1)
}

// At returns the sample at (x, y).
func (g *FloatGrid) At(x, y int) float32 { return g.data[y*g.W+x] }

// Set writes the sample at (x, y).
func (g *FloatGrid) Set(x, y int, v float32) { g.data[y*g.W+x] = v }

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// MinMax returns the smallest and largest samples.
func (g *FloatGrid) MinMax() (float32, float32) {
	lo, hi := g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// ClampInt pins v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
