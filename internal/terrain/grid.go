// Package terrain models a deformable surface as a regular grid of samples.
//
// Each sample has a fixed base position on the y=0 plane plus two pieces of
// accumulated state: an elevation offset that only ever goes down, and a track
// intensity in [0, 1] that only ever goes up. Presses mutate that state; the
// render attributes (positions, colors, normals) are derived from it on demand
// into caller-owned buffers.
package terrain

import (
	"errors"
	"fmt"
	"math"

	"snowtrack/internal/core"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidArgument is returned for out-of-domain construction or press inputs.
var ErrInvalidArgument = errors.New("terrain: invalid argument")

// Grid is a square deformable surface of (segments+1)² samples.
type Grid struct {
	size     float32
	segments int
	stride   int
	sub      float32

	base      []mgl32.Vec3
	elevation *core.FloatGrid
	intensity *core.FloatGrid

	dirty rect
}

// New builds a flat grid of side size split into segments cells per axis.
func New(size float32, segments int) (*Grid, error) {
	if !(size > 0) || math.IsInf(float64(size), 0) {
		return nil, fmt.Errorf("%w: size %v must be positive and finite", ErrInvalidArgument, size)
	}
	if segments <= 0 {
		return nil, fmt.Errorf("%w: segments %d must be positive", ErrInvalidArgument, segments)
	}
	stride := segments + 1
	g := &Grid{
		size:      size,
		segments:  segments,
		stride:    stride,
		sub:       size / float32(segments),
		base:      make([]mgl32.Vec3, stride*stride),
		elevation: core.NewFloatGrid(stride, stride),
		intensity: core.NewFloatGrid(stride, stride),
	}
	half := float64(size) / 2
	for z := 0; z < stride; z++ {
		pz := float32(float64(z)*float64(size)/float64(segments) - half)
		for x := 0; x < stride; x++ {
			px := float32(float64(x)*float64(size)/float64(segments) - half)
			g.base[z*stride+x] = mgl32.Vec3{px, 0, pz}
		}
	}
	g.dirty = g.full()
	return g, nil
}

// Size returns the side length of the covered square.
func (g *Grid) Size() float32 { return g.size }

// Segments returns the number of cells per axis.
func (g *Grid) Segments() int { return g.segments }

// Subdivision returns the spacing between adjacent samples.
func (g *Grid) Subdivision() float32 { return g.sub }

// Count returns the number of samples, (segments+1)².
func (g *Grid) Count() int { return len(g.base) }

// Index returns the sample index for grid coordinates (x, z).
func (g *Grid) Index(x, z int) int { return z*g.stride + x }

// Coords returns the grid coordinates of sample i.
func (g *Grid) Coords(i int) (int, int) { return i % g.stride, i / g.stride }

// BasePosition returns the undeformed position of sample i.
func (g *Grid) BasePosition(i int) mgl32.Vec3 { return g.base[i] }

// Elevation returns the vertical offset of sample i. Always <= 0.
func (g *Grid) Elevation(i int) float32 { return g.elevation.Values()[i] }

// TrackIntensity returns the accumulated darkening of sample i, in [0, 1].
func (g *Grid) TrackIntensity(i int) float32 { return g.intensity.Values()[i] }

// Elevations exposes the elevation field. Callers must not write to it.
func (g *Grid) Elevations() []float32 { return g.elevation.Values() }

// Intensities exposes the track-intensity field. Callers must not write to it.
func (g *Grid) Intensities() []float32 { return g.intensity.Values() }

// WorldToIndex maps a planar world coordinate to a sample index. Each axis
// takes the lower cell (floor, not round) and is clamped to the grid, so the
// result is always a valid index.
func (g *Grid) WorldToIndex(x, z float32) int {
	return g.Index(g.axisIndex(x), g.axisIndex(z))
}

func (g *Grid) axisIndex(coord float32) int {
	// (coord+size/2)/subdivision, arranged so exact grid coordinates stay exact.
	size := float64(g.size)
	v := math.Floor((float64(coord) + size/2) * float64(g.segments) / size)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > float64(g.segments) {
		return g.segments
	}
	return int(v)
}

// Reset clears all deformation. Base positions are untouched.
func (g *Grid) Reset() {
	g.elevation.Clear()
	g.intensity.Clear()
	g.dirty = g.full()
}

// rect is an inclusive range of grid coordinates. Empty when x0 > x1.
type rect struct {
	x0, z0, x1, z1 int
}

func emptyRect() rect { return rect{x0: 1, z0: 1, x1: 0, z1: 0} }

func (r rect) empty() bool { return r.x0 > r.x1 || r.z0 > r.z1 }

func (r rect) union(o rect) rect {
	if r.empty() {
		return o
	}
	if o.empty() {
		return r
	}
	return rect{
		x0: min(r.x0, o.x0), z0: min(r.z0, o.z0),
		x1: max(r.x1, o.x1), z1: max(r.z1, o.z1),
	}
}

func (g *Grid) full() rect { return rect{x0: 0, z0: 0, x1: g.segments, z1: g.segments} }

// grow expands r by n samples on every side, clamped to the grid.
func (g *Grid) grow(r rect, n int) rect {
	if r.empty() {
		return r
	}
	return rect{
		x0: core.ClampInt(r.x0-n, 0, g.segments),
		z0: core.ClampInt(r.z0-n, 0, g.segments),
		x1: core.ClampInt(r.x1+n, 0, g.segments),
		z1: core.ClampInt(r.z1+n, 0, g.segments),
	}
}

// Stats summarizes the accumulated deformation.
type Stats struct {
	Pressed       int
	MinElevation  float32
	MaxIntensity  float32
	MeanIntensity float32
}

// Stats walks the grid and reports how much of it has been pressed.
func (g *Grid) Stats() Stats {
	var s Stats
	elev := g.elevation.Values()
	var sum float64
	for i, t := range g.intensity.Values() {
		if elev[i] < 0 || t > 0 {
			s.Pressed++
		}
		sum += float64(t)
	}
	s.MinElevation, _ = g.elevation.MinMax()
	_, s.MaxIntensity = g.intensity.MinMax()
	s.MeanIntensity = float32(sum / float64(len(elev)))
	return s
}
