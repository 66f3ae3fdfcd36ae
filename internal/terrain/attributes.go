package terrain

import "github.com/go-gl/mathgl/mgl32"

// Attributes holds the renderable per-sample buffers. All three slices are
// indexed like the grid's samples.
type Attributes struct {
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec3
	Normals   []mgl32.Vec3

	grid *Grid
}

// NewAttributes allocates buffers sized for g and fills them.
func (g *Grid) NewAttributes() *Attributes {
	a := &Attributes{}
	g.DeriveRenderAttributes(a)
	return a
}

func (a *Attributes) ensure(n int) {
	if len(a.Positions) != n {
		a.Positions = make([]mgl32.Vec3, n)
	}
	if len(a.Colors) != n {
		a.Colors = make([]mgl32.Vec3, n)
	}
	if len(a.Normals) != n {
		a.Normals = make([]mgl32.Vec3, n)
	}
}

// TrackColor maps a track intensity to the surface tint. Zero intensity is white.
func TrackColor(intensity float32) mgl32.Vec3 {
	return mgl32.Vec3{1 - intensity*0.2, 1 - intensity*0.15, 1 - intensity*0.1}
}

// DeriveRenderAttributes recomputes every position, color and normal into dst,
// resizing its buffers if needed. All positions are written before any normal
// is estimated.
func (g *Grid) DeriveRenderAttributes(dst *Attributes) {
	dst.ensure(g.Count())
	dst.grid = g
	all := g.full()
	g.fillSurface(dst, all)
	g.fillNormals(dst, all)
	g.dirty = emptyRect()
}

// RefreshRenderAttributes updates dst for the samples pressed since the last
// derive or refresh. Positions and colors are recomputed inside the dirty
// window, normals inside the window grown by one sample since a moved sample
// changes its neighbors' normals too. The result matches a full derive.
//
// Dirty tracking is per grid, so only one Attributes should be refreshed
// incrementally; a buffer last derived from another grid or with the wrong
// size gets a full derive.
func (g *Grid) RefreshRenderAttributes(dst *Attributes) {
	if dst.grid != g || len(dst.Positions) != g.Count() || len(dst.Colors) != g.Count() || len(dst.Normals) != g.Count() {
		g.DeriveRenderAttributes(dst)
		return
	}
	if g.dirty.empty() {
		return
	}
	g.fillSurface(dst, g.dirty)
	g.fillNormals(dst, g.grow(g.dirty, 1))
	g.dirty = emptyRect()
}

// Dirty reports whether presses or a reset happened since the last derive.
func (g *Grid) Dirty() bool { return !g.dirty.empty() }

func (g *Grid) fillSurface(dst *Attributes, r rect) {
	g.fillSurfaceRows(dst, r, r.z0, r.z1)
}

func (g *Grid) fillSurfaceRows(dst *Attributes, r rect, z0, z1 int) {
	elev := g.elevation.Values()
	trk := g.intensity.Values()
	for z := z0; z <= z1; z++ {
		for x := r.x0; x <= r.x1; x++ {
			i := z*g.stride + x
			p := g.base[i]
			p[1] += elev[i]
			dst.Positions[i] = p
			dst.Colors[i] = TrackColor(trk[i])
		}
	}
}

func (g *Grid) fillNormals(dst *Attributes, r rect) {
	g.fillNormalRows(dst, r, r.z0, r.z1)
}

func (g *Grid) fillNormalRows(dst *Attributes, r rect, z0, z1 int) {
	for z := z0; z <= z1; z++ {
		for x := r.x0; x <= r.x1; x++ {
			dst.Normals[z*g.stride+x] = g.normalAt(dst.Positions, x, z)
		}
	}
}
