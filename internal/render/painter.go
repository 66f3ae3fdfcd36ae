//go:build ebiten

package render

import (
	"image"
	"image/color"

	"snowtrack/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// MeshPainter draws the terrain buffers as flat-shaded projected triangles.
type MeshPainter struct {
	src     *ebiten.Image
	indices []uint16
	drawIdx []uint16
	verts   []ebiten.Vertex
	visible []bool

	base  color.NRGBA
	light Light
}

// NewMeshPainter prepares a painter for a grid with the given segment count.
func NewMeshPainter(segments int) (*MeshPainter, error) {
	indices, err := Triangulate(segments)
	if err != nil {
		return nil, err
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	n := (segments + 1) * (segments + 1)
	return &MeshPainter{
		src:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		indices: indices,
		drawIdx: make([]uint16, 0, len(indices)),
		verts:   make([]ebiten.Vertex, n),
		visible: make([]bool, n),
		base:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		light:   DefaultLight(),
	}, nil
}

// SetSurfaceBaseColor sets the material color the track tint is applied over.
func (mp *MeshPainter) SetSurfaceBaseColor(c color.NRGBA) { mp.base = c }

// Draw projects and shades a, then rasterizes it onto dst.
func (mp *MeshPainter) Draw(dst *ebiten.Image, a *terrain.Attributes, proj Projector) {
	if len(a.Positions) != len(mp.verts) {
		return
	}
	for i, p := range a.Positions {
		x, y, ok := proj.Project(p)
		mp.visible[i] = ok
		c := mp.light.Shade(a.Normals[i], a.Colors[i], mp.base)
		mp.verts[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: c.X(), ColorG: c.Y(), ColorB: c.Z(), ColorA: 1,
		}
	}
	mp.drawIdx = CullTriangles(mp.drawIdx[:0], mp.indices, mp.visible)
	if len(mp.drawIdx) == 0 {
		return
	}
	dst.DrawTriangles(mp.verts, mp.drawIdx, mp.src, &ebiten.DrawTrianglesOptions{})
}

// DrawQuad fills the projected quad a-b-c-d (in order around its edge) with clr.
func (mp *MeshPainter) DrawQuad(dst *ebiten.Image, corners [4]mgl32.Vec3, clr color.NRGBA, proj Projector) {
	var vs [4]ebiten.Vertex
	for i, p := range corners {
		x, y, ok := proj.Project(p)
		if !ok {
			return
		}
		vs[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: float32(clr.R) / 255,
			ColorG: float32(clr.G) / 255,
			ColorB: float32(clr.B) / 255,
			ColorA: float32(clr.A) / 255,
		}
	}
	dst.DrawTriangles(vs[:], []uint16{0, 1, 2, 0, 2, 3}, mp.src, &ebiten.DrawTrianglesOptions{})
}
