package terrain

import "github.com/go-gl/mathgl/mgl32"

var up = mgl32.Vec3{0, 1, 0}

type edge struct {
	dir mgl32.Vec3
	ok  bool
}

func edgeTo(from, to mgl32.Vec3) edge {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return edge{}
	}
	return edge{dir: d.Mul(1 / l), ok: true}
}

// face returns the unit normal of the face spanned by a and b, or the zero
// vector when either edge collapsed.
func face(a, b edge) mgl32.Vec3 {
	if !a.ok || !b.ok {
		return mgl32.Vec3{}
	}
	c := a.dir.Cross(b.dir)
	l := c.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return c.Mul(1 / l)
}

// normalAt estimates the normal of sample (x, z) from its four axis neighbors
// in pos. Left/right step along x, bottom/top step along -z/+z. Off-grid
// neighbors are replaced by the sample itself, which collapses that edge and
// drops the two faces it borders.
func (g *Grid) normalAt(pos []mgl32.Vec3, x, z int) mgl32.Vec3 {
	row := z * g.stride
	c := pos[row+x]
	left := edgeTo(c, pos[row+max(x-1, 0)])
	right := edgeTo(c, pos[row+min(x+1, g.segments)])
	bottom := edgeTo(c, pos[max(z-1, 0)*g.stride+x])
	top := edgeTo(c, pos[min(z+1, g.segments)*g.stride+x])

	n := face(right, bottom).
		Add(face(bottom, left)).
		Add(face(left, top)).
		Add(face(top, right))
	l := n.Len()
	if l == 0 {
		return up
	}
	return n.Mul(1 / l)
}
