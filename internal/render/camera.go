package render

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective view of the scene.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	FOVY   float32 // radians
	Near   float32
	Far    float32
}

// DefaultCamera looks at the origin from above and behind (+z).
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 9, 12},
		Target: mgl32.Vec3{0, 0, 0},
		FOVY:   mgl32.DegToRad(45),
		Near:   0.1,
		Far:    200,
	}
}

// Follow shifts the camera rig so it looks at (x, 0, z) from the same offset.
func (c Camera) Follow(x, z float32) Camera {
	shift := mgl32.Vec3{x - c.Target.X(), 0, z - c.Target.Z()}
	c.Eye = c.Eye.Add(shift)
	c.Target = c.Target.Add(shift)
	return c
}

// Projector maps world points to screen pixels for one camera and viewport.
type Projector struct {
	mvp  mgl32.Mat4
	w, h float32
}

// NewProjector builds a projector for a width x height viewport.
func NewProjector(c Camera, width, height int) Projector {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	proj := mgl32.Perspective(c.FOVY, aspect, c.Near, c.Far)
	view := mgl32.LookAtV(c.Eye, c.Target, mgl32.Vec3{0, 1, 0})
	return Projector{mvp: proj.Mul4(view), w: float32(width), h: float32(height)}
}

// Project returns the pixel position of p. ok is false when p lies behind
// the near plane and cannot be drawn.
func (p Projector) Project(v mgl32.Vec3) (x, y float32, ok bool) {
	clip := p.mvp.Mul4x1(v.Vec4(1))
	if clip.W() <= 1e-6 || clip.Z() < -clip.W() {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * p.w
	y = (1 - ndc.Y()) / 2 * p.h
	return x, y, true
}
