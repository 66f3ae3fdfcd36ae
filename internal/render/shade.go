package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Light is an ambient term plus one directional light.
type Light struct {
	Dir     mgl32.Vec3 // unit vector pointing toward the light
	Ambient float32
	Diffuse float32
}

// DefaultLight is a low sun from the upper left.
func DefaultLight() Light {
	return Light{
		Dir:     mgl32.Vec3{-0.4, 1, 0.3}.Normalize(),
		Ambient: 0.35,
		Diffuse: 0.65,
	}
}

// Shade lights a vertex with the given normal. tint is the per-vertex track
// color and base the surface material color; the result is in [0, 1].
func (l Light) Shade(normal, tint mgl32.Vec3, base color.NRGBA) mgl32.Vec3 {
	k := l.Ambient + l.Diffuse*max(normal.Dot(l.Dir), 0)
	return mgl32.Vec3{
		clamp01(tint.X() * float32(base.R) / 255 * k),
		clamp01(tint.Y() * float32(base.G) / 255 * k),
		clamp01(tint.Z() * float32(base.B) / 255 * k),
	}
}

func clamp01(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}
