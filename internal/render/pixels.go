package render

import (
	"image/color"

	"snowtrack/internal/terrain"
)

// FillHeightRGBA converts elevation and track intensity into RGBA pixels in
// buf, one pixel per sample. Deeper samples are drawn darker; maxDepth is the
// depth that maps to the darkest shade.
func FillHeightRGBA(buf []byte, elevation, intensity []float32, base color.NRGBA, maxDepth float32) {
	if maxDepth <= 0 {
		maxDepth = 1
	}
	for i, e := range elevation {
		shade := 1 - 0.6*clamp01(-e/maxDepth)
		tint := terrain.TrackColor(intensity[i])
		o := i * 4
		buf[o+0] = toByte(float32(base.R) / 255 * tint.X() * shade)
		buf[o+1] = toByte(float32(base.G) / 255 * tint.Y() * shade)
		buf[o+2] = toByte(float32(base.B) / 255 * tint.Z() * shade)
		buf[o+3] = 255
	}
}

func toByte(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
