// Package surfaces registers the ground materials a world can be built on.
package surfaces

import (
	"image/color"

	"snowtrack/internal/core"
)

func init() {
	core.RegisterSurface("snow", func(cfg map[string]string) core.Surface {
		return fromMap(core.Surface{
			Name:           "snow",
			BaseColor:      color.NRGBA{R: 240, G: 244, B: 250, A: 255},
			DepthScale:     1,
			IntensityScale: 1,
		}, cfg)
	})
}
