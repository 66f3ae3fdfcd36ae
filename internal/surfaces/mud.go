package surfaces

import (
	"image/color"

	"snowtrack/internal/core"
)

func init() {
	core.RegisterSurface("mud", func(cfg map[string]string) core.Surface {
		return fromMap(core.Surface{
			Name:           "mud",
			BaseColor:      color.NRGBA{R: 120, G: 92, B: 64, A: 255},
			DepthScale:     1.4,
			IntensityScale: 0.9,
		}, cfg)
	})
}
