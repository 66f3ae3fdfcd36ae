package surfaces

import (
	"image/color"

	"snowtrack/internal/core"
)

// Sand packs harder than snow, so tracks are shallower and fainter.
func init() {
	core.RegisterSurface("sand", func(cfg map[string]string) core.Surface {
		return fromMap(core.Surface{
			Name:           "sand",
			BaseColor:      color.NRGBA{R: 222, G: 196, B: 140, A: 255},
			DepthScale:     0.6,
			IntensityScale: 0.5,
		}, cfg)
	})
}
