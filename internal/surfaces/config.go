package surfaces

import (
	"strconv"

	"snowtrack/internal/core"
)

// fromMap applies "depth_scale" and "intensity_scale" overrides. Invalid or
// negative values keep the preset.
func fromMap(s core.Surface, cfg map[string]string) core.Surface {
	if cfg == nil {
		return s
	}
	if v, ok := cfg["depth_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			s.DepthScale = float32(parsed)
		}
	}
	if v, ok := cfg["intensity_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			s.IntensityScale = float32(parsed)
		}
	}
	return s
}
