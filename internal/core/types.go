package core

import (
	"image/color"
	"sort"
)

// Surface describes how a ground material reacts to presses and how it is tinted.
type Surface struct {
	Name      string
	BaseColor color.NRGBA

	// DepthScale multiplies press depth; IntensityScale multiplies track darkening.
	DepthScale     float32
	IntensityScale float32
}

// SurfaceFactory constructs a Surface using an optional configuration map.
type SurfaceFactory func(cfg map[string]string) Surface

var surfaces = map[string]SurfaceFactory{}

// RegisterSurface adds a surface factory under the provided name.
func RegisterSurface(name string, f SurfaceFactory) {
	if name == "" || f == nil {
		return
	}
	surfaces[name] = f
}

// Surfaces exposes the registry of available surface factories.
func Surfaces() map[string]SurfaceFactory {
	return surfaces
}

// SurfaceNames returns the registered names in sorted order.
func SurfaceNames() []string {
	names := make([]string, 0, len(surfaces))
	for name := range surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupSurface builds the named surface.
func LookupSurface(name string, cfg map[string]string) (Surface, bool) {
	f, ok := surfaces[name]
	if !ok {
		return Surface{}, false
	}
	return f(cfg), true
}
