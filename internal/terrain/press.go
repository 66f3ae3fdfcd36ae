package terrain

import (
	"fmt"
	"math"
)

// Press is one radial deformation relative to a pattern center.
type Press struct {
	OffsetX, OffsetZ float32
	Radius           float32
	Depth            float32
	Intensity        float32
}

// ApplyRadialDeformation presses the surface around (cx, cz). Samples closer
// than radius get influence 1-d/radius; their elevation drops to at most
// -depth*influence and their track intensity rises to at least
// intensity*influence. Nothing is ever raised or faded, so repeated presses
// combine by min/max rather than summing.
//
// Invalid arguments return ErrInvalidArgument and leave the grid unchanged.
func (g *Grid) ApplyRadialDeformation(cx, cz, radius, depth, intensity float32) error {
	if err := validatePress(cx, cz, radius, depth, intensity); err != nil {
		return err
	}
	g.press(cx, cz, radius, depth, intensity)
	return nil
}

// ApplyMultiPointDeformation applies every press in pattern, offset from
// (cx, cz). The whole pattern is validated before any sample is touched.
func (g *Grid) ApplyMultiPointDeformation(cx, cz float32, pattern []Press) error {
	for i, p := range pattern {
		if err := validatePress(cx+p.OffsetX, cz+p.OffsetZ, p.Radius, p.Depth, p.Intensity); err != nil {
			return fmt.Errorf("press %d: %w", i, err)
		}
	}
	for _, p := range pattern {
		g.press(cx+p.OffsetX, cz+p.OffsetZ, p.Radius, p.Depth, p.Intensity)
	}
	return nil
}

func validatePress(cx, cz, radius, depth, intensity float32) error {
	for _, v := range [...]float32{cx, cz, radius, depth, intensity} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: non-finite press argument %v", ErrInvalidArgument, v)
		}
	}
	if radius <= 0 {
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidArgument, radius)
	}
	if depth < 0 {
		return fmt.Errorf("%w: depth %v must not be negative", ErrInvalidArgument, depth)
	}
	if intensity < 0 || intensity > 1 {
		return fmt.Errorf("%w: intensity %v outside [0, 1]", ErrInvalidArgument, intensity)
	}
	return nil
}

// press only scans the index window around the disc. The window is padded by
// one sample on each side so float rounding in the index mapping can never
// exclude a sample the distance test would accept.
func (g *Grid) press(cx, cz, radius, depth, intensity float32) {
	x0 := max(g.axisIndex(cx-radius)-1, 0)
	x1 := min(g.axisIndex(cx+radius)+1, g.segments)
	z0 := max(g.axisIndex(cz-radius)-1, 0)
	z1 := min(g.axisIndex(cz+radius)+1, g.segments)

	elev := g.elevation.Values()
	trk := g.intensity.Values()
	touched := emptyRect()
	for z := z0; z <= z1; z++ {
		for x := x0; x <= x1; x++ {
			i := z*g.stride + x
			dx := g.base[i].X() - cx
			dz := g.base[i].Z() - cz
			d := float32(math.Sqrt(float64(dx*dx + dz*dz)))
			if d >= radius {
				continue
			}
			influence := 1 - d/radius
			if e := -depth * influence; e < elev[i] {
				elev[i] = e
			}
			if t := intensity * influence; t > trk[i] {
				trk[i] = t
			}
			touched = touched.union(rect{x0: x, z0: z, x1: x, z1: z})
		}
	}
	g.dirty = g.dirty.union(touched)
}
