// Package vehicle turns held controls into planar motion and a wheel press
// pattern for the terrain.
package vehicle

import (
	"math"

	"snowtrack/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// Controls are the inputs held during one update.
type Controls struct {
	Forward bool
	Reverse bool
	Left    bool
	Right   bool
}

// Params controls handling and the footprint the vehicle presses into the ground.
type Params struct {
	MaxSpeed float32 // units per second
	Accel    float32
	Drag     float32
	TurnRate float32 // radians per second at any non-zero speed

	Track     float32 // distance between left and right wheels
	Wheelbase float32 // distance between front and rear axles

	WheelRadius    float32
	WheelDepth     float32
	WheelIntensity float32

	BodyRadius    float32
	BodyDepth     float32
	BodyIntensity float32
}

// DefaultParams returns the standard handling and footprint.
func DefaultParams() Params {
	return Params{
		MaxSpeed:       4,
		Accel:          6,
		Drag:           3,
		TurnRate:       1.8,
		Track:          0.9,
		Wheelbase:      1.3,
		WheelRadius:    0.25,
		WheelDepth:     0.1,
		WheelIntensity: 0.6,
		BodyRadius:     0.6,
		BodyDepth:      0.03,
		BodyIntensity:  0.2,
	}
}

// Vehicle is a point-mass car on the x/z plane. Heading 0 faces -z and
// positive headings turn clockwise seen from above (toward +x).
type Vehicle struct {
	X, Z    float32
	Heading float32
	Speed   float32

	params Params
	bound  float32
}

// New returns a vehicle at rest at the origin.
func New(p Params) *Vehicle {
	return &Vehicle{params: p}
}

// Params returns the current handling parameters.
func (v *Vehicle) Params() Params { return v.params }

// SetParams replaces the handling parameters.
func (v *Vehicle) SetParams(p Params) { v.params = p }

// SetBounds keeps the vehicle inside [-half, half] on both axes. Zero disables.
func (v *Vehicle) SetBounds(half float32) { v.bound = half }

// Reset parks the vehicle at the origin facing -z.
func (v *Vehicle) Reset() {
	v.X, v.Z, v.Heading, v.Speed = 0, 0, 0, 0
}

// Forward returns the unit direction the vehicle faces.
func (v *Vehicle) Forward() mgl32.Vec2 {
	return v.toWorld(mgl32.Vec2{0, -1})
}

// toWorld rotates a vehicle-local offset (x right, z back) by the heading.
func (v *Vehicle) toWorld(local mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Rotate2D(v.Heading).Mul2x1(local)
}

// Step advances the vehicle by dt seconds under c.
func (v *Vehicle) Step(c Controls, dt float32) {
	if dt <= 0 {
		return
	}
	p := v.params
	switch {
	case c.Forward && !c.Reverse:
		v.Speed += p.Accel * dt
	case c.Reverse && !c.Forward:
		v.Speed -= p.Accel * dt
	default:
		v.Speed = approachZero(v.Speed, p.Drag*dt)
	}
	v.Speed = mgl32.Clamp(v.Speed, -p.MaxSpeed/2, p.MaxSpeed)

	if v.Speed != 0 {
		var steer float32
		if c.Left {
			steer--
		}
		if c.Right {
			steer++
		}
		if v.Speed < 0 {
			steer = -steer
		}
		v.Heading = wrapAngle(v.Heading + steer*p.TurnRate*dt)
	}

	move := v.Forward().Mul(v.Speed * dt)
	v.X += move.X()
	v.Z += move.Y()

	if v.bound > 0 {
		x := mgl32.Clamp(v.X, -v.bound, v.bound)
		z := mgl32.Clamp(v.Z, -v.bound, v.bound)
		if x != v.X || z != v.Z {
			v.X, v.Z = x, z
			v.Speed = 0
		}
	}
}

// Wheels returns the world-space wheel centers: front-left, front-right,
// rear-left, rear-right.
func (v *Vehicle) Wheels() [4]mgl32.Vec2 {
	var out [4]mgl32.Vec2
	for i, off := range v.wheelOffsets() {
		out[i] = off.Add(mgl32.Vec2{v.X, v.Z})
	}
	return out
}

func (v *Vehicle) wheelOffsets() [4]mgl32.Vec2 {
	hx := v.params.Track / 2
	hz := v.params.Wheelbase / 2
	return [4]mgl32.Vec2{
		v.toWorld(mgl32.Vec2{-hx, -hz}),
		v.toWorld(mgl32.Vec2{hx, -hz}),
		v.toWorld(mgl32.Vec2{-hx, hz}),
		v.toWorld(mgl32.Vec2{hx, hz}),
	}
}

// Pattern returns the press pattern relative to the vehicle position: one
// press per wheel plus a wide shallow body press. Depths and intensities are
// scaled for the surface; intensities are capped at 1.
func (v *Vehicle) Pattern(depthScale, intensityScale float32) []terrain.Press {
	p := v.params
	out := make([]terrain.Press, 0, 5)
	for _, off := range v.wheelOffsets() {
		out = append(out, terrain.Press{
			OffsetX:   off.X(),
			OffsetZ:   off.Y(),
			Radius:    p.WheelRadius,
			Depth:     p.WheelDepth * depthScale,
			Intensity: min(p.WheelIntensity*intensityScale, 1),
		})
	}
	out = append(out, terrain.Press{
		Radius:    p.BodyRadius,
		Depth:     p.BodyDepth * depthScale,
		Intensity: min(p.BodyIntensity*intensityScale, 1),
	})
	return out
}

func approachZero(v, amount float32) float32 {
	if v > 0 {
		return max(v-amount, 0)
	}
	return min(v+amount, 0)
}

func wrapAngle(a float32) float32 {
	return float32(math.Remainder(float64(a), 2*math.Pi))
}
