package sim

import (
	"strconv"

	"snowtrack/internal/vehicle"
)

// Config controls the world dimensions, surface and vehicle.
type Config struct {
	Size     float32
	Segments int
	Surface  string

	// Workers > 1 derives full attribute passes over that many goroutines.
	Workers int

	Vehicle vehicle.Params

	// SurfaceOptions is handed to the surface factory.
	SurfaceOptions map[string]string
}

// DefaultConfig returns the standard configuration: a 20x20 snowfield with
// 100 segments per side.
func DefaultConfig() Config {
	return Config{
		Size:     20,
		Segments: 100,
		Surface:  "snow",
		Workers:  1,
		Vehicle:  vehicle.DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.SurfaceOptions = cfg
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed > 0 {
			c.Size = float32(parsed)
		}
	}
	if v, ok := cfg["segments"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Segments = parsed
		}
	}
	if v, ok := cfg["surface"]; ok && v != "" {
		c.Surface = v
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	for key, dst := range vehicleFields(&c.Vehicle) {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			*dst = float32(parsed)
		}
	}
	// A zero radius cannot press anything.
	def := vehicle.DefaultParams()
	if c.Vehicle.WheelRadius == 0 {
		c.Vehicle.WheelRadius = def.WheelRadius
	}
	if c.Vehicle.BodyRadius == 0 {
		c.Vehicle.BodyRadius = def.BodyRadius
	}
	if c.Vehicle.WheelIntensity > 1 {
		c.Vehicle.WheelIntensity = 1
	}
	if c.Vehicle.BodyIntensity > 1 {
		c.Vehicle.BodyIntensity = 1
	}
	return c
}

// vehicleFields maps config keys to the vehicle parameters they set.
func vehicleFields(p *vehicle.Params) map[string]*float32 {
	return map[string]*float32{
		"max_speed":       &p.MaxSpeed,
		"accel":           &p.Accel,
		"drag":            &p.Drag,
		"turn_rate":       &p.TurnRate,
		"track":           &p.Track,
		"wheelbase":       &p.Wheelbase,
		"wheel_radius":    &p.WheelRadius,
		"wheel_depth":     &p.WheelDepth,
		"wheel_intensity": &p.WheelIntensity,
		"body_radius":     &p.BodyRadius,
		"body_depth":      &p.BodyDepth,
		"body_intensity":  &p.BodyIntensity,
	}
}
