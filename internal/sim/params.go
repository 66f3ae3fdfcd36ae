package sim

import (
	"snowtrack/internal/core"
)

// Parameters reports the world's tunables and track statistics.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.car.Params()
	st := w.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.FloatParam("size", "Size", float64(w.cfg.Size)),
				core.IntParam("segments", "Segments", w.cfg.Segments),
				core.StringParam("surface", "Surface", w.surface.Name),
				core.IntParam("workers", "Workers", w.cfg.Workers),
			},
		},
		{
			Name: "Handling",
			Params: []core.Parameter{
				core.FloatParam("max_speed", "Max speed", float64(p.MaxSpeed)),
				core.FloatParam("accel", "Acceleration", float64(p.Accel)),
				core.FloatParam("drag", "Drag", float64(p.Drag)),
				core.FloatParam("turn_rate", "Turn rate", float64(p.TurnRate)),
			},
		},
		{
			Name: "Footprint",
			Params: []core.Parameter{
				core.FloatParam("track", "Track width", float64(p.Track)),
				core.FloatParam("wheelbase", "Wheelbase", float64(p.Wheelbase)),
				core.FloatParam("wheel_radius", "Wheel radius", float64(p.WheelRadius)),
				core.FloatParam("wheel_depth", "Wheel depth", float64(p.WheelDepth)),
				core.FloatParam("wheel_intensity", "Wheel intensity", float64(p.WheelIntensity)),
				core.FloatParam("body_radius", "Body radius", float64(p.BodyRadius)),
				core.FloatParam("body_depth", "Body depth", float64(p.BodyDepth)),
				core.FloatParam("body_intensity", "Body intensity", float64(p.BodyIntensity)),
			},
		},
		{
			Name: "Tracks",
			Params: []core.Parameter{
				core.IntParam("presses", "Presses", st.Presses),
				core.IntParam("pressed", "Pressed samples", st.Pressed),
				core.FloatParam("min_elevation", "Deepest", float64(st.MinElevation)),
				core.FloatParam("mean_intensity", "Mean darkening", float64(st.MeanIntensity)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "max_speed", Label: "Max speed", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 20},
		{Key: "turn_rate", Label: "Turn rate", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 6},
		{Key: "wheel_radius", Label: "Wheel radius", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 2},
		{Key: "wheel_depth", Label: "Wheel depth", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1},
		{Key: "wheel_intensity", Label: "Wheel intensity", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "body_depth", Label: "Body depth", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1},
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64},
	}
}

func (w *World) control(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range w.ParameterControls() {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetFloatParameter updates an adjustable vehicle parameter, clamped to its
// control bounds. It reports false for unknown keys.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := w.control(key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	p := w.car.Params()
	dst, ok := vehicleFields(&p)[key]
	if !ok {
		return false
	}
	*dst = float32(ctrl.Clamp(value))
	w.car.SetParams(p)
	w.cfg.Vehicle = p
	return true
}

// SetIntParameter updates an adjustable integer parameter.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := w.control(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	switch key {
	case "workers":
		w.cfg.Workers = int(ctrl.Clamp(float64(value)))
		return true
	}
	return false
}
