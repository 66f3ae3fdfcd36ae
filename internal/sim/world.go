// Package sim sequences one vehicle over one deformable grid: it moves the
// vehicle, presses the terrain when the vehicle has moved, and keeps the
// render buffers current. It has no rendering or input dependencies, so the
// GUI and the headless tools share it.
package sim

import (
	"context"
	"errors"
	"fmt"

	"snowtrack/internal/core"
	"snowtrack/internal/terrain"
	"snowtrack/internal/vehicle"
)

// ErrUnknownSurface is returned when the configured surface is not registered.
var ErrUnknownSurface = errors.New("sim: unknown surface")

// World owns the grid, the vehicle and the render buffers derived from them.
type World struct {
	cfg     Config
	surface core.Surface
	grid    *terrain.Grid
	car     *vehicle.Vehicle
	attrs   *terrain.Attributes

	lastX, lastZ float32
	needsFull    bool
	presses      int
}

// Stats reports the world's press count alongside the terrain summary.
type Stats struct {
	Presses int
	terrain.Stats
}

// New builds a world from cfg.
func New(cfg Config) (*World, error) {
	surface, ok := core.LookupSurface(cfg.Surface, cfg.SurfaceOptions)
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSurface, cfg.Surface, core.SurfaceNames())
	}
	grid, err := terrain.New(cfg.Size, cfg.Segments)
	if err != nil {
		return nil, fmt.Errorf("sim: build grid: %w", err)
	}
	car := vehicle.New(cfg.Vehicle)
	car.SetBounds(cfg.Size / 2)
	w := &World{
		cfg:       cfg,
		surface:   surface,
		grid:      grid,
		car:       car,
		attrs:     &terrain.Attributes{},
		needsFull: true,
	}
	w.lastX, w.lastZ = car.X, car.Z
	return w, nil
}

// Name returns the world identifier.
func (w *World) Name() string { return "snowtrack" }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Surface returns the active surface preset.
func (w *World) Surface() core.Surface { return w.surface }

// Grid exposes the deformable terrain.
func (w *World) Grid() *terrain.Grid { return w.grid }

// Vehicle exposes the driven vehicle.
func (w *World) Vehicle() *vehicle.Vehicle { return w.car }

// Step moves the vehicle by dt seconds under c. It does not touch the terrain.
func (w *World) Step(c vehicle.Controls, dt float32) {
	w.car.Step(c, dt)
}

// Imprint presses the vehicle's pattern into the terrain if the vehicle moved
// since the last imprint. It reports whether a press happened.
func (w *World) Imprint() (bool, error) {
	if w.car.X == w.lastX && w.car.Z == w.lastZ {
		return false, nil
	}
	pattern := w.car.Pattern(w.surface.DepthScale, w.surface.IntensityScale)
	if err := w.grid.ApplyMultiPointDeformation(w.car.X, w.car.Z, pattern); err != nil {
		return false, fmt.Errorf("sim: imprint at (%.3f, %.3f): %w", w.car.X, w.car.Z, err)
	}
	w.lastX, w.lastZ = w.car.X, w.car.Z
	w.presses++
	return true, nil
}

// Attributes returns render buffers reflecting every press so far. After
// construction or a reset the whole grid is derived, in parallel when the
// config asks for workers; otherwise only the pressed window is refreshed.
// The returned buffers are reused between calls.
func (w *World) Attributes(ctx context.Context) (*terrain.Attributes, error) {
	if w.needsFull {
		if err := w.grid.DeriveRenderAttributesParallel(ctx, w.attrs, w.cfg.Workers); err != nil {
			return nil, fmt.Errorf("sim: derive attributes: %w", err)
		}
		w.needsFull = false
		return w.attrs, nil
	}
	w.grid.RefreshRenderAttributes(w.attrs)
	return w.attrs, nil
}

// Reset clears all tracks and parks the vehicle at the origin.
func (w *World) Reset() {
	w.grid.Reset()
	w.car.Reset()
	w.lastX, w.lastZ = w.car.X, w.car.Z
	w.needsFull = true
	w.presses = 0
}

// Stats summarizes the tracks laid so far.
func (w *World) Stats() Stats {
	return Stats{Presses: w.presses, Stats: w.grid.Stats()}
}

// SampleUnderVehicle returns the grid sample the vehicle stands on.
func (w *World) SampleUnderVehicle() int {
	return w.grid.WorldToIndex(w.car.X, w.car.Z)
}
