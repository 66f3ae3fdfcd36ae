package main

import (
	"context"
	"fmt"
	"time"

	"snowtrack/internal/core"
	"snowtrack/internal/sim"
	"snowtrack/internal/vehicle"
)

const tickDT = float32(1.0 / 60)

type routeResult struct {
	id     int
	seed   int64
	stats  sim.Stats
	dist   float32
	derive time.Duration
	world  *sim.World
	err    error
}

func (r routeResult) String() string {
	if r.err != nil {
		return fmt.Sprintf("route %3d seed=%d error: %v", r.id, r.seed, r.err)
	}
	return fmt.Sprintf("route %3d seed=%-6d presses=%5d pressed=%6d deepest=%.3f mean=%.4f max=%.2f dist=%.1f derive=%v",
		r.id, r.seed, r.stats.Presses, r.stats.Pressed, r.stats.MinElevation, r.stats.MeanIntensity,
		r.stats.MaxIntensity, r.dist, r.derive.Round(time.Microsecond))
}

// randomControls holds a random throttle and steering choice for a few
// dozen ticks at a time.
type randomControls struct {
	rng  *core.RNG
	cur  vehicle.Controls
	left int
}

func (rc *randomControls) next() vehicle.Controls {
	if rc.left <= 0 {
		rc.left = rc.rng.IntRange(20, 90)
		rc.cur = vehicle.Controls{
			Forward: rc.rng.Chance(0.85),
		}
		rc.cur.Reverse = !rc.cur.Forward
		if rc.rng.Chance(0.6) {
			if rc.rng.Bool() {
				rc.cur.Left = true
			} else {
				rc.cur.Right = true
			}
		}
	}
	rc.left--
	return rc.cur
}

// runRoute drives one vehicle for ticks steps, pressing every pressEvery
// ticks, then derives the render buffers once.
func runRoute(ctx context.Context, cfg sim.Config, id int, seed int64, ticks, pressEvery int) routeResult {
	res := routeResult{id: id, seed: seed}
	w, err := sim.New(cfg)
	if err != nil {
		res.err = err
		return res
	}
	if pressEvery <= 0 {
		pressEvery = 1
	}
	rc := &randomControls{rng: core.NewRNG(seed)}
	for t := 0; t < ticks; t++ {
		px, pz := w.Vehicle().X, w.Vehicle().Z
		w.Step(rc.next(), tickDT)
		res.dist += vecLen(w.Vehicle().X-px, w.Vehicle().Z-pz)
		if t%pressEvery != 0 {
			continue
		}
		if _, err := w.Imprint(); err != nil {
			res.err = err
			return res
		}
	}
	start := time.Now()
	if _, err := w.Attributes(ctx); err != nil {
		res.err = err
		return res
	}
	res.derive = time.Since(start)
	res.stats = w.Stats()
	res.world = w
	return res
}
