package terrain

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DeriveRenderAttributesParallel is DeriveRenderAttributes split over row
// bands. It runs in two phases with a barrier between them: every position and
// color is written before any normal is estimated, because a normal reads its
// neighbors' positions from other bands.
func (g *Grid) DeriveRenderAttributesParallel(ctx context.Context, dst *Attributes, workers int) error {
	if workers <= 1 {
		g.DeriveRenderAttributes(dst)
		return nil
	}
	dst.ensure(g.Count())
	all := g.full()
	bands := g.bands(workers)

	if err := runBands(ctx, bands, func(z0, z1 int) { g.fillSurfaceRows(dst, all, z0, z1) }); err != nil {
		return err
	}
	if err := runBands(ctx, bands, func(z0, z1 int) { g.fillNormalRows(dst, all, z0, z1) }); err != nil {
		return err
	}
	dst.grid = g
	g.dirty = emptyRect()
	return nil
}

type band struct{ z0, z1 int }

func (g *Grid) bands(workers int) []band {
	rows := g.stride
	if workers > rows {
		workers = rows
	}
	per := (rows + workers - 1) / workers
	out := make([]band, 0, workers)
	for z := 0; z < rows; z += per {
		out = append(out, band{z0: z, z1: min(z+per, rows) - 1})
	}
	return out
}

func runBands(ctx context.Context, bands []band, fn func(z0, z1 int)) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, b := range bands {
		b := b
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(b.z0, b.z1)
			return nil
		})
	}
	return eg.Wait()
}
