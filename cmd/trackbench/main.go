// Command trackbench drives randomized vehicles over headless worlds and
// reports how much terrain each route pressed.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"snowtrack/internal/app"
	"snowtrack/internal/render"
	"snowtrack/internal/sim"
	_ "snowtrack/internal/surfaces"
)

func main() {
	routes := flag.Int("routes", 16, "number of randomized routes to drive")
	ticks := flag.Int("ticks", 1800, "ticks to simulate per route")
	pressEvery := flag.Int("press-every", 2, "ticks between terrain presses")
	workers := flag.Int("workers", runtime.NumCPU(), "routes simulated in parallel")
	seed := flag.Int64("seed", 1, "seed of the first route; route i uses seed+i")
	surface := flag.String("surface", "snow", "surface preset")
	pngPath := flag.String("png", "", "write the top route's height map to this PNG file")
	var overrides app.Overrides
	flag.Var(&overrides, "set", "world or vehicle override in key=value form (repeatable)")
	flag.Parse()

	m := overrides.Map()
	if _, ok := m["surface"]; !ok {
		m["surface"] = *surface
	}
	cfg := sim.FromMap(m)
	if *workers < 1 {
		*workers = 1
	}

	fmt.Printf("Driving %d routes on %s (%d workers, %d ticks, %dx%d grid)\n",
		*routes, cfg.Surface, *workers, *ticks, cfg.Segments, cfg.Segments)

	ctx := context.Background()
	jobs := make(chan int)
	results := make(chan routeResult)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				results <- runRoute(ctx, cfg, id, *seed+int64(id), *ticks, *pressEvery)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for id := 0; id < *routes; id++ {
			jobs <- id
		}
		close(jobs)
	}()

	start := time.Now()
	var all []routeResult
	for res := range results {
		if res.err != nil {
			log.Fatal(res)
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].stats.Pressed != all[j].stats.Pressed {
			return all[i].stats.Pressed > all[j].stats.Pressed
		}
		return all[i].id < all[j].id
	})
	for _, res := range all {
		fmt.Println(res)
	}
	fmt.Printf("Completed in %v\n", time.Since(start).Round(time.Millisecond))

	if *pngPath != "" && len(all) > 0 {
		if err := writeHeightPNG(*pngPath, all[0].world); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote route %d height map to %s\n", all[0].id, *pngPath)
	}
}

func writeHeightPNG(path string, w *sim.World) error {
	g := w.Grid()
	n := g.Segments() + 1
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	render.FillHeightRGBA(img.Pix, g.Elevations(), g.Intensities(), w.Surface().BaseColor, w.Vehicle().Params().WheelDepth)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func vecLen(dx, dz float32) float32 {
	return float32(math.Hypot(float64(dx), float64(dz)))
}
