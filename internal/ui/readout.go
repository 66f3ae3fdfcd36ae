package ui

import (
	"fmt"

	"snowtrack/internal/terrain"
)

// Readout describes the sample nearest to world point (x, z).
func Readout(g *terrain.Grid, x, z float32) string {
	i := g.WorldToIndex(x, z)
	col, row := g.Coords(i)
	return fmt.Sprintf("(%.2f, %.2f) -> #%d [%d,%d]  elev %.3f  track %.2f",
		x, z, i, col, row, g.Elevation(i), g.TrackIntensity(i))
}
