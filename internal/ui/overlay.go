//go:build ebiten

package ui

import (
	"image/color"

	"snowtrack/internal/render"
	"snowtrack/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals over the terrain view: a top-down
// minimap of the grid (M) and a readout of the sample under the vehicle (I).
type Overlay struct {
	world       *sim.World
	showMap     bool
	showReadout bool

	mapImg *ebiten.Image
	mapBuf []byte
	marker *ebiten.Image
}

// NewOverlay constructs an overlay for world.
func NewOverlay(world *sim.World) *Overlay {
	o := &Overlay{world: world, showReadout: true}
	o.marker = ebiten.NewImage(3, 3)
	o.marker.Fill(color.RGBA{R: 230, G: 60, B: 40, A: 255})
	return o
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMap = !o.showMap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showReadout = !o.showReadout
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showMap {
		o.drawMap(screen)
	}
	if o.showReadout {
		v := o.world.Vehicle()
		text.Draw(screen, Readout(o.world.Grid(), v.X, v.Z), basicfont.Face7x13, 8, screen.Bounds().Dy()-10, color.White)
	}
}

func (o *Overlay) drawMap(screen *ebiten.Image) {
	g := o.world.Grid()
	n := g.Segments() + 1
	if o.mapImg == nil || o.mapImg.Bounds().Dx() != n {
		o.mapImg = ebiten.NewImage(n, n)
		o.mapBuf = make([]byte, 4*n*n)
	}
	depth := o.world.Vehicle().Params().WheelDepth
	render.FillHeightRGBA(o.mapBuf, g.Elevations(), g.Intensities(), o.world.Surface().BaseColor, depth)
	o.mapImg.WritePixels(o.mapBuf)

	const side = 160.0
	scale := side / float64(n)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(8, 8)
	screen.DrawImage(o.mapImg, op)

	v := o.world.Vehicle()
	i := g.WorldToIndex(v.X, v.Z)
	col, row := g.Coords(i)
	mop := &ebiten.DrawImageOptions{}
	mop.GeoM.Translate(8+float64(col)*scale-1, 8+float64(row)*scale-1)
	screen.DrawImage(o.marker, mop)
}
