//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"snowtrack/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel along the right edge of the screen.
// Tab cycles the selection, minus and equals step it, and the on-panel
// buttons respond to mouse clicks.
type HUD struct {
	target  parameterProvider
	panel   *ControlPanel
	width   int
	offsetX int
	img     *ebiten.Image
	pixel   *ebiten.Image
	stats   []core.Parameter
}

// NewHUD builds a HUD for target with the given panel width.
func NewHUD(target parameterProvider, width int) *HUD {
	h := &HUD{target: target, panel: NewControlPanel(target), width: max(width, 0)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Width is the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes values and handles input. offsetX is where the panel starts.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	snap := h.target.Parameters()
	h.panel.Refresh(snap)
	h.stats = h.stats[:0]
	for _, g := range snap.Groups {
		if g.Name == "Tracks" {
			h.stats = append(h.stats, g.Params...)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.panel.Select(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		h.panel.AdjustSelected(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		h.panel.AdjustSelected(1)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		h.click(mx-h.offsetX, my)
	}
}

func (h *HUD) click(x, y int) {
	for i := 0; i < h.panel.Len(); i++ {
		minus, plus := h.buttons(i)
		switch {
		case image.Pt(x, y).In(minus):
			h.panel.Adjust(i, -1)
			return
		case image.Pt(x, y).In(plus):
			h.panel.Adjust(i, 1)
			return
		}
	}
}

// Draw paints the panel at the offset passed to Update.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.img == nil || h.img.Bounds().Dx() != h.width || h.img.Bounds().Dy() != height {
		h.img = ebiten.NewImage(h.width, height)
	}
	h.img.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.img, h.target.Name()+" controls", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, row := range h.panel.Rows() {
		top := controlsTop + i*lineHeight
		labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if row.Selected {
			h.fill(image.Rect(0, top, h.width, top+lineHeight), color.RGBA{R: 36, G: 40, B: 52, A: 255})
			labelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		text.Draw(h.img, row.Label, face, panelPadding, top+labelBaseline, labelColor)
		minus, plus := h.buttons(i)
		w := text.BoundString(face, row.Value).Dx()
		text.Draw(h.img, row.Value, face, minus.Min.X-buttonGap-w, top+labelBaseline, labelColor)
		h.button(minus, "-", row.CanDec)
		h.button(plus, "+", row.CanInc)
	}

	y := controlsTop + h.panel.Len()*lineHeight + infoSpacing
	for _, p := range h.stats {
		text.Draw(h.img, fmt.Sprintf("%s: %s", p.Label, p.Value), face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += 16
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) buttons(i int) (minus, plus image.Rectangle) {
	top := controlsTop + i*lineHeight + (lineHeight-buttonSize)/2
	plus = image.Rect(h.width-panelPadding-buttonSize, top, h.width-panelPadding, top+buttonSize)
	minus = plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	return minus, plus
}

func (h *HUD) fill(r image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.img.DrawImage(h.pixel, op)
}

func (h *HUD) button(r image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fill(r, bg)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
