//go:build ebiten

package app

import (
	"context"
	"image/color"

	"snowtrack/internal/core"
	"snowtrack/internal/render"
	"snowtrack/internal/sim"
	"snowtrack/internal/ui"
	"snowtrack/internal/vehicle"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sim.World to the ebiten.Game interface.
type Game struct {
	world   *sim.World
	painter *render.MeshPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	camera  render.Camera
	imprint *core.FixedStep

	dt     float32
	paused bool
	err    error

	width, height int
}

// New constructs a Game for world.
func New(world *sim.World, cfg *Config) (*Game, error) {
	painter, err := render.NewMeshPainter(world.Grid().Segments())
	if err != nil {
		return nil, err
	}
	painter.SetSurfaceBaseColor(world.Surface().BaseColor)
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		world:   world,
		painter: painter,
		overlay: ui.NewOverlay(world),
		camera:  render.DefaultCamera(),
		imprint: core.NewFixedStep(cfg.PressRate),
		dt:      1 / float32(tps),
		width:   cfg.Width,
		height:  cfg.Height,
	}
	if cfg.HUDWidth > 0 {
		g.hud = ui.NewHUD(world, cfg.HUDWidth)
	}
	return g, nil
}

// Update handles per-frame logic and advances the world.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset()
	}

	g.overlay.Update()
	g.hud.Update(g.width - g.hud.Width())

	if g.paused {
		return nil
	}
	g.world.Step(controls(), g.dt)
	if g.imprint.ShouldStep() {
		if _, err := g.world.Imprint(); err != nil {
			return err
		}
	}
	return nil
}

func controls() vehicle.Controls {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return vehicle.Controls{
		Forward: pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Reverse: pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:    pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:   pressed(ebiten.KeyArrowRight, ebiten.KeyD),
	}
}

// Draw renders the terrain, the vehicle and the panels.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 120, G: 150, B: 185, A: 255})

	attrs, err := g.world.Attributes(context.Background())
	if err != nil {
		g.err = err
		return
	}
	v := g.world.Vehicle()
	proj := render.NewProjector(g.camera.Follow(v.X, v.Z), g.width-g.hud.Width(), g.height)
	g.painter.Draw(screen, attrs, proj)

	w := v.Wheels()
	var body [4]mgl32.Vec3
	for i, k := range [4]int{0, 1, 3, 2} {
		body[i] = mgl32.Vec3{w[k].X(), 0.15, w[k].Y()}
	}
	g.painter.DrawQuad(screen, body, color.NRGBA{R: 200, G: 40, B: 30, A: 255}, proj)

	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size so the view fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
