//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"snowtrack/internal/app"
	"snowtrack/internal/sim"
	_ "snowtrack/internal/surfaces"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := sim.New(cfg.World())
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.New(world, cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("snowtrack: " + world.Surface().Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
