//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"noisefield/internal/app"
	"noisefield/internal/core"
	_ "noisefield/internal/field"
	"noisefield/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	fractal, err := cfg.Fractal()
	if err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Backends()[cfg.Backend]
	if !ok {
		log.Fatalf("unknown backend %q", cfg.Backend)
	}

	field := factory(fractal, core.Size{W: cfg.Size, H: cfg.Size}, cfg.Seed)
	game := app.New(field, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("noisefield — " + field.Name())
	ebiten.SetWindowSize(cfg.Size*cfg.Scale+ui.PanelWidth, cfg.Size*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
