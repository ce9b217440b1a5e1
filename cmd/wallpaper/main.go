package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"noisefield/internal/app"
	"noisefield/internal/core"
	_ "noisefield/internal/field"
	"noisefield/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = 1920
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "wallpaper.png", "output file (.png, or .raw for raw RGBA bytes)")
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

	start := time.Now()
	img := render.Snapshot(cfg.Size, cfg.Size, field.At)

	if filepath.Ext(*out) == ".raw" {
		err = os.WriteFile(*out, img.Pix, 0o644)
	} else {
		var f *os.File
		if f, err = os.Create(*out); err == nil {
			err = png.Encode(f, img)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wrote %dx%d %s field to %s in %s\n",
		cfg.Size, cfg.Size, field.Name(), *out, time.Since(start).Round(time.Millisecond))
}
