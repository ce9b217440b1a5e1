// Package field implements the renderable noise fields behind the viewer and
// the exporter. Two backends register themselves: "builtin", the seed-driven
// lattice evaluators from pkg/noise, and "library", the off-the-shelf
// generator path the original tool used for previews.
package field

import (
	"noisefield/internal/core"
	"noisefield/pkg/noise"
)

// base carries the state shared by all backends: the fractal configuration,
// the seed, and the hook used to regenerate the backend's evaluators when the
// seed changes.
type base struct {
	size    core.Size
	seed    int64
	cfg     noise.Fractal
	rebuild func()
}

// Size returns the field dimensions in samples.
func (b *base) Size() core.Size { return b.size }

// Seed returns the seed currently driving the field.
func (b *base) Seed() int64 { return b.seed }

// Config returns a copy of the current fractal configuration.
func (b *base) Config() noise.Fractal { return b.cfg }

// Reset reseeds the field and regenerates its evaluators.
func (b *base) Reset(seed int64) {
	b.seed = seed
	if b.rebuild != nil {
		b.rebuild()
	}
}

func init() {
	core.Register("builtin", func(cfg noise.Fractal, size core.Size, seed int64) core.Field {
		return NewBuiltin(cfg, size, seed)
	})
	core.Register("library", func(cfg noise.Fractal, size core.Size, seed int64) core.Field {
		return NewLibrary(cfg, size, seed)
	})
}
