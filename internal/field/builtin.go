package field

import (
	"noisefield/internal/core"
	"noisefield/pkg/noise"
)

// Builtin samples the seed-driven lattice evaluators from pkg/noise. This is
// the authoritative path: the permutation table is rebuilt from the seed on
// every Reset, so the seed is always observable in the output.
type Builtin struct {
	base
	gen *noise.Noise
}

// NewBuiltin constructs a builtin-backed field.
func NewBuiltin(cfg noise.Fractal, size core.Size, seed int64) *Builtin {
	f := &Builtin{base: base{size: size, cfg: cfg}}
	f.base.rebuild = func() { f.gen = noise.New(f.seed) }
	f.Reset(seed)
	return f
}

// Name returns the backend identifier.
func (f *Builtin) Name() string { return "builtin" }

// At returns the fractal noise sample at (x, y).
func (f *Builtin) At(x, y float64) float64 {
	return f.gen.Fractal2(x, y, f.cfg)
}
