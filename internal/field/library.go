package field

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"

	"noisefield/internal/core"
	"noisefield/pkg/noise"
)

// Library reproduces the original tool's preview path, which leaned on
// off-the-shelf generators instead of the hand-written evaluators. Perlin
// comes from aquilax/go-perlin (a single-iteration generator, the octave
// summation stays here so all backends share the same fractal semantics) and
// Simplex from ojrac/opensimplex-go. Neither library ships value noise, so
// TypeValue falls back to the builtin evaluator with the same seed.
type Library struct {
	base
	perl *perlin.Perlin
	simp opensimplex.Noise
	val  *noise.Noise
}

// NewLibrary constructs a library-backed field.
func NewLibrary(cfg noise.Fractal, size core.Size, seed int64) *Library {
	f := &Library{base: base{size: size, cfg: cfg}}
	f.base.rebuild = func() {
		f.perl = perlin.NewPerlin(2, 2, 1, f.seed)
		f.simp = opensimplex.New(f.seed)
		f.val = noise.New(f.seed)
	}
	f.Reset(seed)
	return f
}

// Name returns the backend identifier.
func (f *Library) Name() string { return "library" }

// At returns the fractal noise sample at (x, y).
func (f *Library) At(x, y float64) float64 {
	total := 0.0
	frequency := f.cfg.Frequency
	amplitude := f.cfg.Gain
	for o := 0; o < f.cfg.Octaves; o++ {
		total += f.eval(f.cfg.Type, x*frequency, y*frequency) * amplitude
		frequency *= f.cfg.Lacunarity
		amplitude *= f.cfg.Persistence
	}
	return total
}

func (f *Library) eval(t noise.Type, x, y float64) float64 {
	switch t {
	case noise.TypeValue:
		return f.val.Value2(x, y)
	case noise.TypePerlin:
		return f.perl.Noise2D(x, y)
	default:
		return f.simp.Eval2(x, y)
	}
}
