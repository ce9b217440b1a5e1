package app

import (
	"flag"

	"noisefield/pkg/noise"
)

// Config represents the command-line parameters shared by the viewer and the
// wallpaper exporter.
type Config struct {
	Backend     string
	Type        string
	Octaves     int
	Frequency   float64
	Lacunarity  float64
	Persistence float64
	Gain        float64
	Seed        int64
	Size        int
	Scale       int
}

// NewConfig returns a Config populated with the viewer defaults.
func NewConfig() *Config {
	f := noise.DefaultFractal()
	return &Config{
		Backend:     "builtin",
		Type:        f.Type.String(),
		Octaves:     f.Octaves,
		Frequency:   f.Frequency,
		Lacunarity:  f.Lacunarity,
		Persistence: f.Persistence,
		Gain:        f.Gain,
		Seed:        0,
		Size:        256,
		Scale:       2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "field backend (builtin or library)")
	fs.StringVar(&c.Type, "type", c.Type, "noise type (value, perlin or simplex)")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "fractal octaves")
	fs.Float64Var(&c.Frequency, "frequency", c.Frequency, "base frequency")
	fs.Float64Var(&c.Lacunarity, "lacunarity", c.Lacunarity, "per-octave frequency multiplier")
	fs.Float64Var(&c.Persistence, "persistence", c.Persistence, "per-octave amplitude multiplier")
	fs.Float64Var(&c.Gain, "gain", c.Gain, "first-octave amplitude")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "permutation table seed")
	fs.IntVar(&c.Size, "size", c.Size, "field size in samples (square)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
}

// Fractal converts the flag values into a fractal configuration.
func (c *Config) Fractal() (noise.Fractal, error) {
	t, err := noise.ParseType(c.Type)
	if err != nil {
		return noise.Fractal{}, err
	}
	return noise.Fractal{
		Type:        t,
		Octaves:     c.Octaves,
		Frequency:   c.Frequency,
		Lacunarity:  c.Lacunarity,
		Persistence: c.Persistence,
		Gain:        c.Gain,
	}, nil
}
