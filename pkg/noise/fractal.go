package noise

// Fractal describes a multi-octave accumulation of one evaluator. The core
// reads it per call and never retains it; editors hand over a fresh copy
// before each sample batch.
type Fractal struct {
	Type        Type
	Octaves     int
	Frequency   float64
	Lacunarity  float64
	Persistence float64
	Gain        float64
}

// DefaultFractal returns the tuning the interactive viewer starts from.
func DefaultFractal() Fractal {
	return Fractal{
		Type:        TypeSimplex,
		Octaves:     4,
		Frequency:   0.2,
		Lacunarity:  1.9,
		Persistence: 1.8,
		Gain:        0.33,
	}
}

// Fractal2 sums Octaves frequency/amplitude-scaled samples of the selected 2D
// evaluator. The first octave carries amplitude Gain; Octaves <= 0 yields 0.
// The total is not clamped, callers remap it for display.
func (n *Noise) Fractal2(x, y float64, f Fractal) float64 {
	total := 0.0
	frequency := f.Frequency
	amplitude := f.Gain
	for o := 0; o < f.Octaves; o++ {
		total += n.Eval2(f.Type, x*frequency, y*frequency) * amplitude
		frequency *= f.Lacunarity
		amplitude *= f.Persistence
	}
	return total
}

// Fractal3 is the 3D analog of Fractal2.
func (n *Noise) Fractal3(x, y, z float64, f Fractal) float64 {
	total := 0.0
	frequency := f.Frequency
	amplitude := f.Gain
	for o := 0; o < f.Octaves; o++ {
		total += n.Eval3(f.Type, x*frequency, y*frequency, z*frequency) * amplitude
		frequency *= f.Lacunarity
		amplitude *= f.Persistence
	}
	return total
}
