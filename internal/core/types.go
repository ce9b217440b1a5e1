package core

import "noisefield/pkg/noise"

// Size describes the dimensions of a rendered field in samples.
type Size struct {
	W int
	H int
}

// Field is the contract between the noise core and the front ends: a named,
// reseedable, read-only scalar field sampled per pixel. At must be safe for
// concurrent callers.
type Field interface {
	Name() string
	Size() Size
	Reset(seed int64)
	At(x, y float64) float64
}

// Factory constructs a Field for a fractal configuration.
type Factory func(cfg noise.Fractal, size Size, seed int64) Field

var backends = map[string]Factory{}

// Register adds a field backend factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// Backends exposes the registry of available field factories.
func Backends() map[string]Factory {
	return backends
}
