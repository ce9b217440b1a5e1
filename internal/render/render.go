// Package render rasterizes a scalar field into grayscale RGBA pixels. Rows
// are sampled in parallel; the sampler must be safe for concurrent callers,
// which every field backend guarantees.
package render

import (
	"image"

	"github.com/dgravesa/go-parallel/parallel"
)

// Fill samples at into buf, a w*h*4 RGBA buffer, partitioned by row across
// parallel workers.
func Fill(buf []byte, w, h int, at func(x, y float64) float64) {
	if w <= 0 || h <= 0 || len(buf) < w*h*4 {
		return
	}
	parallel.For(h, func(y, _ int) {
		fillRowRGBA(buf, w, y, at)
	})
}

// Snapshot renders a w x h image of the field, for export.
func Snapshot(w, h int, at func(x, y float64) float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Fill(img.Pix, w, h, at)
	return img
}
