package render

// shade remaps a sample from the nominal [-1,1] range to an 8-bit gray level.
// Fractal sums can overshoot the nominal range, so the result is clamped.
func shade(v float64) uint8 {
	s := (v + 1) / 2 * 255
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// fillRowRGBA rasterizes one row of samples into a w-wide grayscale RGBA
// buffer. Pixel coordinates are fed to the sampler directly, matching the
// wallpaper mapping of the original tool.
func fillRowRGBA(buf []byte, w, y int, at func(x, y float64) float64) {
	base := y * w * 4
	for x := 0; x < w; x++ {
		g := shade(at(float64(x), float64(y)))
		i := base + x*4
		buf[i+0] = g
		buf[i+1] = g
		buf[i+2] = g
		buf[i+3] = 255
	}
}
