// Package render draws the subsystem's visuals: the GPU particle scenes on
// the active path and the automaton-over-gradient fallback. CPU pixel work
// lives in untagged files so it stays testable without a display.
package render

import "image/color"

// fillCellsRGBA converts binary cell data (0/1) into RGBA pixels in buf,
// using alive for live cells and dead for the rest.
func fillCellsRGBA(buf []byte, cells []uint8, alive, dead color.RGBA) {
	for i, c := range cells {
		base := i * 4
		col := dead
		if c != 0 {
			col = alive
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillVerticalGradientRGBA fills a w*h RGBA buffer with a top-to-bottom
// blend between two colors.
func fillVerticalGradientRGBA(buf []byte, w, h int, top, bottom color.RGBA) {
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		col := lerpRGBA(top, bottom, t)
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}
