package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette groups the colors the two visuals share so they read as one theme.
type Palette struct {
	// CellAlive and CellDead paint the fallback automaton.
	CellAlive color.RGBA
	CellDead  color.RGBA
	// GradientTop and GradientBottom paint the static fallback backdrop.
	GradientTop    color.RGBA
	GradientBottom color.RGBA
	// Depth tints particles from far to near.
	Depth []color.RGBA
}

// NewPalette derives a theme from a base hue in degrees. Blending happens in
// Luv so the depth ramp stays perceptually even.
func NewPalette(hue float64) Palette {
	base := colorful.Hsv(hue, 0.55, 0.85)
	deep := colorful.Hsv(hue, 0.65, 0.12)
	far := colorful.Hsv(hue, 0.40, 0.35)

	p := Palette{
		CellAlive:      toRGBA(base, 220),
		CellDead:       color.RGBA{},
		GradientTop:    toRGBA(deep, 255),
		GradientBottom: toRGBA(deep.BlendLuv(base, 0.25), 255),
	}
	const steps = 16
	p.Depth = make([]color.RGBA, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		p.Depth[i] = toRGBA(far.BlendLuv(base, t), 255)
	}
	return p
}

// DepthColor picks the tint for a normalized depth in [0, 1].
func (p Palette) DepthColor(depth float64) color.RGBA {
	if len(p.Depth) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}
	return p.Depth[int(depth*float64(len(p.Depth)-1))]
}

func toRGBA(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: a}
}
