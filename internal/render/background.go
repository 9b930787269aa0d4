//go:build ebiten

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"backdrop/internal/particles"
	"backdrop/internal/scene"
)

// Background is the full-viewport scene: the particle field rendered as a
// batched triangle list into its own target texture. It reads particle
// positions; only the manager advances them.
type Background struct {
	target *ebiten.Image
	white  *ebiten.Image
	dot    *ebiten.Image

	buf     *particles.Buffer
	palette Palette

	w, h     int
	vertices []ebiten.Vertex
	indices  []uint16
	in       scene.FrameInput
	opacity  float32

	resources []scene.Releaser
}

func newBackground(w, h int, buf *particles.Buffer, palette Palette) (*Background, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("background surface %dx%d has zero extent", w, h)
	}
	s := &Background{
		buf:     buf,
		palette: palette,
		w:       w,
		h:       h,
		opacity: 1,
	}
	s.target = ebiten.NewImage(w, h)
	s.resources = append(s.resources, &imageResource{img: s.target})

	// A 3x3 white texture sampled at its center texel keeps the triangle
	// edges from bleeding neighbors in.
	s.white = ebiten.NewImage(3, 3)
	s.white.Fill(color.White)
	s.resources = append(s.resources, &imageResource{img: s.white})
	s.dot = s.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	count := buf.Count()
	s.vertices = make([]ebiten.Vertex, 0, count*4)
	s.indices = make([]uint16, 0, count*6)
	for i := 0; i < count; i++ {
		base := uint16(i * 4)
		s.indices = append(s.indices, base, base+1, base+2, base, base+2, base+3)
	}
	return s, nil
}

// Target exposes the scene's texture for compositing.
func (s *Background) Target() *ebiten.Image { return s.target }

// Update stores the frame parameters the next Render reads.
func (s *Background) Update(in scene.FrameInput) { s.in = in }

// Hide drives the scene's opacity to zero.
func (s *Background) Hide() { s.opacity = 0 }

// Resources lists the GPU objects this scene owns.
func (s *Background) Resources() []scene.Releaser { return s.resources }

// Render projects every particle into the target with pointer parallax and
// a scroll-linked vertical drift, one quad per particle, all submitted in a
// single triangle batch.
func (s *Background) Render() {
	s.target.Clear()
	if s.opacity <= 0 {
		return
	}

	bound := float64(s.buf.Bound())
	pos := s.buf.Positions()
	cx := float64(s.w) / 2
	cy := float64(s.h) / 2
	scrollShift := s.in.ScrollFraction * float64(s.h) * 0.12

	s.vertices = s.vertices[:0]
	for i := 0; i < s.buf.Count(); i++ {
		x := float64(pos[3*i+0]) / bound
		y := float64(pos[3*i+1]) / bound
		z := float64(pos[3*i+2]) / bound
		depth := (z + 1) / 2

		parallax := 14 * depth
		px := cx + x*cx*0.95 + s.in.PointerX*parallax
		py := cy + y*cy*0.95 + s.in.PointerY*parallax - scrollShift*depth
		size := 1.0 + depth*2.2

		col := s.palette.DepthColor(depth)
		r := float32(col.R) / 255 * s.opacity
		g := float32(col.G) / 255 * s.opacity
		b := float32(col.B) / 255 * s.opacity
		a := float32(0.35+0.65*depth) * s.opacity

		x0 := float32(px - size)
		y0 := float32(py - size)
		x1 := float32(px + size)
		y1 := float32(py + size)
		s.vertices = append(s.vertices,
			ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x1, DstY: y0, SrcX: 2, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 2, SrcY: 2, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 1, SrcY: 2, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		)
	}

	op := &ebiten.DrawTrianglesOptions{}
	s.target.DrawTriangles(s.vertices, s.indices, s.dot, op)
}
