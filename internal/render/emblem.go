//go:build ebiten

package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"backdrop/internal/scene"
)

// Emblem is the small secondary scene anchored inside the page: a pair of
// nested squares spinning continuously, tilted by scroll progress, with a
// slow sinusoidal scale breathing. It renders only while its anchor is
// visible; losing visibility snaps opacity to zero and regaining it fades
// back in.
type Emblem struct {
	target *ebiten.Image
	white  *ebiten.Image
	dot    *ebiten.Image

	palette Palette
	size    int

	angle   float64
	tilt    float64
	breathe float64
	opacity float32

	resources []scene.Releaser
}

func newEmblem(size int, palette Palette) (*Emblem, error) {
	if size <= 0 {
		return nil, fmt.Errorf("emblem surface size %d has zero extent", size)
	}
	s := &Emblem{palette: palette, size: size, breathe: 1}
	s.target = ebiten.NewImage(size, size)
	s.resources = append(s.resources, &imageResource{img: s.target})
	s.white = ebiten.NewImage(3, 3)
	s.white.Fill(color.White)
	s.resources = append(s.resources, &imageResource{img: s.white})
	s.dot = s.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	return s, nil
}

// Target exposes the scene's texture for compositing.
func (s *Emblem) Target() *ebiten.Image { return s.target }

// Update advances the transform: continuous rotation, a scroll-linked tilt
// and the scale breathing, plus a short fade-in after becoming visible.
func (s *Emblem) Update(in scene.FrameInput) {
	s.angle += in.Delta * 0.8
	s.tilt = in.ScrollFraction * math.Pi / 5
	s.breathe = 1 + 0.06*math.Sin(in.Time*2)
	s.opacity += float32(in.Delta * 4)
	if s.opacity > 1 {
		s.opacity = 1
	}
}

// Hide snaps opacity to zero, per the anchor-visibility contract.
func (s *Emblem) Hide() { s.opacity = 0 }

// Resources lists the GPU objects this scene owns.
func (s *Emblem) Resources() []scene.Releaser { return s.resources }

// Render draws the nested squares into the target.
func (s *Emblem) Render() {
	s.target.Clear()
	if s.opacity <= 0 {
		return
	}

	c := float64(s.size) / 2
	near := s.palette.DepthColor(1)
	far := s.palette.DepthColor(0.3)
	s.ring(c, c*0.62*s.breathe, s.angle, near)
	s.ring(c, c*0.40*s.breathe, -s.angle*1.4, far)
}

// ring draws one rotated square outline as four thin quads.
func (s *Emblem) ring(center, radius, angle float64, col color.RGBA) {
	const thickness = 2.5
	squash := math.Cos(s.tilt)

	corner := func(i int) (float32, float32) {
		a := angle + float64(i)*math.Pi/2
		x := center + radius*math.Cos(a)
		y := center + radius*math.Sin(a)*squash
		return float32(x), float32(y)
	}

	r := float32(col.R) / 255 * s.opacity
	g := float32(col.G) / 255 * s.opacity
	b := float32(col.B) / 255 * s.opacity
	a := s.opacity

	var vertices []ebiten.Vertex
	var indices []uint16
	for i := 0; i < 4; i++ {
		x0, y0 := corner(i)
		x1, y1 := corner((i + 1) % 4)
		// Extrude the edge perpendicular to itself.
		nx, ny := y1-y0, x0-x1
		l := float32(math.Hypot(float64(nx), float64(ny)))
		if l == 0 {
			continue
		}
		nx, ny = nx/l*thickness/2, ny/l*thickness/2

		base := uint16(len(vertices))
		vertices = append(vertices,
			ebiten.Vertex{DstX: x0 - nx, DstY: y0 - ny, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x0 + nx, DstY: y0 + ny, SrcX: 2, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x1 + nx, DstY: y1 + ny, SrcX: 2, SrcY: 2, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
			ebiten.Vertex{DstX: x1 - nx, DstY: y1 - ny, SrcX: 1, SrcY: 2, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	s.target.DrawTriangles(vertices, indices, s.dot, &ebiten.DrawTrianglesOptions{})
}
