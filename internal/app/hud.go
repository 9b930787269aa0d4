//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD is a read-only status overlay in the top-left corner.
type HUD struct {
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs the overlay, hidden or shown per the config.
func NewHUD(visible bool) *HUD {
	return &HUD{visible: visible}
}

// Toggle flips overlay visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw paints the given status lines over the frame.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	if !h.visible || len(lines) == 0 {
		return
	}

	const lineHeight = 16
	width := 0
	for _, l := range lines {
		if w := len(l) * 7; w > width {
			width = w
		}
	}
	height := len(lines)*lineHeight + 8

	if h.panel == nil || h.panel.Bounds().Dx() < width+16 || h.panel.Bounds().Dy() < height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(width+16, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	for i, l := range lines {
		text.Draw(h.panel, l, basicfont.Face7x13, 8, 16+i*lineHeight, color.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 8)
	screen.DrawImage(h.panel, op)
}
