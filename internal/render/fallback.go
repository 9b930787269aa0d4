//go:build ebiten

package render

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"backdrop/pkg/automaton"
)

// FallbackView is the always-available visual behind the page: a precomputed
// vertical gradient with the cellular automaton playing over it. It holds no
// subsystem state; the manager only flips its visibility.
type FallbackView struct {
	engine  *automaton.Engine
	palette Palette

	cellSize int
	w, h     int

	gradient *ebiten.Image
	cellImg  *ebiten.Image
	cellBuf  []byte

	visible bool
	paused  bool
}

// NewFallbackView builds the gradient backdrop and the automaton layer for
// the given viewport. The view starts visible: the fallback is what shows
// until (and unless) the effect activates.
func NewFallbackView(engine *automaton.Engine, palette Palette, w, h, cellSize int) *FallbackView {
	v := &FallbackView{
		engine:   engine,
		palette:  palette,
		cellSize: cellSize,
		visible:  true,
	}
	v.Resize(w, h)
	return v
}

// SetVisible toggles the fallback, satisfying the manager's collaborator
// contract.
func (v *FallbackView) SetVisible(visible bool) { v.visible = visible }

// Visible reports whether the fallback is currently shown.
func (v *FallbackView) Visible() bool { return v.visible }

// SetPaused stops and resumes automaton advancement.
func (v *FallbackView) SetPaused(p bool) { v.paused = p }

// Paused reports whether the automaton is held.
func (v *FallbackView) Paused() bool { return v.paused }

// Advance runs the automaton's own clock while the fallback is the active
// visual. The generation cadence is independent of how often Draw runs.
func (v *FallbackView) Advance(dt float64) {
	if !v.visible || v.paused {
		return
	}
	v.engine.Advance(time.Duration(dt * float64(time.Second)))
}

// Resize rebuilds the gradient and the automaton grid for a new viewport.
func (v *FallbackView) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	v.w, v.h = w, h

	// The gradient is precomputed at a fixed low resolution and stretched;
	// banding is hidden by the automaton layer above it.
	const gradH = 256
	if v.gradient == nil {
		v.gradient = ebiten.NewImage(1, gradH)
	}
	buf := make([]byte, gradH*4)
	fillVerticalGradientRGBA(buf, 1, gradH, v.palette.GradientTop, v.palette.GradientBottom)
	v.gradient.WritePixels(buf)

	v.engine.Resize(w, h)
	grid := v.engine.Grid()
	if v.cellImg != nil {
		v.cellImg.Dispose()
	}
	v.cellImg = ebiten.NewImage(grid.Width(), grid.Height())
	v.cellBuf = make([]byte, grid.Width()*grid.Height()*4)
}

// Draw paints the gradient and the current automaton generation, scaled so
// one cell covers cellSize pixels.
func (v *FallbackView) Draw(screen *ebiten.Image) {
	if !v.visible {
		return
	}

	op := &ebiten.DrawImageOptions{}
	gw, gh := v.gradient.Bounds().Dx(), v.gradient.Bounds().Dy()
	op.GeoM.Scale(float64(v.w)/float64(gw), float64(v.h)/float64(gh))
	screen.DrawImage(v.gradient, op)

	grid := v.engine.Grid()
	fillCellsRGBA(v.cellBuf, grid.Cells(), v.palette.CellAlive, v.palette.CellDead)
	v.cellImg.WritePixels(v.cellBuf)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.cellSize), float64(v.cellSize))
	screen.DrawImage(v.cellImg, op)
}
