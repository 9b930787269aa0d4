// Package automaton implements the CPU fallback visual: Conway's Game of
// Life on a toroidal grid sized from the viewport, advanced at a fixed slow
// generation rate decoupled from the render rate, and periodically reseeded
// so sparse boards never go permanently blank.
package automaton

import (
	"math"
	"time"

	"backdrop/pkg/core"
)

// Config holds the tunables of the automaton engine.
type Config struct {
	// CellSize is the edge length of one cell in viewport pixels.
	CellSize int
	// StepsPerSecond is the fixed generation rate.
	StepsPerSecond int
	// ReseedEvery is the interval between revival passes.
	ReseedEvery time.Duration
	// ReseedFraction is the fraction of cells forced alive per revival pass.
	ReseedFraction float64
	// Seed selects the deterministic RNG stream.
	Seed int64
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		CellSize:       12,
		StepsPerSecond: 10,
		ReseedEvery:    3 * time.Second,
		ReseedFraction: 0.002,
		Seed:           42,
	}
}

// Engine advances a Life grid on its own clock. It owns the grid exclusively;
// callers read cells through Cells and never mutate them.
type Engine struct {
	cfg  Config
	grid *Grid
	rng  *core.RNG

	stepEvery   time.Duration
	sinceStep   time.Duration
	sinceReseed time.Duration
	generation  uint64
}

// New constructs an engine sized for the given viewport in pixels.
func New(cfg Config, viewportW, viewportH int) *Engine {
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultConfig().CellSize
	}
	if cfg.StepsPerSecond <= 0 {
		cfg.StepsPerSecond = DefaultConfig().StepsPerSecond
	}
	e := &Engine{
		cfg:       cfg,
		rng:       core.NewRNG(cfg.Seed),
		stepEvery: time.Second / time.Duration(cfg.StepsPerSecond),
	}
	e.Resize(viewportW, viewportH)
	return e
}

// Grid exposes the engine's grid for rendering.
func (e *Engine) Grid() *Grid { return e.grid }

// Generation returns the number of completed generation steps.
func (e *Engine) Generation() uint64 { return e.generation }

// Resize reallocates the grid for a new viewport size and reseeds it. Cell
// counts round up so the grid always covers the full viewport.
func (e *Engine) Resize(viewportW, viewportH int) {
	w := int(math.Ceil(float64(viewportW) / float64(e.cfg.CellSize)))
	h := int(math.Ceil(float64(viewportH) / float64(e.cfg.CellSize)))
	e.grid = NewGrid(w, h)
	core.FillBinary(e.rng.Source(), e.grid.Cells())
	e.sinceStep = 0
	e.sinceReseed = 0
}

// Advance accumulates elapsed render time and runs generation steps and
// revival passes at their own fixed cadences. The render loop may call this
// at any rate without changing simulation speed.
func (e *Engine) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	e.sinceStep += dt
	for e.sinceStep >= e.stepEvery {
		e.sinceStep -= e.stepEvery
		e.Step()
	}
	if e.cfg.ReseedEvery > 0 {
		e.sinceReseed += dt
		for e.sinceReseed >= e.cfg.ReseedEvery {
			e.sinceReseed -= e.cfg.ReseedEvery
			e.Reseed(e.cfg.ReseedFraction)
		}
	}
}

// Step advances the automaton by one generation: a live cell survives with 2
// or 3 live neighbors, a dead cell is born with exactly 3, everything else
// dies or stays dead. Neighbors wrap toroidally. The next generation is
// written into the spare buffer and swapped in, never computed in place.
func (e *Engine) Step() {
	g := e.grid
	w, h := g.w, g.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(g.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := g.cur[idx] == 1
			g.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[idx] = 1
			}
		}
	}
	g.swap()
	e.generation++
}

// Reseed forces roughly fraction of the cells alive at random positions.
// Cells that are already alive stay alive; nothing is cleared.
func (e *Engine) Reseed(fraction float64) {
	if fraction <= 0 {
		return
	}
	cells := e.grid.Cells()
	n := int(fraction * float64(len(cells)))
	for i := 0; i < n; i++ {
		cells[e.rng.IntN(len(cells))] = 1
	}
}
