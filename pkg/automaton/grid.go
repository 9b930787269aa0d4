package automaton

// Grid stores a double-buffered 2D binary cell grid in row-major order. The
// current and next buffers are kept separate so a generation step never reads
// cells it has already rewritten.
type Grid struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the current-generation buffer.
func (g *Grid) Cells() []uint8 { return g.cur }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates, treating
// opposite edges as adjacent.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Set writes a cell value in the current buffer, wrapping coordinates.
func (g *Grid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.cur[g.Index(x, y)] = v
}

// At reads a cell value from the current buffer, wrapping coordinates.
func (g *Grid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.cur[g.Index(x, y)]
}

// Clear fills the current buffer with zeros.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
}

// swap exchanges the current and next buffers in O(1).
func (g *Grid) swap() {
	g.cur, g.nxt = g.nxt, g.cur
}
