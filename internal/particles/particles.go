// Package particles holds the drifting point field behind the background
// scene. Particles are fully independent: no interaction, no collision, just
// constant-velocity drift inside a bounded box with per-axis wraparound.
package particles

import "backdrop/pkg/core"

// DefaultCount is the reference particle count.
const DefaultCount = 400

// Buffer is a fixed-size set of particle positions and velocities, three
// float32 components per particle each. The count is fixed at construction.
type Buffer struct {
	count int
	bound float32
	pos   []float32
	vel   []float32
}

// NewBuffer allocates count particles scattered uniformly inside the box
// [-bound, bound]^3, with velocities drawn once from a small range so the
// drift looks organic without per-frame re-randomization. Velocities are in
// box units per second.
func NewBuffer(count int, bound float32, rng *core.RNG) *Buffer {
	if count <= 0 {
		count = DefaultCount
	}
	if bound <= 0 {
		bound = 1
	}
	b := &Buffer{
		count: count,
		bound: bound,
		pos:   make([]float32, 3*count),
		vel:   make([]float32, 3*count),
	}
	speed := float64(bound) * 0.05
	for i := range b.pos {
		b.pos[i] = float32(rng.Float64Range(float64(-bound), float64(bound)))
		b.vel[i] = float32(rng.Float64Range(-speed, speed))
	}
	return b
}

// Count returns the fixed particle count.
func (b *Buffer) Count() int { return b.count }

// Bound returns the half-extent of the drift box.
func (b *Buffer) Bound() float32 { return b.bound }

// Positions exposes the position components for rendering. Callers must not
// mutate the slice; the buffer is owned by the simulation.
func (b *Buffer) Positions() []float32 { return b.pos }

// Advance adds dt seconds of velocity to every position, then wraps each
// axis component independently: a particle leaving one face of the box
// re-enters at the opposite face with the other two coordinates untouched.
// This is a per-axis clamp-wrap, not the toroidal index wrap the cell grid
// uses.
func (b *Buffer) Advance(dt float64) {
	d := float32(dt)
	for i := range b.pos {
		b.pos[i] = wrapAxis(b.pos[i]+b.vel[i]*d, b.bound)
	}
}

// wrapAxis relocates a single axis component that left [-bound, bound] to
// the opposite face.
func wrapAxis(v, bound float32) float32 {
	if v > bound {
		return -bound
	}
	if v < -bound {
		return bound
	}
	return v
}
