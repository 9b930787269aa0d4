//go:build ebiten

package render

import (
	"backdrop/internal/particles"
	"backdrop/internal/scene"
)

// Builder constructs the ebiten-backed scenes at activation time and keeps
// the concrete handles so the host can composite their targets. The manager
// stays the lifecycle owner; the builder only remembers what it built.
type Builder struct {
	width, height int
	emblemSize    int
	hasAnchor     bool
	palette       Palette

	background *Background
	emblem     *Emblem
}

// NewBuilder returns a builder for the two surfaces: the full-viewport
// background and, when the page carries an anchor for it, a square emblem
// surface of emblemSize pixels.
func NewBuilder(width, height, emblemSize int, hasAnchor bool, palette Palette) *Builder {
	return &Builder{
		width:      width,
		height:     height,
		emblemSize: emblemSize,
		hasAnchor:  hasAnchor,
		palette:    palette,
	}
}

// Background builds the particle-field scene.
func (b *Builder) Background(buf *particles.Buffer) (scene.Scene, error) {
	s, err := newBackground(b.width, b.height, buf, b.palette)
	if err != nil {
		return nil, err
	}
	b.background = s
	return s, nil
}

// Secondary builds the emblem scene, or nothing when no anchor exists.
func (b *Builder) Secondary() (scene.Scene, error) {
	if !b.hasAnchor {
		return nil, nil
	}
	s, err := newEmblem(b.emblemSize, b.palette)
	if err != nil {
		return nil, err
	}
	b.emblem = s
	return s, nil
}

// BackgroundScene returns the built background, nil before activation.
func (b *Builder) BackgroundScene() *Background { return b.background }

// EmblemScene returns the built emblem, nil before activation or without an
// anchor.
func (b *Builder) EmblemScene() *Emblem { return b.emblem }
