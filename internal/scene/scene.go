// Package scene owns the rendering subsystem's lifecycle: one state machine
// governing zero or more independently renderable scenes, their per-frame
// updates, and their deterministic teardown.
package scene

import "backdrop/internal/particles"

// State is the single lifecycle state governing the whole rendering
// subsystem. Per-scene visibility is a separate flag, not a state.
type State int

const (
	// StateUninitialized means no GPU resources exist yet.
	StateUninitialized State = iota
	// StateActive means scenes are constructed and being driven.
	StateActive
	// StateDegraded means sustained low frame rate was detected and
	// teardown is in progress.
	StateDegraded
	// StateDisposed means all resources were released; terminal.
	StateDisposed
)

// String implements fmt.Stringer for logging and the HUD.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateDegraded:
		return "degraded"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// FrameInput carries the scalar parameters a frame update needs. Components
// communicate through these values only, never through shared mutable
// references.
type FrameInput struct {
	// Time is seconds since activation.
	Time float64
	// Delta is seconds since the previous frame.
	Delta float64
	// ScrollFraction is the scrolled fraction of the page in [0, 1].
	ScrollFraction float64
	// PointerX and PointerY are the pointer position normalized to [-1, 1].
	PointerX float64
	PointerY float64
}

// Scene is an independently renderable collection of GPU-owned objects plus
// camera parameters, drawn to one surface. The manager exclusively owns
// every Scene; nothing outside reaches into scene internals.
type Scene interface {
	// Update advances the scene's per-frame parameters.
	Update(in FrameInput)
	// Render draws the scene into its surface. State written by Update in
	// the same frame is visible here; the two are never interleaved.
	Render()
	// Hide drives the scene's opacity to zero. Instantaneous; smoothing is
	// a presentation concern.
	Hide()
	// Resources lists every GPU-owned object for disposal. Entries may be
	// nil when construction failed partway.
	Resources() []Releaser
}

// Releaser frees one GPU-owned object. Implementations must tolerate being
// called more than once.
type Releaser interface {
	Release()
}

// Builder constructs the concrete scenes during activation. The GUI build
// supplies an ebiten-backed builder; tests supply fakes.
type Builder interface {
	// Background builds the full-viewport scene over the particle buffer.
	// The scene reads positions from the buffer; only the manager advances
	// it.
	Background(buf *particles.Buffer) (Scene, error)
	// Secondary builds the small anchored scene, or (nil, nil) when the
	// page has no anchor element for it.
	Secondary() (Scene, error)
}

// Fallback is the always-available static visual. The subsystem only ever
// toggles it and keeps it sized to the viewport; constructing and drawing it
// belongs to the host.
type Fallback interface {
	SetVisible(bool)
	// Resize adapts the visual to a new viewport so a later restore draws
	// it at the size the page actually has, not the size it had when the
	// effect took over.
	Resize(width, height int)
}
