package scene

import (
	"go.uber.org/zap"

	"backdrop/internal/capability"
	"backdrop/internal/particles"
)

// Manager constructs, updates and owns the renderable scenes behind one
// lifecycle state machine. All rendering state lives inside the instance;
// nothing module-level survives a teardown.
type Manager struct {
	log      *zap.Logger
	gate     capability.Gate
	builder  Builder
	fallback Fallback
	buf      *particles.Buffer

	state            State
	background       Scene
	secondary        Scene
	secondaryVisible bool
}

// NewManager returns a manager in StateUninitialized. The particle buffer is
// advanced by the manager each frame; the background scene only reads it.
func NewManager(log *zap.Logger, gate capability.Gate, builder Builder, fallback Fallback, buf *particles.Buffer) *Manager {
	return &Manager{
		log:      log,
		gate:     gate,
		builder:  builder,
		fallback: fallback,
		buf:      buf,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State { return m.state }

// Activate evaluates the capability gate and, when it passes, constructs the
// scenes and enters StateActive. Valid only from StateUninitialized; any
// other state is a no-op. A declined gate or a construction failure leaves
// the manager Uninitialized with the fallback visible: failures here are
// absorbed, never propagated.
func (m *Manager) Activate(profile capability.Profile) {
	if m.state != StateUninitialized {
		return
	}
	if !m.gate.Decide(profile) {
		m.log.Info("capability gate declined",
			zap.Int("viewport_width", profile.ViewportWidth),
			zap.Bool("graphics_context", profile.HasGraphicsContext),
			zap.Bool("reduced_motion", profile.ReducedMotion))
		return
	}

	background, err := m.builder.Background(m.buf)
	if err != nil {
		m.log.Warn("background scene construction failed", zap.Error(err))
		Dispose(m.log, background)
		return
	}
	secondary, err := m.builder.Secondary()
	if err != nil {
		m.log.Warn("secondary scene construction failed", zap.Error(err))
		Dispose(m.log, background, secondary)
		return
	}

	m.background = background
	m.secondary = secondary
	m.state = StateActive
	if m.fallback != nil {
		m.fallback.SetVisible(false)
	}
	m.log.Info("rendering subsystem active", zap.Bool("secondary", secondary != nil))
}

// SetSecondaryVisible updates the secondary scene's visibility flag from the
// anchor's observability signal. On becoming invisible the scene's opacity
// drops to zero immediately.
func (m *Manager) SetSecondaryVisible(visible bool) {
	if visible == m.secondaryVisible {
		return
	}
	m.secondaryVisible = visible
	if !visible && m.secondary != nil {
		m.secondary.Hide()
	}
}

// PerFrameUpdate advances the particle buffer, pushes the frame parameters
// into the background scene and renders it, then does the same for the
// secondary scene while its visibility flag holds. Valid only in
// StateActive. State updates always precede the render that reads them.
func (m *Manager) PerFrameUpdate(in FrameInput) {
	if m.state != StateActive {
		return
	}
	m.buf.Advance(in.Delta)
	m.background.Update(in)
	m.background.Render()
	if m.secondary != nil && m.secondaryVisible {
		m.secondary.Update(in)
		m.secondary.Render()
	}
}

// Background exposes the background scene for compositing. Nil unless
// Active.
func (m *Manager) Background() Scene { return m.background }

// Secondary exposes the secondary scene for compositing. Nil unless Active
// and constructed.
func (m *Manager) Secondary() Scene { return m.secondary }

// SecondaryVisible reports the secondary scene's visibility flag.
func (m *Manager) SecondaryVisible() bool { return m.secondaryVisible }

// Degrade records sustained performance failure and tears the subsystem
// down. Only an Active subsystem can degrade; the transition is one-way.
func (m *Manager) Degrade() {
	if m.state != StateActive {
		return
	}
	m.state = StateDegraded
	m.log.Warn("sustained low frame rate, revoking effect")
	m.Teardown()
}

// NotifyResize re-applies the width threshold mid-session. The fallback is
// resized first, in every state, so a teardown at any later point restores
// it at the current viewport. Shrinking below the threshold while active
// forces teardown; growing back never re-activates, so a resize-degraded
// session stays on the fallback.
func (m *Manager) NotifyResize(width, height int) {
	if m.fallback != nil {
		m.fallback.Resize(width, height)
	}
	if m.state != StateActive {
		return
	}
	if m.gate.WidthAllows(width) {
		return
	}
	m.log.Info("viewport shrank below threshold", zap.Int("width", width))
	m.Teardown()
}

// Teardown releases every scene resource, restores the fallback visual and
// enters StateDisposed. Valid from any state and idempotent: a second call
// has no additional effect.
func (m *Manager) Teardown() {
	if m.state == StateDisposed {
		return
	}
	Dispose(m.log, m.background, m.secondary)
	m.background = nil
	m.secondary = nil
	m.state = StateDisposed
	if m.fallback != nil {
		m.fallback.SetVisible(true)
	}
	m.log.Info("rendering subsystem disposed")
}
