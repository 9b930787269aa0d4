// Package sched drives the whole subsystem one frame at a time: it samples
// performance first, then pushes throttled input state into the scene
// manager, and stops sustaining itself the moment the manager leaves the
// active state.
package sched

import (
	"time"

	"go.uber.org/zap"

	"backdrop/internal/perf"
	"backdrop/internal/scene"
)

const (
	// pointerThrottle bounds pointer and scroll handling to once per
	// frame interval regardless of native event frequency.
	pointerThrottle = 16 * time.Millisecond
	// resizeDebounce is the quiet period after the last resize event
	// before the capability re-check runs.
	resizeDebounce = 200 * time.Millisecond
)

// Scheduler is the single per-frame driver. The frame source (the display
// loop in production, a test harness otherwise) calls Step once per frame;
// the scheduler carries its own running flag instead of living in a global.
type Scheduler struct {
	log *zap.Logger
	mgr *scene.Manager
	mon *perf.Monitor
	now func() time.Time

	running bool
	visible bool
	start   time.Time
	last    time.Time

	pointerX, pointerY float64
	scroll             float64
	pointerGate        *Throttle
	scrollGate         *Throttle

	resizeGate    *Debounce
	pendingWidth  int
	pendingHeight int
}

// Option adjusts a Scheduler at construction.
type Option func(*Scheduler)

// WithClock injects the time source so tests can step frames
// deterministically.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New returns a stopped scheduler bound to the given manager and monitor.
func New(log *zap.Logger, mgr *scene.Manager, mon *perf.Monitor, opts ...Option) *Scheduler {
	s := &Scheduler{
		log:         log,
		mgr:         mgr,
		mon:         mon,
		now:         time.Now,
		visible:     true,
		pointerGate: NewThrottle(pointerThrottle),
		scrollGate:  NewThrottle(pointerThrottle),
		resizeGate:  NewDebounce(resizeDebounce),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the self-sustaining loop at the current clock reading.
func (s *Scheduler) Start() {
	s.running = true
	s.start = s.now()
	s.last = s.start
	s.log.Debug("animation loop started")
}

// Running reports whether the loop still reschedules itself.
func (s *Scheduler) Running() bool { return s.running }

// SetVisible gates frame work on page visibility. While hidden, Step keeps
// the clock current but neither samples performance nor updates scenes,
// since no frame is actually rendered. Becoming visible restarts the
// monitor's sampling window, so the hidden span is not counted as a slow
// window.
func (s *Scheduler) SetVisible(v bool) {
	if v && !s.visible && s.mon != nil {
		s.mon.Reset()
	}
	s.visible = v
}

// SetPointer records the latest pointer position in NDC, throttled so a fast
// device cannot outpace the frame interval.
func (s *Scheduler) SetPointer(x, y float64) {
	if !s.pointerGate.Allow(s.now()) {
		return
	}
	s.pointerX, s.pointerY = x, y
}

// SetScroll records the latest scroll fraction in [0, 1], throttled like the
// pointer.
func (s *Scheduler) SetScroll(f float64) {
	if !s.scrollGate.Allow(s.now()) {
		return
	}
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	s.scroll = f
}

// NotifyResize records a viewport resize. The re-check is debounced; it runs
// from Step once the burst settles, keeps the fallback sized to the new
// viewport, and may itself end the session.
func (s *Scheduler) NotifyResize(width, height int) {
	s.pendingWidth = width
	s.pendingHeight = height
	s.resizeGate.Trigger(s.now())
}

// Step runs one frame: settle any debounced resize, sample performance,
// then update and render the scenes with the latest throttled input. The
// loop stops permanently once the manager is no longer active; teardown is
// the only cancellation path and it is terminal for the session.
func (s *Scheduler) Step() {
	if !s.running {
		return
	}
	if s.mgr.State() != scene.StateActive {
		s.stop()
		return
	}

	now := s.now()
	dt := now.Sub(s.last).Seconds()
	s.last = now

	if s.resizeGate.Ready(now) {
		s.mgr.NotifyResize(s.pendingWidth, s.pendingHeight)
		if s.mgr.State() != scene.StateActive {
			s.stop()
			return
		}
	}

	if !s.visible {
		return
	}

	if s.mon.Tick() == perf.SignalTeardown {
		s.mgr.Degrade()
		s.mon = nil
		s.stop()
		return
	}

	s.mgr.PerFrameUpdate(scene.FrameInput{
		Time:           now.Sub(s.start).Seconds(),
		Delta:          dt,
		ScrollFraction: s.scroll,
		PointerX:       s.pointerX,
		PointerY:       s.pointerY,
	})
}

func (s *Scheduler) stop() {
	if !s.running {
		return
	}
	s.running = false
	s.log.Debug("animation loop stopped")
}
