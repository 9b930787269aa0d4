// Package perf samples the frame rate over fixed one-second windows and
// signals sustained degradation so the effect can be revoked at runtime.
package perf

import "time"

// Signal is the monitor's per-tick verdict.
type Signal int

const (
	// SignalKeepRunning means the frame rate is acceptable so far.
	SignalKeepRunning Signal = iota
	// SignalTeardown means sustained low frame rate was detected; the
	// caller must tear the subsystem down. Emitted at most once.
	SignalTeardown
)

// Monitor counts rendered frames per window and tracks consecutive low
// windows. It is single-use: after emitting SignalTeardown it is meant to be
// discarded, and a reactivated subsystem constructs a fresh one.
type Monitor struct {
	now func() time.Time

	window time.Duration
	minFPS int
	maxLow int

	windowStart time.Time
	frames      int
	lowWindows  int
	fired       bool
}

// Option adjusts a Monitor at construction.
type Option func(*Monitor)

// WithNow injects the clock used to close windows. Tests use this to step
// time deterministically.
func WithNow(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// NewMonitor returns a monitor with the reference tuning: 1-second windows,
// a 30 fps floor, teardown after 3 consecutive low windows.
func NewMonitor(opts ...Option) *Monitor {
	m := &Monitor{
		now:    time.Now,
		window: time.Second,
		minFPS: 30,
		maxLow: 3,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.windowStart = m.now()
	return m
}

// Reset restarts the current sampling window at the present clock reading
// and discards its partial frame count. Callers use it after a span in which
// frames were legitimately not produced, such as the page being hidden, so
// the gap is not misread as a slow window. The consecutive-low count is
// untouched.
func (m *Monitor) Reset() {
	m.windowStart = m.now()
	m.frames = 0
}

// Tick records one rendered frame. When the current window has lasted at
// least the window length it closes: fps is the frame count, the counters
// reset, and the consecutive-low rule applies. The teardown verdict is
// latched so it is returned exactly once.
func (m *Monitor) Tick() Signal {
	now := m.now()
	m.frames++
	if now.Sub(m.windowStart) < m.window {
		return SignalKeepRunning
	}

	fps := m.frames
	m.frames = 0
	m.windowStart = now

	if fps < m.minFPS {
		m.lowWindows++
	} else {
		m.lowWindows = 0
	}
	if m.lowWindows >= m.maxLow && !m.fired {
		m.fired = true
		return SignalTeardown
	}
	return SignalKeepRunning
}
