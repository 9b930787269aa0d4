package sched

import "time"

// Throttle coalesces a high-frequency event stream to at most one accepted
// event per interval. Excess events are dropped, not queued.
type Throttle struct {
	interval time.Duration
	last     time.Time
}

// NewThrottle returns a throttle with the given minimum interval.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Allow reports whether an event arriving at now should be handled. The
// first event always passes.
func (t *Throttle) Allow(now time.Time) bool {
	if t.last.IsZero() || now.Sub(t.last) >= t.interval {
		t.last = now
		return true
	}
	return false
}

// Debounce delays handling until events stop arriving for a full interval,
// so a burst collapses into a single trailing-edge action. It holds no timer
// of its own; the frame loop polls Ready, keeping everything on the single
// cooperative thread.
type Debounce struct {
	interval time.Duration
	deadline time.Time
	pending  bool
}

// NewDebounce returns a debounce with the given quiet interval.
func NewDebounce(interval time.Duration) *Debounce {
	return &Debounce{interval: interval}
}

// Trigger records an event at now, pushing the deadline out.
func (d *Debounce) Trigger(now time.Time) {
	d.pending = true
	d.deadline = now.Add(d.interval)
}

// Ready reports whether the quiet interval has elapsed since the last
// trigger, consuming the pending event when it has.
func (d *Debounce) Ready(now time.Time) bool {
	if d.pending && !now.Before(d.deadline) {
		d.pending = false
		return true
	}
	return false
}
