package perf

import (
	"testing"
	"time"
)

// fakeClock advances a fixed amount per call so window boundaries land
// exactly where a test puts them.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

// runWindow ticks the monitor through one full window at the given frame
// count and returns the signals seen.
func runWindow(m *Monitor, c *fakeClock, frames int) []Signal {
	var signals []Signal
	start := c.t
	for i := 1; i <= frames; i++ {
		// Place tick i at its exact fraction of the window so the final
		// tick lands on start+1s regardless of truncation in the step.
		c.t = start.Add(time.Second * time.Duration(i) / time.Duration(frames))
		signals = append(signals, m.Tick())
	}
	return signals
}

func countTeardowns(signals []Signal) int {
	n := 0
	for _, s := range signals {
		if s == SignalTeardown {
			n++
		}
	}
	return n
}

func TestThreeLowWindowsSignalOnce(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMonitor(WithNow(func() time.Time { return clock.t }))

	var all []Signal
	for w := 0; w < 3; w++ {
		all = append(all, runWindow(m, clock, 20)...)
	}
	if got := countTeardowns(all); got != 1 {
		t.Fatalf("three low windows produced %d teardown signals, expected exactly 1", got)
	}

	// Further low windows never re-signal.
	all = runWindow(m, clock, 20)
	if got := countTeardowns(all); got != 0 {
		t.Fatalf("post-latch window produced %d teardown signals, expected 0", got)
	}
}

func TestHealthyWindowResetsCounter(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMonitor(WithNow(func() time.Time { return clock.t }))

	var all []Signal
	all = append(all, runWindow(m, clock, 20)...)
	all = append(all, runWindow(m, clock, 25)...)
	all = append(all, runWindow(m, clock, 60)...)
	if got := countTeardowns(all); got != 0 {
		t.Fatalf("two low windows plus a healthy one produced %d teardown signals, expected 0", got)
	}

	// The reset means two more low windows still do not trip the rule.
	all = nil
	all = append(all, runWindow(m, clock, 20)...)
	all = append(all, runWindow(m, clock, 20)...)
	if got := countTeardowns(all); got != 0 {
		t.Fatalf("two low windows after a reset produced %d teardown signals, expected 0", got)
	}

	// The third consecutive one does.
	all = runWindow(m, clock, 20)
	if got := countTeardowns(all); got != 1 {
		t.Fatalf("third consecutive low window produced %d teardown signals, expected 1", got)
	}
}

func TestResetDiscardsStaleSpan(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMonitor(WithNow(func() time.Time { return clock.t }))

	// A long gap with no ticks, as when the page is hidden. Without the
	// reset the next tick would close a multi-second window at fps 1.
	clock.advance(5 * time.Second)
	m.Reset()

	clock.advance(20 * time.Millisecond)
	if got := m.Tick(); got != SignalKeepRunning {
		t.Fatalf("first tick after reset = %v, expected keep-running", got)
	}

	// The window restarted at the reset, so the consecutive-low rule
	// applies cleanly from there.
	var all []Signal
	for w := 0; w < 3; w++ {
		all = append(all, runWindow(m, clock, 20)...)
	}
	all = append(all, runWindow(m, clock, 20)...)
	if got := countTeardowns(all); got != 1 {
		t.Fatalf("low windows after a reset produced %d teardown signals, expected the rule unchanged at 1", got)
	}
}

func TestSteadyHealthyRateNeverSignals(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMonitor(WithNow(func() time.Time { return clock.t }))

	for w := 0; w < 10; w++ {
		if got := countTeardowns(runWindow(m, clock, 60)); got != 0 {
			t.Fatalf("healthy window %d produced a teardown signal", w)
		}
	}
}
