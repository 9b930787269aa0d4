package sched

import (
	"testing"
	"time"
)

func TestThrottleCoalescesBurst(t *testing.T) {
	th := NewThrottle(16 * time.Millisecond)
	base := time.Unix(0, 0)

	allowed := 0
	for i := 0; i < 16; i++ {
		if th.Allow(base.Add(time.Duration(i) * time.Millisecond)) {
			allowed++
		}
	}
	if allowed != 1 {
		t.Fatalf("burst within one interval allowed %d events, expected 1", allowed)
	}

	if !th.Allow(base.Add(16 * time.Millisecond)) {
		t.Fatal("event after a full interval was dropped")
	}
}

func TestDebounceFiresOnceAfterQuiet(t *testing.T) {
	d := NewDebounce(200 * time.Millisecond)
	base := time.Unix(0, 0)

	// A burst of triggers keeps pushing the deadline out.
	for i := 0; i < 5; i++ {
		d.Trigger(base.Add(time.Duration(i) * 50 * time.Millisecond))
	}
	if d.Ready(base.Add(300 * time.Millisecond)) {
		t.Fatal("debounce fired before the quiet interval elapsed")
	}
	if !d.Ready(base.Add(400 * time.Millisecond)) {
		t.Fatal("debounce did not fire after the quiet interval")
	}
	if d.Ready(base.Add(500 * time.Millisecond)) {
		t.Fatal("debounce fired twice for one burst")
	}
}

func TestDebounceIdleWithoutTrigger(t *testing.T) {
	d := NewDebounce(200 * time.Millisecond)
	if d.Ready(time.Unix(10, 0)) {
		t.Fatal("debounce fired without any trigger")
	}
}
