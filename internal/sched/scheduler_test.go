package sched

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"backdrop/internal/capability"
	"backdrop/internal/particles"
	"backdrop/internal/perf"
	"backdrop/internal/scene"
	"backdrop/pkg/core"
)

type recordScene struct {
	inputs []scene.FrameInput
}

func (s *recordScene) Update(in scene.FrameInput) { s.inputs = append(s.inputs, in) }

func (s *recordScene) Render() {}

func (s *recordScene) Hide() {}

func (s *recordScene) Resources() []scene.Releaser { return nil }

type recordBuilder struct {
	background *recordScene
}

func (b *recordBuilder) Background(*particles.Buffer) (scene.Scene, error) {
	return b.background, nil
}

func (b *recordBuilder) Secondary() (scene.Scene, error) { return nil, nil }

type recordFallback struct {
	visible bool
	w, h    int
}

func (f *recordFallback) SetVisible(v bool) { f.visible = v }

func (f *recordFallback) Resize(width, height int) {
	f.w, f.h = width, height
}

type harness struct {
	clock    time.Time
	bg       *recordScene
	fallback *recordFallback
	mgr      *scene.Manager
	sched    *Scheduler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{clock: time.Unix(1000, 0)}
	h.bg = &recordScene{}
	h.fallback = &recordFallback{visible: true}
	buf := particles.NewBuffer(8, 10, core.NewRNG(1))
	h.mgr = scene.NewManager(zap.NewNop(), capability.DefaultGate(), &recordBuilder{background: h.bg}, h.fallback, buf)

	now := func() time.Time { return h.clock }
	mon := perf.NewMonitor(perf.WithNow(now))
	h.sched = New(zap.NewNop(), h.mgr, mon, WithClock(now))
	return h
}

func (h *harness) activate() {
	h.mgr.Activate(capability.Profile{ViewportWidth: 1280, HasGraphicsContext: true})
	h.sched.Start()
}

// frames advances the clock per frame and steps the scheduler, stopping
// early if the loop ends.
func (h *harness) frames(n int, interval time.Duration) {
	for i := 0; i < n && h.sched.Running(); i++ {
		h.clock = h.clock.Add(interval)
		h.sched.Step()
	}
}

func TestEndToEndDegradation(t *testing.T) {
	h := newHarness(t)
	h.activate()

	if h.mgr.State() != scene.StateActive {
		t.Fatalf("state = %v, expected active after gate pass and activation", h.mgr.State())
	}
	if h.fallback.visible {
		t.Fatal("fallback visible while active")
	}

	// Three seconds at 20 fps: three consecutive sub-30 windows.
	h.frames(100, 50*time.Millisecond)

	if h.mgr.State() != scene.StateDisposed {
		t.Fatalf("state = %v, expected disposed after sustained low fps", h.mgr.State())
	}
	if !h.fallback.visible {
		t.Fatal("fallback not restored after degradation")
	}
	if h.sched.Running() {
		t.Fatal("scheduler still rescheduling after teardown")
	}
}

func TestHealthyRateKeepsRunning(t *testing.T) {
	h := newHarness(t)
	h.activate()

	// Five seconds at 50 fps.
	h.frames(250, 20*time.Millisecond)

	if h.mgr.State() != scene.StateActive {
		t.Fatalf("state = %v, expected still active at a healthy rate", h.mgr.State())
	}
	if !h.sched.Running() {
		t.Fatal("scheduler stopped despite healthy frame rate")
	}
}

func TestStepOrderSamplingBeforeUpdate(t *testing.T) {
	h := newHarness(t)
	h.activate()

	// Updates keep flowing up to the exact frame the monitor fires, and
	// none after: the teardown frame samples first and never reaches the
	// scene update.
	h.frames(60, 50*time.Millisecond)
	updatesBefore := len(h.bg.inputs)
	if updatesBefore == 0 {
		t.Fatal("no scene updates during low-fps run-up")
	}

	h.frames(40, 50*time.Millisecond)
	if h.sched.Running() {
		t.Fatal("scheduler survived the third low window")
	}
	last := h.bg.inputs[len(h.bg.inputs)-1]
	if last.Time >= 3.0 {
		t.Fatalf("scene updated at t=%v, after the teardown verdict was due", last.Time)
	}
}

func TestThrottledInputReachesScenes(t *testing.T) {
	h := newHarness(t)
	h.activate()

	h.sched.SetPointer(0.25, -0.5)
	h.sched.SetScroll(0.75)
	h.frames(1, 20*time.Millisecond)

	in := h.bg.inputs[len(h.bg.inputs)-1]
	if in.PointerX != 0.25 || in.PointerY != -0.5 {
		t.Fatalf("pointer = (%v,%v), expected (0.25,-0.5)", in.PointerX, in.PointerY)
	}
	if in.ScrollFraction != 0.75 {
		t.Fatalf("scroll = %v, expected 0.75", in.ScrollFraction)
	}

	// A same-instant second set is coalesced away.
	h.sched.SetPointer(0.9, 0.9)
	h.sched.SetPointer(-0.9, -0.9)
	h.frames(1, 20*time.Millisecond)
	in = h.bg.inputs[len(h.bg.inputs)-1]
	if in.PointerX != 0.9 {
		t.Fatalf("pointer x = %v, expected the first post-interval value 0.9", in.PointerX)
	}
}

func TestScrollFractionClamped(t *testing.T) {
	h := newHarness(t)
	h.activate()

	h.sched.SetScroll(1.7)
	h.frames(1, 20*time.Millisecond)
	if got := h.bg.inputs[len(h.bg.inputs)-1].ScrollFraction; got != 1 {
		t.Fatalf("scroll = %v, expected clamp to 1", got)
	}

	h.clock = h.clock.Add(20 * time.Millisecond)
	h.sched.SetScroll(-0.3)
	h.frames(1, 20*time.Millisecond)
	if got := h.bg.inputs[len(h.bg.inputs)-1].ScrollFraction; got != 0 {
		t.Fatalf("scroll = %v, expected clamp to 0", got)
	}
}

func TestDebouncedResizeTeardown(t *testing.T) {
	h := newHarness(t)
	h.activate()

	h.frames(5, 20*time.Millisecond)
	h.sched.NotifyResize(900, 600)

	// Within the debounce window nothing happens.
	h.frames(5, 20*time.Millisecond)
	if h.mgr.State() != scene.StateActive {
		t.Fatal("resize applied before the debounce settled")
	}

	// After 200ms of quiet the width re-check runs and tears down.
	h.frames(10, 20*time.Millisecond)
	if h.mgr.State() != scene.StateDisposed {
		t.Fatalf("state = %v, expected disposed after debounced shrink", h.mgr.State())
	}
	if h.sched.Running() {
		t.Fatal("scheduler still running after resize teardown")
	}
	if h.fallback.w != 900 || h.fallback.h != 600 {
		t.Fatalf("restored fallback sized %dx%d, expected 900x600", h.fallback.w, h.fallback.h)
	}
}

func TestDebouncedResizeAboveThresholdContinues(t *testing.T) {
	h := newHarness(t)
	h.activate()

	h.sched.NotifyResize(1920, 1080)
	h.frames(20, 20*time.Millisecond)

	if h.mgr.State() != scene.StateActive {
		t.Fatalf("state = %v, expected active after a wide resize", h.mgr.State())
	}
	if h.fallback.w != 1920 || h.fallback.h != 1080 {
		t.Fatalf("fallback sized %dx%d, expected 1920x1080 while the effect runs", h.fallback.w, h.fallback.h)
	}
}

func TestHiddenPageSkipsWork(t *testing.T) {
	h := newHarness(t)
	h.activate()

	h.sched.SetVisible(false)
	h.frames(50, 20*time.Millisecond)

	if len(h.bg.inputs) != 0 {
		t.Fatalf("%d scene updates while hidden, expected 0", len(h.bg.inputs))
	}
	if !h.sched.Running() {
		t.Fatal("hidden page stopped the loop instead of idling it")
	}

	h.sched.SetVisible(true)
	h.frames(1, 20*time.Millisecond)
	if len(h.bg.inputs) != 1 {
		t.Fatal("no scene update after becoming visible again")
	}
}

func TestHideShowCyclesDoNotDegrade(t *testing.T) {
	h := newHarness(t)
	h.activate()

	// Each cycle leaves a multi-second gap with no rendered frames. The
	// gap must not be counted as a slow window, so even three cycles in a
	// row keep the effect alive.
	for i := 0; i < 3; i++ {
		h.sched.SetVisible(false)
		h.frames(5, time.Second)
		h.sched.SetVisible(true)
		h.frames(1, 20*time.Millisecond)
	}

	if h.mgr.State() != scene.StateActive {
		t.Fatalf("state = %v, expected still active after hide/show cycles", h.mgr.State())
	}
	if !h.sched.Running() {
		t.Fatal("scheduler stopped after hide/show cycles")
	}

	// A genuinely healthy second afterwards keeps running too.
	h.frames(50, 20*time.Millisecond)
	if h.mgr.State() != scene.StateActive {
		t.Fatalf("state = %v, expected active after a healthy window", h.mgr.State())
	}
}
