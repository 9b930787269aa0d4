package capability

import "testing"

func TestNarrowViewportAlwaysDeclines(t *testing.T) {
	gate := DefaultGate()
	profiles := []Profile{
		{ViewportWidth: 0},
		{ViewportWidth: 800, HasGraphicsContext: true, DeviceMemoryGB: 32, LogicalCores: 16},
		{ViewportWidth: 1023, HasGraphicsContext: true},
	}
	for _, p := range profiles {
		if gate.Decide(p) {
			t.Fatalf("gate accepted width %d below threshold", p.ViewportWidth)
		}
	}
}

func TestAbsentOptionalSignalsPass(t *testing.T) {
	gate := DefaultGate()
	p := Profile{ViewportWidth: 1024, HasGraphicsContext: true}
	if !gate.Decide(p) {
		t.Fatal("gate declined a wide profile with no optional signals reported")
	}
}

func TestDisqualifiers(t *testing.T) {
	gate := DefaultGate()
	base := Profile{ViewportWidth: 1280, HasGraphicsContext: true}

	cases := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"no graphics context", func(p *Profile) { p.HasGraphicsContext = false }},
		{"reduced motion", func(p *Profile) { p.ReducedMotion = true }},
		{"low memory", func(p *Profile) { p.DeviceMemoryGB = 2 }},
		{"few cores", func(p *Profile) { p.LogicalCores = 2 }},
	}
	for _, tc := range cases {
		p := base
		tc.mutate(&p)
		if gate.Decide(p) {
			t.Fatalf("%s: gate accepted a disqualified profile", tc.name)
		}
	}

	if !gate.Decide(base) {
		t.Fatal("gate declined the baseline profile")
	}
}

func TestReportedSignalsAtFloorPass(t *testing.T) {
	gate := DefaultGate()
	p := Profile{ViewportWidth: 1280, HasGraphicsContext: true, DeviceMemoryGB: 4, LogicalCores: 4}
	if !gate.Decide(p) {
		t.Fatal("gate declined signals exactly at their floors")
	}
}

func TestWidthAllows(t *testing.T) {
	gate := DefaultGate()
	if gate.WidthAllows(1023) {
		t.Fatal("WidthAllows accepted a width below the threshold")
	}
	if !gate.WidthAllows(1024) {
		t.Fatal("WidthAllows declined the threshold width")
	}
}
