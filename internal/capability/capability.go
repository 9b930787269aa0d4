// Package capability decides whether the GPU-accelerated effect may run at
// all. The decision is a pure function over a Profile snapshot; probing the
// environment happens elsewhere and the core never reaches out itself.
package capability

// Profile is an immutable snapshot of the device and session signals the
// gate evaluates. Optional signals use the zero value to mean "not reported":
// an environment that exposes no memory or core count is not assumed to be
// low-end.
type Profile struct {
	// ViewportWidth is the window client width in pixels.
	ViewportWidth int
	// HasGraphicsContext reports whether a usable GPU context exists.
	HasGraphicsContext bool
	// ReducedMotion reports the user's reduced-motion preference.
	ReducedMotion bool
	// DeviceMemoryGB is the approximate device memory, 0 when unreported.
	DeviceMemoryGB float64
	// LogicalCores is the logical CPU count, 0 when unreported.
	LogicalCores int
}

// Gate holds the thresholds an acceptable device must clear.
type Gate struct {
	// MinWidth is the desktop width threshold in pixels.
	MinWidth int
	// MinMemoryGB is the device memory floor, applied only when reported.
	MinMemoryGB float64
	// MinCores is the logical core floor, applied only when reported.
	MinCores int
}

// DefaultGate returns the reference thresholds.
func DefaultGate() Gate {
	return Gate{MinWidth: 1024, MinMemoryGB: 4, MinCores: 4}
}

// Decide reports whether the effect should run for the given profile. Checks
// run in order and fail fast on the first disqualifier; a signal the profile
// does not carry passes its check.
func (g Gate) Decide(p Profile) bool {
	if p.ViewportWidth < g.MinWidth {
		return false
	}
	if !p.HasGraphicsContext {
		return false
	}
	if p.ReducedMotion {
		return false
	}
	if p.DeviceMemoryGB > 0 && p.DeviceMemoryGB < g.MinMemoryGB {
		return false
	}
	if p.LogicalCores > 0 && p.LogicalCores < g.MinCores {
		return false
	}
	return true
}

// WidthAllows reports whether a viewport width alone still clears the gate.
// Resize handling uses this to force teardown when the window shrinks below
// the threshold mid-session; growing back never re-activates.
func (g Gate) WidthAllows(width int) bool {
	return width >= g.MinWidth
}
