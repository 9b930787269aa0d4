package app

import (
	"runtime"

	"backdrop/internal/capability"
)

// BuildProfile assembles the capability snapshot from the window size, the
// configuration and the runtime. The core only ever sees this plain value;
// it never probes the environment itself. Reduced motion and device memory
// have no portable probe in Go, so they come from config/environment, and an
// unset memory stays unreported rather than counting against the device.
func BuildProfile(cfg *Config, viewportWidth int, hasGraphics bool) capability.Profile {
	return capability.Profile{
		ViewportWidth:      viewportWidth,
		HasGraphicsContext: hasGraphics && !cfg.ForceFallback,
		ReducedMotion:      cfg.ReducedMotion,
		DeviceMemoryGB:     cfg.DeviceMemoryGB,
		LogicalCores:       runtime.NumCPU(),
	}
}

// Gate derives the capability thresholds from the configuration.
func (c *Config) Gate() capability.Gate {
	gate := capability.DefaultGate()
	if c.WidthThreshold > 0 {
		gate.MinWidth = c.WidthThreshold
	}
	return gate
}
