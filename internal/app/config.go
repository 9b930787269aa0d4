package app

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config represents the application parameters. Environment variables
// override the built-in defaults; command-line flags override both.
type Config struct {
	Seed           int64   `env:"BACKDROP_SEED"`
	Particles      int     `env:"BACKDROP_PARTICLES"`
	CellSize       int     `env:"BACKDROP_CELL_SIZE"`
	WidthThreshold int     `env:"BACKDROP_WIDTH_THRESHOLD"`
	ReducedMotion  bool    `env:"BACKDROP_REDUCED_MOTION"`
	DeviceMemoryGB float64 `env:"BACKDROP_DEVICE_MEMORY_GB"`
	ForceFallback  bool    `env:"BACKDROP_FORCE_FALLBACK"`
	Hue            float64 `env:"BACKDROP_HUE"`
	WindowW        int     `env:"BACKDROP_WINDOW_W"`
	WindowH        int     `env:"BACKDROP_WINDOW_H"`
	EmblemSize     int     `env:"BACKDROP_EMBLEM_SIZE"`
	ShowHUD        bool    `env:"BACKDROP_HUD"`
}

// NewConfig returns a Config populated with defaults and any environment
// overrides.
func NewConfig() (*Config, error) {
	c := &Config{
		Seed:           42,
		Particles:      400,
		CellSize:       12,
		WidthThreshold: 1024,
		Hue:            215,
		WindowW:        1280,
		WindowH:        720,
		EmblemSize:     160,
	}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle and automaton randomness")
	fs.IntVar(&c.Particles, "particles", c.Particles, "background particle count")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "automaton cell size in pixels")
	fs.IntVar(&c.WidthThreshold, "width-threshold", c.WidthThreshold, "minimum viewport width for the effect")
	fs.BoolVar(&c.ReducedMotion, "reduced-motion", c.ReducedMotion, "honor a reduced-motion preference")
	fs.Float64Var(&c.DeviceMemoryGB, "device-memory", c.DeviceMemoryGB, "approximate device memory in GB, 0 if unknown")
	fs.BoolVar(&c.ForceFallback, "force-fallback", c.ForceFallback, "skip the GPU effect and show the fallback")
	fs.Float64Var(&c.Hue, "hue", c.Hue, "base hue of the theme in degrees")
	fs.IntVar(&c.WindowW, "window-w", c.WindowW, "initial window width")
	fs.IntVar(&c.WindowH, "window-h", c.WindowH, "initial window height")
	fs.IntVar(&c.EmblemSize, "emblem-size", c.EmblemSize, "secondary scene surface size")
	fs.BoolVar(&c.ShowHUD, "hud", c.ShowHUD, "show the status overlay")
}
