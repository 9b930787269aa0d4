package app

import (
	"flag"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Particles != 400 {
		t.Fatalf("default particles = %d, expected 400", cfg.Particles)
	}
	if cfg.WidthThreshold != 1024 {
		t.Fatalf("default width threshold = %d, expected 1024", cfg.WidthThreshold)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("BACKDROP_PARTICLES", "250")
	t.Setenv("BACKDROP_REDUCED_MOTION", "true")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Particles != 250 {
		t.Fatalf("particles = %d, expected env override 250", cfg.Particles)
	}
	if !cfg.ReducedMotion {
		t.Fatal("reduced motion env override not applied")
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BACKDROP_SEED", "7")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "99"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Seed != 99 {
		t.Fatalf("seed = %d, expected flag override 99", cfg.Seed)
	}
}

func TestBuildProfile(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	p := BuildProfile(cfg, 1280, true)
	if !p.HasGraphicsContext {
		t.Fatal("profile lost the graphics context")
	}
	if p.LogicalCores <= 0 {
		t.Fatal("profile missing the logical core count")
	}

	cfg.ForceFallback = true
	p = BuildProfile(cfg, 1280, true)
	if p.HasGraphicsContext {
		t.Fatal("force-fallback must present as having no graphics context")
	}
}

func TestGateFromConfig(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	cfg.WidthThreshold = 800
	if gate := cfg.Gate(); gate.MinWidth != 800 {
		t.Fatalf("gate width = %d, expected configured 800", gate.MinWidth)
	}
}
