//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"backdrop/internal/particles"
	"backdrop/internal/perf"
	"backdrop/internal/render"
	"backdrop/internal/scene"
	"backdrop/internal/sched"
	"backdrop/pkg/automaton"
	"backdrop/pkg/core"
)

const (
	// documentHeights is how many viewports tall the scrollable page is.
	documentHeights = 3.0
	// anchorFraction is where in the document the emblem anchor sits.
	anchorFraction = 0.55
	// scrollPerNotch converts one wheel notch into scroll fraction.
	scrollPerNotch = 0.04
)

// Game adapts the rendering subsystem to the ebiten.Game interface. It owns
// the session: the fallback visual, the scene manager and its scheduler, and
// the input state translated into the subsystem's scalar signals.
type Game struct {
	cfg *Config
	log *zap.Logger

	palette  render.Palette
	engine   *automaton.Engine
	fallback *render.FallbackView
	hud      *HUD

	builder *render.Builder
	mgr     *scene.Manager
	sched   *sched.Scheduler

	w, h      int
	resized   bool
	activated bool
	scroll    float64
	lastFrame time.Time
}

// New constructs the session around the configured viewport. The fallback is
// visible from the first frame; the effect activates on the first update,
// once the real window size is known.
func New(cfg *Config, log *zap.Logger) *Game {
	palette := render.NewPalette(cfg.Hue)
	engineCfg := automaton.DefaultConfig()
	engineCfg.CellSize = cfg.CellSize
	engineCfg.Seed = cfg.Seed
	engine := automaton.New(engineCfg, cfg.WindowW, cfg.WindowH)

	return &Game{
		cfg:      cfg,
		log:      log,
		palette:  palette,
		engine:   engine,
		fallback: render.NewFallbackView(engine, palette, cfg.WindowW, cfg.WindowH, cfg.CellSize),
		hud:      NewHUD(cfg.ShowHUD),
		w:        cfg.WindowW,
		h:        cfg.WindowH,
	}
}

// activate runs once: probe the capability profile, construct the subsystem,
// and start the loop when the gate passes and construction succeeds. All
// failure paths leave the fallback visible.
func (g *Game) activate() {
	g.activated = true

	rng := core.NewRNG(g.cfg.Seed)
	buf := particles.NewBuffer(g.cfg.Particles, 10, rng)
	g.builder = render.NewBuilder(g.w, g.h, g.cfg.EmblemSize, true, g.palette)
	g.mgr = scene.NewManager(g.log, g.cfg.Gate(), g.builder, g.fallback, buf)
	g.sched = sched.New(g.log, g.mgr, perf.NewMonitor())

	g.mgr.Activate(BuildProfile(g.cfg, g.w, true))
	if g.mgr.State() == scene.StateActive {
		g.sched.Start()
	}
}

// Update handles input, drives the scheduler while the effect runs, and
// advances the fallback automaton otherwise.
func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.fallback.SetPaused(!g.fallback.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Resize(g.w, g.h)
	}

	if !g.activated && g.w > 0 && g.h > 0 {
		g.activate()
	}

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		g.scroll -= wheelY * scrollPerNotch
		if g.scroll < 0 {
			g.scroll = 0
		}
		if g.scroll > 1 {
			g.scroll = 1
		}
	}

	if g.sched != nil && g.sched.Running() {
		cx, cy := ebiten.CursorPosition()
		g.sched.SetPointer(
			float64(cx)/float64(g.w)*2-1,
			float64(cy)/float64(g.h)*2-1,
		)
		g.sched.SetScroll(g.scroll)
		if g.resized {
			g.sched.NotifyResize(g.w, g.h)
		}
		_, visible := g.anchorScreenY()
		g.mgr.SetSecondaryVisible(visible)
		g.sched.Step()
	} else {
		if g.resized {
			g.fallback.Resize(g.w, g.h)
		}
		g.fallback.Advance(dt)
	}
	g.resized = false

	return nil
}

// anchorScreenY maps the emblem anchor's document position into screen
// space, reporting whether any part of it is inside the viewport.
func (g *Game) anchorScreenY() (float64, bool) {
	docH := float64(g.h) * documentHeights
	y := docH*anchorFraction - g.scroll*(docH-float64(g.h))
	visible := y > -float64(g.cfg.EmblemSize) && y < float64(g.h)
	return y, visible
}

// Draw composites the active scene targets, or the fallback, plus the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.mgr != nil && g.mgr.State() == scene.StateActive {
		g.drawActive(screen)
	} else {
		g.fallback.Draw(screen)
	}
	g.hud.Draw(screen, g.statusLines())
}

func (g *Game) drawActive(screen *ebiten.Image) {
	screen.Fill(g.palette.GradientTop)

	if bg := g.builder.BackgroundScene(); bg != nil {
		op := &ebiten.DrawImageOptions{}
		bw, bh := bg.Target().Bounds().Dx(), bg.Target().Bounds().Dy()
		op.GeoM.Scale(float64(g.w)/float64(bw), float64(g.h)/float64(bh))
		screen.DrawImage(bg.Target(), op)
	}

	if emblem := g.builder.EmblemScene(); emblem != nil && g.mgr.SecondaryVisible() {
		y, _ := g.anchorScreenY()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(g.w-g.cfg.EmblemSize)-48, y)
		screen.DrawImage(emblem.Target(), op)
	}
}

func (g *Game) statusLines() []string {
	state := scene.StateUninitialized
	if g.mgr != nil {
		state = g.mgr.State()
	}
	return []string{
		fmt.Sprintf("state: %s", state),
		fmt.Sprintf("fps: %0.1f  tps: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("particles: %d", g.cfg.Particles),
		fmt.Sprintf("generation: %d", g.engine.Generation()),
		fmt.Sprintf("scroll: %0.2f", g.scroll),
	}
}

// Layout tracks the window client size; a change is handed to the debounced
// resize path on the next update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.w || outsideHeight != g.h) {
		g.w, g.h = outsideWidth, outsideHeight
		g.resized = true
	}
	return g.w, g.h
}
