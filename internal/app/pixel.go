//go:build ebiten

package app

import (
	"context"
	"os"
	"runtime"
	"time"

	"life-table/internal/core"
	"life-table/internal/render"
	"life-table/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

const (
	pixelBackend = "pixel"
	pixelHint    = "pixel backend unavailable"
)

func init() {
	core.RegisterBackend(core.Backend{
		Name:      pixelBackend,
		Priority:  20,
		Available: displayAvailable,
		Open:      openPixel,
	})
}

// displayAvailable reports whether a window can be opened. Only X11 and
// Wayland systems can be without one.
func displayAvailable() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

type pixelSurface struct {
	opts core.Options
}

func openPixel(opts core.Options) (core.Surface, error) {
	return &pixelSurface{opts: opts}, nil
}

// Size returns the grid that fills the window at the configured scale.
func (p *pixelSurface) Size() core.Size {
	return core.Size{W: p.opts.WindowWidth / p.opts.Scale, H: p.opts.WindowHeight / p.opts.Scale}
}

// Run opens the window and blocks until it is closed, the user quits or ctx
// is done.
func (p *pixelSurface) Run(ctx context.Context, sim core.Sim, tick time.Duration) error {
	game := New(ctx, sim, p.opts.Scale, tick)
	size := sim.Size()

	ebiten.SetWindowTitle(p.opts.Title + " - " + sim.Name())
	ebiten.SetTPS(p.opts.TPS)
	ebiten.SetWindowSize(size.W*p.opts.Scale, size.H*p.opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (p *pixelSurface) Close() error { return nil }

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(ctx context.Context, sim core.Sim, scale int, tick time.Duration) *Game {
	size := sim.Size()
	step := core.NewFixedStep(tick)
	step.Reset()
	return &Game{
		ctx:     ctx,
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.Palette),
		hud:     ui.NewHUD(sim),
		step:    step,
		scale:   scale,
	}
}

// Update handles per-frame logic and advances the simulation when a tick is due.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	due := g.step.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.SetPaused(g.paused)
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
