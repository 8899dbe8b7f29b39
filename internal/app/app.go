//go:build ebiten

package app

import (
	"context"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ising/internal/core"
	"ising/internal/logging"
	"ising/internal/render"
	"ising/internal/sims/isingsim"
	"ising/internal/ui"
	"ising/pkg/ising"
)

// Game adapts the Ising sim to the ebiten.Game interface.
type Game struct {
	sim     *isingsim.Sim
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	opts     Options
	log      *slog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	export   *ExportTask
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim *isingsim.Sim, opts Options) *Game {
	ctx, cancel := context.WithCancel(context.Background())
	return &Game{
		sim:     sim,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(sim, opts.PanelWidth),
		overlay: ui.NewOverlay(sim),
		pacer:   core.NewFixedStep(opts.EpochsPerSecond),
		opts:    opts,
		log:     logging.OrDefault(opts.Logger),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Reset rebuilds the lattice from the pending configuration.
func (g *Game) Reset(seed int64) {
	if err := g.sim.Reset(seed); err != nil {
		g.log.Error("regenerate failed", "err", err)
		g.hud.SetAlert("Invalid parameters: " + err.Error())
		return
	}
	g.hud.SetAlert("")
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.pacer.Pause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.startExport()
	}
	if res, ok := g.export.Poll(); ok {
		g.hud.SetAlert(res.Message())
		g.export = nil
	}

	g.overlay.Update()
	g.hud.Update(g.previewSide())

	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		g.tickOnce = false
		g.stepEpoch()
	}
	return nil
}

func (g *Game) stepEpoch() {
	g.sim.Step()
	if g.opts.Telemetry == nil && g.opts.LogEvery <= 0 {
		return
	}
	rec := g.sim.Record()
	if err := g.opts.Telemetry.WriteRecord(rec); err != nil {
		g.log.Warn("telemetry write failed", "err", err)
	}
	if g.opts.LogEvery > 0 && rec.Epoch%g.opts.LogEvery == 0 {
		g.log.Info("epoch", "record", rec)
	}
}

func (g *Game) startExport() {
	if g.export != nil {
		return
	}
	g.paused = true
	g.pacer.Pause()
	rgb, side := g.sim.Export()
	g.export = StartExport(g.ctx, g.opts.ExportPath, rgb, side, g.log)
	g.hud.SetAlert("Saving image...")
}

// Close cancels any pending export and waits for it.
func (g *Game) Close() {
	g.cancel()
	if g.export != nil {
		g.export.Wait()
		g.export = nil
	}
}

// Draw renders the lattice, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Preview(g.opts.Extent))
	g.overlay.Draw(screen, ising.PreviewScale(g.opts.Extent, g.sim.Size().W))
	_, h := g.ScreenSize()
	g.hud.Draw(screen, g.previewSide(), h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// ScreenSize is the preview plus the HUD panel.
func (g *Game) ScreenSize() (int, int) {
	side := g.previewSide()
	h := side
	if m := g.hud.MinHeight(); m > h {
		h = m
	}
	return side + g.opts.PanelWidth, h
}

func (g *Game) previewSide() int {
	n := g.sim.Size().W
	return n * ising.PreviewScale(g.opts.Extent, n)
}
