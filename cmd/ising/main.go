//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ising/internal/app"
	"ising/internal/sims/isingsim"
	"ising/internal/telemetry"
)

func main() {
	cfg, logger, err := setup(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sim, err := isingsim.New(cfg.Lattice, logger)
	if err != nil {
		logger.Error("failed to build lattice", "error", err)
		os.Exit(1)
	}

	csv, err := telemetry.Create(cfg.Telemetry.CSV)
	if err != nil {
		logger.Error("failed to open telemetry", "error", err)
		os.Exit(1)
	}
	defer csv.Close()

	game := app.New(sim, app.Options{
		Extent:          cfg.Display.Extent,
		PanelWidth:      cfg.Display.PanelWidth,
		EpochsPerSecond: cfg.Display.EpochsPerSecond,
		ExportPath:      cfg.Export.Path,
		Telemetry:       csv,
		LogEvery:        cfg.Telemetry.LogEvery,
		Logger:          logger,
	})
	defer game.Close()

	w, h := game.ScreenSize()
	ebiten.SetWindowTitle("Ising lattice")
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "error", err)
		os.Exit(1)
	}
}
