//go:build !ebiten

package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"ising/internal/render"
	"ising/internal/sims/isingsim"
	"ising/internal/telemetry"
)

// Without the ebiten tag the binary runs a fixed number of epochs, streams
// observables to CSV and optionally saves the final lattice.
func main() {
	epochs := flag.Int("epochs", 1000, "epochs to run")
	png := flag.Bool("png", false, "save the final lattice to the export path")
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

	start := time.Now()
	logger.Info("starting headless run", "epochs", *epochs, "size", cfg.Lattice.Size, "seed", cfg.Lattice.Seed)
	for i := 0; i < *epochs; i++ {
		sim.Step()
		rec := sim.Record()
		if err := csv.WriteRecord(rec); err != nil {
			logger.Error("telemetry write failed", "error", err)
			os.Exit(1)
		}
		if cfg.Telemetry.LogEvery > 0 && rec.Epoch%cfg.Telemetry.LogEvery == 0 {
			logger.Info("epoch", "record", rec)
		}
	}
	logger.Info("run complete", "record", sim.Record(), "elapsed", time.Since(start).Round(time.Millisecond))

	if *png {
		rgb, side := sim.Export()
		if err := render.SavePNG(cfg.Export.Path, rgb, side); err != nil {
			logger.Error("export failed", "path", cfg.Export.Path, "error", err)
			os.Exit(1)
		}
		logger.Info("image exported", "path", cfg.Export.Path)
	}
}
