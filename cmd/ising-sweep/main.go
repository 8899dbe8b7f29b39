// Command ising-sweep equilibrates lattices across a range of temperatures and
// reports magnetisation and fluctuation estimates per temperature.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/guptarohit/asciigraph"

	"ising/internal/logging"
	"ising/internal/telemetry"
	"ising/pkg/ising"
)

func main() {
	tmin := flag.Float64("tmin", 0.5, "lowest temperature")
	tmax := flag.Float64("tmax", 4.0, "highest temperature")
	points := flag.Int("points", 15, "number of temperatures")
	size := flag.Int("size", 32, "lattice side length")
	warmup := flag.Int("warmup", 200, "epochs discarded before sampling")
	samples := flag.Int("samples", 400, "epochs sampled per temperature")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 42, "base seed; point i uses seed+i")
	latticeName := flag.String("lattice", "ferromagnetic", "ferromagnetic, antiferromagnetic or spinglass")
	p := flag.Float64("p", 0.5, "spin glass antiferromagnetic bond probability")
	field := flag.Float64("field", 0, "external magnetic field")
	initialName := flag.String("initial", "up", "initial state: random, up or down")
	csvPath := flag.String("csv", "", "write summaries to this CSV path (stdout when empty)")
	plot := flag.Bool("plot", false, "print ASCII plots of |m| and specific heat")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger := logging.New(os.Stderr, *logLevel)

	lattice, err := ising.ParseLatticeType(*latticeName, *p)
	if err != nil {
		logger.Error("invalid lattice", "error", err)
		os.Exit(1)
	}
	initial, err := ising.ParseInitialState(*initialName)
	if err != nil {
		logger.Error("invalid initial state", "error", err)
		os.Exit(1)
	}
	if *samples < 1 || *warmup < 0 || *points < 1 {
		logger.Error("samples and points must be positive, warmup non-negative")
		os.Exit(1)
	}

	params := sweepParams{
		size:    *size,
		warmup:  *warmup,
		samples: *samples,
		field:   *field,
		lattice: lattice,
		initial: initial,
		seed:    *seed,
	}
	temps := temperatures(*tmin, *tmax, *points)

	logger.Info("sweeping",
		"points", len(temps),
		"workers", *workers,
		"size", *size,
		"lattice", lattice.String(),
		"warmup", *warmup,
		"samples", *samples,
	)

	start := time.Now()
	summaries, err := sweep(params, temps, *workers, func(s telemetry.Summary) {
		logger.Debug("point done", "temperature", s.Temperature, "abs_m", s.MeanAbsMagnetisation, "specific_heat", s.SpecificHeat)
	})
	if err != nil {
		logger.Error("sweep failed", "error", err)
		os.Exit(1)
	}
	logger.Info("sweep complete", "elapsed", time.Since(start).Round(time.Millisecond))

	out := telemetry.NewWriter(os.Stdout)
	if *csvPath != "" {
		out, err = telemetry.Create(*csvPath)
		if err != nil {
			logger.Error("failed to open csv", "error", err)
			os.Exit(1)
		}
	}
	if err := out.Write(summaries); err != nil {
		logger.Error("failed to write summaries", "error", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		logger.Error("failed to close csv", "error", err)
		os.Exit(1)
	}

	if *plot {
		printPlots(summaries)
	}
}

func printPlots(summaries []telemetry.Summary) {
	if len(summaries) < 2 {
		return
	}
	mag := make([]float64, len(summaries))
	heat := make([]float64, len(summaries))
	for i, s := range summaries {
		mag[i] = s.MeanAbsMagnetisation
		heat[i] = s.SpecificHeat
	}
	first, last := summaries[0].Temperature, summaries[len(summaries)-1].Temperature
	caption := func(name string) string {
		return fmt.Sprintf("%s vs T (%.2f..%.2f)", name, first, last)
	}
	fmt.Fprintln(os.Stderr, asciigraph.Plot(mag, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption(caption("|m|"))))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, asciigraph.Plot(heat, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption(caption("specific heat"))))
}
