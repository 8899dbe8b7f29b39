package app

import (
	"log/slog"

	"ising/internal/telemetry"
)

// Options configures the interactive host.
type Options struct {
	// Extent is the target preview side in pixels before integer upscaling.
	Extent          int
	PanelWidth      int
	EpochsPerSecond float64
	ExportPath      string

	// Telemetry receives one record per epoch when non-nil.
	Telemetry *telemetry.Writer
	// LogEvery logs a record every n epochs; zero disables.
	LogEvery int

	Logger *slog.Logger
}
