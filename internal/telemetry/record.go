// Package telemetry records per-epoch lattice observables and summarises runs.
package telemetry

import (
	"log/slog"

	"ising/pkg/ising"
)

// Record is one row of observables captured after an epoch.
type Record struct {
	Epoch         int     `csv:"epoch"`
	Temperature   float64 `csv:"temperature"`
	MagneticField float64 `csv:"magnetic_field"`
	Energy        float64 `csv:"energy"`
	HeatCapacity  float64 `csv:"heat_capacity"`
	Magnetisation float64 `csv:"magnetisation"`
	Acceptance    float64 `csv:"acceptance"`
}

// FromObservables builds a Record from a lattice measurement.
func FromObservables(epoch int, obs ising.Observables, stats ising.EpochStats) Record {
	return Record{
		Epoch:         epoch,
		Temperature:   float64(obs.Temperature),
		MagneticField: float64(obs.MagneticField),
		Energy:        float64(obs.Energy),
		HeatCapacity:  float64(obs.HeatCapacity),
		Magnetisation: float64(obs.Magnetisation),
		Acceptance:    stats.AcceptanceRate(),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (r Record) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("epoch", r.Epoch),
		slog.Float64("temperature", r.Temperature),
		slog.Float64("magnetic_field", r.MagneticField),
		slog.Float64("energy", r.Energy),
		slog.Float64("heat_capacity", r.HeatCapacity),
		slog.Float64("magnetisation", r.Magnetisation),
		slog.Float64("acceptance", r.Acceptance),
	)
}
