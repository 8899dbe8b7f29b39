package telemetry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the records sampled at one temperature.
//
// SpecificHeat and Susceptibility are the textbook fluctuation estimates
// Var(E)/(T²·N) and N·Var(|m|)/T computed from the sampled internal energy.
// They are reported next to MeanHeatCapacity, the lattice's own readout, and
// do not replace it.
type Summary struct {
	Temperature          float64 `csv:"temperature"`
	MagneticField        float64 `csv:"magnetic_field"`
	Samples              int     `csv:"samples"`
	MeanEnergy           float64 `csv:"mean_energy"`
	EnergyStdDev         float64 `csv:"energy_std"`
	MeanAbsMagnetisation float64 `csv:"mean_abs_magnetisation"`
	MagnetisationStdDev  float64 `csv:"magnetisation_std"`
	MeanHeatCapacity     float64 `csv:"mean_heat_capacity"`
	SpecificHeat         float64 `csv:"specific_heat"`
	Susceptibility       float64 `csv:"susceptibility"`
	MeanAcceptance       float64 `csv:"mean_acceptance"`
}

// Summarize reduces records sampled at a fixed temperature over a lattice of
// the given number of sites. Variances need at least two samples and are zero
// otherwise; the fluctuation estimates are zero at non-positive temperature.
func Summarize(records []Record, sites int) Summary {
	n := len(records)
	if n == 0 {
		return Summary{}
	}
	energy := make([]float64, n)
	absMag := make([]float64, n)
	heat := make([]float64, n)
	accept := make([]float64, n)
	for i, r := range records {
		energy[i] = r.Energy
		absMag[i] = math.Abs(r.Magnetisation)
		heat[i] = r.HeatCapacity
		accept[i] = r.Acceptance
	}

	last := records[n-1]
	s := Summary{
		Temperature:      last.Temperature,
		MagneticField:    last.MagneticField,
		Samples:          n,
		MeanHeatCapacity: stat.Mean(heat, nil),
		MeanAcceptance:   stat.Mean(accept, nil),
	}

	var varE, varM float64
	s.MeanEnergy, varE = meanVariance(energy)
	s.MeanAbsMagnetisation, varM = meanVariance(absMag)
	s.EnergyStdDev = math.Sqrt(varE)
	s.MagnetisationStdDev = math.Sqrt(varM)

	t := s.Temperature
	if t > 0 && sites > 0 {
		s.SpecificHeat = varE / (t * t * float64(sites))
		s.Susceptibility = float64(sites) * varM / t
	}
	return s
}

func meanVariance(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanVariance(x, nil)
}
