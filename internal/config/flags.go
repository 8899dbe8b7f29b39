package config

import (
	"flag"
	"fmt"
	"strings"
)

// Overrides holds command-line values applied on top of the loaded YAML.
// Only flags that were set on the command line take effect.
type Overrides struct {
	ConfigPath string
	DumpConfig string

	Size        int
	Temperature float64
	Field       float64
	Lattice     string
	PAntiferro  float64
	Initial     string
	Seed        int64

	Extent          int
	TPS             int
	EpochsPerSecond float64
	ExportPath      string
	CSV             string
	LogLevel        string

	Set KeyValues
}

// NewOverrides returns Overrides whose flag defaults mirror the embedded config.
func NewOverrides() *Overrides {
	d := Defaults()
	return &Overrides{
		Size:            d.Lattice.Size,
		Temperature:     d.Lattice.Temperature,
		Field:           d.Lattice.MagneticField,
		Lattice:         d.Lattice.LatticeType,
		PAntiferro:      d.Lattice.PAntiferro,
		Initial:         d.Lattice.InitialState,
		Seed:            d.Lattice.Seed,
		Extent:          d.Display.Extent,
		TPS:             d.Display.TPS,
		EpochsPerSecond: d.Display.EpochsPerSecond,
		ExportPath:      d.Export.Path,
		CSV:             d.Telemetry.CSV,
		LogLevel:        d.Log.Level,
		Set:             KeyValues{},
	}
}

// Bind attaches the overrides to the provided FlagSet.
func (o *Overrides) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "YAML config file layered over the defaults")
	fs.StringVar(&o.DumpConfig, "dump-config", o.DumpConfig, "write the effective config to this path")
	fs.IntVar(&o.Size, "size", o.Size, "lattice side length")
	fs.Float64Var(&o.Temperature, "temperature", o.Temperature, "temperature")
	fs.Float64Var(&o.Field, "field", o.Field, "external magnetic field")
	fs.StringVar(&o.Lattice, "lattice", o.Lattice, "ferromagnetic, antiferromagnetic or spinglass")
	fs.Float64Var(&o.PAntiferro, "p", o.PAntiferro, "spin glass antiferromagnetic bond probability")
	fs.StringVar(&o.Initial, "initial", o.Initial, "initial state: random, up or down")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for lattice construction")
	fs.IntVar(&o.Extent, "extent", o.Extent, "preview extent in pixels")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second")
	fs.Float64Var(&o.EpochsPerSecond, "eps", o.EpochsPerSecond, "epochs per second while running")
	fs.StringVar(&o.ExportPath, "export", o.ExportPath, "PNG export path")
	fs.StringVar(&o.CSV, "csv", o.CSV, "per-epoch telemetry CSV path")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "debug, info, warn or error")
	fs.Var(&o.Set, "set", "lattice override as key=value (repeatable)")
}

// Apply copies every flag visited on fs into cfg, then applies -set pairs.
func (o *Overrides) Apply(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Lattice.Size = o.Size
		case "temperature":
			cfg.Lattice.Temperature = o.Temperature
		case "field":
			cfg.Lattice.MagneticField = o.Field
		case "lattice":
			cfg.Lattice.LatticeType = o.Lattice
		case "p":
			cfg.Lattice.PAntiferro = o.PAntiferro
		case "initial":
			cfg.Lattice.InitialState = o.Initial
		case "seed":
			cfg.Lattice.Seed = o.Seed
		case "extent":
			cfg.Display.Extent = o.Extent
		case "tps":
			cfg.Display.TPS = o.TPS
		case "eps":
			cfg.Display.EpochsPerSecond = o.EpochsPerSecond
		case "export":
			cfg.Export.Path = o.ExportPath
		case "csv":
			cfg.Telemetry.CSV = o.CSV
		case "log-level":
			cfg.Log.Level = o.LogLevel
		}
	})
	if len(o.Set) > 0 {
		cfg.Lattice = cfg.Lattice.WithOverrides(o.Set)
	}
}

// KeyValues collects repeated key=value flags.
type KeyValues map[string]string

func (kv KeyValues) String() string {
	parts := make([]string, 0, len(kv))
	for k, v := range kv {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (kv KeyValues) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	return nil
}
