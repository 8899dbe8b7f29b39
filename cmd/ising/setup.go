package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ising/internal/config"
	"ising/internal/logging"
)

// setup parses flags, loads the layered config and installs the logger.
func setup(fs *flag.FlagSet, args []string) (*config.Config, *slog.Logger, error) {
	o := config.NewOverrides()
	o.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	o.Apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.New(os.Stderr, cfg.Log.Level)
	slog.SetDefault(logger)

	if o.DumpConfig != "" {
		if err := cfg.WriteYAML(o.DumpConfig); err != nil {
			return nil, nil, fmt.Errorf("dump config: %w", err)
		}
		logger.Info("config written", "path", o.DumpConfig)
	}
	return cfg, logger, nil
}
