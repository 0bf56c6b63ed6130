package app

import (
	"fmt"
	"log/slog"
	"time"

	"measuregen/internal/config"
	"measuregen/internal/generator"
	"measuregen/internal/progress"
	"measuregen/internal/runlog"
	"measuregen/internal/stations"
)

// Run executes one generation run: load the station reference file, write the
// measurements file, and optionally record the run in the sqlite ledger.
func Run(cfg config.Config) error {
	slog.Info("config loaded",
		"rows", cfg.Rows,
		"weatherStations", cfg.StationsPath,
		"output", cfg.OutputPath,
		"seed", cfg.Seed,
		"runDB", cfg.RunDB,
		"quiet", cfg.Quiet,
	)

	set, err := stations.Load(cfg.StationsPath)
	if err != nil {
		return err
	}
	slog.Info("stations loaded", "count", len(set))

	start := time.Now()
	size, err := generator.Run(generator.Options{
		Rows:       cfg.Rows,
		OutputPath: cfg.OutputPath,
		Seed:       cfg.Seed,
		Quiet:      cfg.Quiet,
	}, set)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	slog.Info("completed",
		"rows", cfg.Rows,
		"size", progress.HumanBytes(size),
		"elapsed", elapsed.Round(time.Millisecond).String(),
	)

	if cfg.RunDB != "" {
		rec := runlog.Run{
			Rows:         cfg.Rows,
			StationsPath: cfg.StationsPath,
			OutputPath:   cfg.OutputPath,
			Seed:         cfg.Seed,
			SizeBytes:    size,
			Duration:     elapsed,
		}
		if err := runlog.Record(cfg.RunDB, rec); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		slog.Info("run recorded", "db", cfg.RunDB)
	}

	return nil
}
