package app

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"measuregen/internal/config"
	"measuregen/internal/generator"
	"measuregen/internal/runlog"
)

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	stationsPath := filepath.Join(dir, "weather_stations.csv")
	outputPath := filepath.Join(dir, "measurements.txt")
	ledgerPath := filepath.Join(dir, "runs.db")

	err := os.WriteFile(stationsPath, []byte("Seattle;extra\nPortland;extra\n#comment\n"), 0o644)
	if err != nil {
		t.Fatalf("write stations file: %v", err)
	}

	cfg := config.Config{
		Rows:         5,
		StationsPath: stationsPath,
		OutputPath:   outputPath,
		Seed:         7,
		RunDB:        ledgerPath,
		Quiet:        true,
	}
	if err := Run(cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("output has %d lines; want 5", len(lines))
	}
	lineRe := regexp.MustCompile(`^(Seattle|Portland);-?\d+\.\d$`)
	for i, line := range lines {
		if !lineRe.MatchString(line) {
			t.Errorf("line %d = %q; does not match %v", i, line, lineRe)
		}
	}

	db, err := runlog.Open(ledgerPath)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Fatalf("close ledger: %v", closeErr)
		}
	}()
	var rowCount, sizeBytes int64
	if err := db.QueryRow(`SELECT row_count, size_bytes FROM runs`).Scan(&rowCount, &sizeBytes); err != nil {
		t.Fatalf("query ledger: %v", err)
	}
	if rowCount != 5 {
		t.Errorf("ledger row_count = %d; want 5", rowCount)
	}
	if sizeBytes != int64(len(data)) {
		t.Errorf("ledger size_bytes = %d; want %d", sizeBytes, len(data))
	}
}

func TestRunMissingStationsFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Rows:         5,
		StationsPath: filepath.Join(dir, "nope.csv"),
		OutputPath:   filepath.Join(dir, "measurements.txt"),
		Quiet:        true,
	}
	err := Run(cfg)
	if err == nil || !strings.Contains(err.Error(), "could not open file") {
		t.Fatalf("Run error = %v; want could not open file", err)
	}
	if _, statErr := os.Stat(cfg.OutputPath); !os.IsNotExist(statErr) {
		t.Error("output file exists after load failure")
	}
}

func TestRunEmptyStationSet(t *testing.T) {
	dir := t.TempDir()
	stationsPath := filepath.Join(dir, "weather_stations.csv")
	if err := os.WriteFile(stationsPath, []byte("# only comments\n"), 0o644); err != nil {
		t.Fatalf("write stations file: %v", err)
	}

	cfg := config.Config{
		Rows:         5,
		StationsPath: stationsPath,
		OutputPath:   filepath.Join(dir, "measurements.txt"),
		Quiet:        true,
	}
	err := Run(cfg)
	if !errors.Is(err, generator.ErrNoStations) {
		t.Fatalf("Run error = %v; want ErrNoStations", err)
	}
	if _, statErr := os.Stat(cfg.OutputPath); !os.IsNotExist(statErr) {
		t.Error("output file exists after ErrNoStations")
	}
}
