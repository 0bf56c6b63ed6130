package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	Rows         uint64
	StationsPath string
	OutputPath   string
	Seed         int64
	RunDB        string
	Quiet        bool
	ShowVersion  bool
}

// Load parses the command line (generation parameters) and the environment
// (APP_ENV, LOG_LEVEL — ambient settings that never affect the output).
// Returns flag.ErrHelp wrapped when -help was requested.
func Load(name string, args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Uint64Var(&cfg.Rows, "rows", 1_000_000_000, "number of rows to generate")
	fs.StringVar(&cfg.StationsPath, "weather-stations", "./data/weather_stations.csv", "path to the weather station reference file")
	fs.StringVar(&cfg.OutputPath, "output", "./data/measurements.txt", "path of the file to generate (created or truncated)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed; 0 picks one from the clock")
	fs.StringVar(&cfg.RunDB, "run-db", "", "optional sqlite file recording completed runs")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress the progress bar")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}
	cfg.AppEnv = appEnv

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
