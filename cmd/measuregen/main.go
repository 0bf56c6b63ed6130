// Command measuregen generates a synthetic weather measurements file: one
// "<station>;<temperature>" line per row, sampled from a reference list of
// station names. Built as benchmark input for row-oriented data pipelines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"measuregen/internal/app"
	"measuregen/internal/config"
	"measuregen/internal/logging"
)

const appName = "measuregen"

// Default version is "dev" if not set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load(appName, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Printf("%s %s\n", appName, version)
		os.Exit(0)
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	slog.Info("starting",
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
		"log_level", cfg.LogLevel.String(),
	)

	if err := app.Run(cfg); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}
