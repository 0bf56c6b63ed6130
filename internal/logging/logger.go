package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"measuregen/internal/config"
)

// New builds the process logger: a tinted handler with source locations for
// dev, plain JSON otherwise. Logs go to stderr so stdout stays clean for
// anything piped out of the tool.
func New(cfg config.Config, version string, appName string) *slog.Logger {
	if cfg.AppEnv == "dev" {
		h := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      cfg.LogLevel,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		})
		return slog.New(h).With("app", appName)
	}

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})
	return slog.New(h).With(
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
	)
}
