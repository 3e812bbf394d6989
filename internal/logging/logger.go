package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/ngmaloney/wind-terminal/internal/config"
)

const appName = "wind-terminal"

// New builds the application logger. The terminal belongs to the UI, so
// output goes to cfg.LogFile unless it is "-". The returned close func
// releases the file.
func New(cfg config.Config, version string) (*slog.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if cfg.LogFile != "-" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	return NewWithWriter(w, cfg, version), closeFn, nil
}

// NewWithWriter builds the logger on an arbitrary writer
func NewWithWriter(w io.Writer, cfg config.Config, version string) *slog.Logger {
	if cfg.AppEnv == "dev" {
		h := tint.NewHandler(w, &tint.Options{
			Level:      cfg.LogLevel,
			AddSource:  true,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.LogFile != "-",
		})
		return slog.New(h).With("app", appName)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})
	return slog.New(h).With(
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
	)
}
