package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ngmaloney/wind-terminal/internal/browser"
	"github.com/ngmaloney/wind-terminal/internal/quiethours"
	"github.com/ngmaloney/wind-terminal/internal/windcal"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	LogFile  string // "-" logs to stderr

	WindURL     string
	InfoURL     string
	Interval    time.Duration
	HTTPTimeout time.Duration

	// QuietHours is nil when no daily quiet window is configured
	QuietHours *quiethours.Window
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	logFile := strings.TrimSpace(os.Getenv("WIND_LOG_FILE"))
	if logFile == "" {
		logFile = "wind-terminal.log"
	}

	windURL := strings.TrimSpace(os.Getenv("WIND_URL"))
	if windURL == "" {
		windURL = windcal.DefaultURL
	}

	infoURL := strings.TrimSpace(os.Getenv("WIND_INFO_URL"))
	if infoURL == "" {
		infoURL = browser.DefaultInfoURL
	}

	interval, err := parsePositiveDuration("WIND_INTERVAL", "60s")
	if err != nil {
		return Config{}, err
	}

	httpTimeout, err := parsePositiveDuration("WIND_HTTP_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	var quiet *quiethours.Window
	if s := strings.TrimSpace(os.Getenv("WIND_QUIET_HOURS")); s != "" {
		quiet, err = quiethours.ParseWindow(s)
		if err != nil {
			return Config{}, fmt.Errorf("WIND_QUIET_HOURS: %w", err)
		}
	}

	return Config{
		AppEnv:      appEnv,
		LogLevel:    level,
		LogFile:     logFile,
		WindURL:     windURL,
		InfoURL:     infoURL,
		Interval:    interval,
		HTTPTimeout: httpTimeout,
		QuietHours:  quiet,
	}, nil
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		s = def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, s)
	}
	return d, nil
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
