package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/wind-terminal/internal/browser"
	"github.com/ngmaloney/wind-terminal/internal/config"
	"github.com/ngmaloney/wind-terminal/internal/logging"
	"github.com/ngmaloney/wind-terminal/internal/quiethours"
	"github.com/ngmaloney/wind-terminal/internal/ui"
	"github.com/ngmaloney/wind-terminal/internal/windcal"
)

var version = "dev"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	windURL := flag.String("url", cfg.WindURL, "Wind endpoint returning the latest readings as JSON")
	infoURL := flag.String("info-url", cfg.InfoURL, "Station page opened when the widget is activated")
	interval := flag.Duration("interval", cfg.Interval, "Refresh interval")
	quietHours := flag.String("quiet-hours", "", "Daily quiet hours, e.g. 22:00-07:00 (overrides WIND_QUIET_HOURS)")
	dnd := flag.Bool("dnd", false, "Force quiet hours on")
	flag.Parse()

	if *interval <= 0 {
		fmt.Println("Error: --interval must be positive.")
		os.Exit(1)
	}

	if *quietHours != "" {
		w, err := quiethours.ParseWindow(*quietHours)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cfg.QuietHours = w
	}

	logger, closeLog, err := logging.New(cfg, version)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	quiet := quiethours.Any{quiethours.Static(*dnd)}
	if runtime.GOOS == "darwin" {
		quiet = append(quiet, quiethours.NewMacOS())
	}
	quietWindow := "off"
	if cfg.QuietHours != nil {
		quiet = append(quiet, cfg.QuietHours)
		quietWindow = cfg.QuietHours.String()
	}

	logger.Info("starting widget",
		"identifier", ui.Identifier,
		"url", *windURL,
		"interval", interval.String(),
		"quietHours", quietWindow,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := ui.NewModel(ui.Options{
		Client:   windcal.NewClient(*windURL, cfg.HTTPTimeout),
		Quiet:    quiet,
		Opener:   browser.NewSystem(),
		Logger:   logger,
		Interval: *interval,
		Timeout:  cfg.HTTPTimeout,
		InfoURL:  *infoURL,
		Context:  ctx,
	})
	defer m.Close()

	start := time.Now()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
	logger.Info("widget stopped", "uptime", time.Since(start).Round(time.Second).String())
}
