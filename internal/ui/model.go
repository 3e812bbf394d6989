package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/ngmaloney/wind-terminal/internal/browser"
	"github.com/ngmaloney/wind-terminal/internal/models"
	"github.com/ngmaloney/wind-terminal/internal/quiethours"
	"github.com/ngmaloney/wind-terminal/internal/windcal"
)

// Widget metadata shown to the host
const (
	Identifier         = "currentWind"
	CustomizationLabel = "Current wind in Podersdorf"
)

const buttonZoneID = "wind-button"

// Options wires the widget to its collaborators. Zero values get defaults.
type Options struct {
	Client   windcal.WindClient
	Quiet    quiethours.Checker
	Opener   browser.Opener
	Logger   *slog.Logger
	Interval time.Duration // refresh period, 60s by default
	Timeout  time.Duration // per-fetch timeout, 30s by default
	InfoURL  string

	// Context cancels in-flight fetches when the widget is torn down
	Context context.Context
}

// Model is the wind widget. It owns the refresh timer, the single-flight
// guard and the quiet-hours gate, and renders the colour-coded label.
type Model struct {
	client   windcal.WindClient
	quiet    quiethours.Checker
	opener   browser.Opener
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration
	infoURL  string
	ctx      context.Context

	width    int
	height   int
	appeared bool

	// Single-flight guard, only touched from Update
	isFetching bool

	// What the button shows right now
	label string
	fill  lipgloss.TerminalColor // nil keeps the default

	// Last successful presentation, restored when a cycle is dropped
	last    *models.Presentation
	updated time.Time

	keys  keyMap
	help  help.Model
	zones *zone.Manager
}

// NewModel creates the widget model
func NewModel(opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = 60 * time.Second
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Client == nil {
		opts.Client = windcal.NewClient(windcal.DefaultURL, opts.Timeout)
	}
	if opts.Quiet == nil {
		opts.Quiet = quiethours.Static(false)
	}
	if opts.Opener == nil {
		opts.Opener = browser.NewSystem()
	}
	if opts.InfoURL == "" {
		opts.InfoURL = browser.DefaultInfoURL
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	return Model{
		client:   opts.Client,
		quiet:    opts.Quiet,
		opener:   opts.Opener,
		logger:   opts.Logger,
		interval: opts.Interval,
		timeout:  opts.Timeout,
		infoURL:  opts.InfoURL,
		ctx:      opts.Context,
		keys:     defaultKeyMap(),
		help:     help.New(),
		zones:    zone.New(),
	}
}

// Init starts the refresh timer. The first fetch waits until the view is
// shown (the first window size message).
func (m Model) Init() tea.Cmd {
	return scheduleTick(m.interval)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.appeared {
			m.appeared = true
			return m.refresh()
		}
		return m, nil

	case tickMsg:
		var cmd tea.Cmd
		m, cmd = m.refresh()
		return m, tea.Batch(scheduleTick(m.interval), cmd)

	case windFetchedMsg:
		return m.applyFetch(msg), nil

	case linkOpenedMsg:
		if msg.err != nil {
			m.logger.Warn("failed to open station page", "url", msg.url, "error", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Activate):
			return m.activate()
		case key.Matches(msg, m.keys.Refresh):
			return m.refresh()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && m.clicked(msg) {
			return m.activate()
		}
	}

	return m, nil
}

// refresh is the shared entry point of the timer and the manual triggers
func (m Model) refresh() (Model, tea.Cmd) {
	return m.refreshWith(m.quiet.Active())
}

func (m Model) refreshWith(quiet bool) (Model, tea.Cmd) {
	if quiet {
		m.logger.Debug("quiet hours active, skipping wind fetch")
		m.label = glyphSuppressed
		m.fill = colorNeutral
		return m, nil
	}

	if m.isFetching {
		return m, nil
	}

	m.logger.Debug("fetching wind values")
	m.isFetching = true
	m.label = glyphLoading
	return m, fetchWind(m.ctx, m.client, m.timeout)
}

// activate handles a tap on the button: refresh, and outside quiet hours
// also open the station page
func (m Model) activate() (Model, tea.Cmd) {
	quiet := m.quiet.Active()

	var cmd tea.Cmd
	m, cmd = m.refreshWith(quiet)
	if quiet {
		return m, cmd
	}
	return m, tea.Batch(cmd, openLink(m.opener, m.infoURL))
}

// applyFetch runs on the UI loop when a fetch completes
func (m Model) applyFetch(msg windFetchedMsg) Model {
	m.isFetching = false

	if msg.err != nil || msg.reading == nil {
		err := msg.err
		if err == nil {
			err = windcal.ErrEmptyPayload
		}
		m.logger.Warn("wind update dropped", "kind", windcal.Kind(err), "error", err)
		m.restore()
		return m
	}

	p := models.Present(*msg.reading)
	m.logger.Info("fetched wind values",
		"observed", msg.reading.ObservedAt,
		"direction", msg.reading.Direction,
		"avg", msg.reading.Average,
		"gust", msg.reading.Gust,
		"tier", p.Tier,
	)

	m.last = &p
	m.updated = time.Now()
	m.restore()
	return m
}

// restore puts the last successful presentation back on the button. With
// nothing fetched yet the current label stays.
func (m *Model) restore() {
	if m.last == nil {
		return
	}
	m.label = m.last.Title
	m.fill = nil
	if c, ok := m.last.Color(); ok {
		m.fill = lipgloss.Color(c.Hex())
	}
}

func (m Model) clicked(msg tea.MouseMsg) bool {
	z := m.zones.Get(buttonZoneID)
	if z == nil {
		return false
	}
	return z.InBounds(msg)
}

// Label returns the text currently shown on the button
func (m Model) Label() string {
	return m.label
}

// Fetching reports whether a fetch is in flight
func (m Model) Fetching() bool {
	return m.isFetching
}

// Close releases the click tracking resources
func (m Model) Close() {
	m.zones.Close()
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	style := buttonStyle
	switch m.fill {
	case nil:
	case colorNeutral:
		style = style.Background(m.fill)
	default:
		style = style.Background(m.fill).Foreground(colorInk)
	}
	button := m.zones.Mark(buttonZoneID, style.Render(m.label))

	var sections []string
	sections = append(sections, titleStyle.Render(CustomizationLabel))
	sections = append(sections, "")
	sections = append(sections, button)

	if !m.updated.IsZero() {
		sections = append(sections, mutedStyle.Render("Updated "+m.updated.Format("15:04")))
	}

	sections = append(sections, "", m.help.View(m.keys))

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
