package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/wind-terminal/internal/browser"
	"github.com/ngmaloney/wind-terminal/internal/models"
	"github.com/ngmaloney/wind-terminal/internal/windcal"
)

// Message types for async operations

// tickMsg is sent by the refresh timer
type tickMsg time.Time

// windFetchedMsg is sent when a wind fetch completes, successful or not
type windFetchedMsg struct {
	reading *models.WindReading
	err     error
}

// linkOpenedMsg is sent after the info page launcher returns
type linkOpenedMsg struct {
	url string
	err error
}

// scheduleTick arms the next refresh
func scheduleTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchWind fetches the current reading in the background
func fetchWind(parent context.Context, client windcal.WindClient, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		reading, err := client.CurrentWind(ctx)
		return windFetchedMsg{reading: reading, err: err}
	}
}

// openLink opens the station page in the default browser
func openLink(opener browser.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: opener.Open(url)}
	}
}
