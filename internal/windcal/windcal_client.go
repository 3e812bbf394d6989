package windcal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ngmaloney/wind-terminal/internal/models"
)

// Client implements WindClient against the windcal.com endpoint
type Client struct {
	url        string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new wind client. An empty url selects DefaultURL.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "WindTerminal/1.0 (github.com/ngmaloney/wind-terminal)",
	}
}

// URL returns the endpoint the client polls
func (c *Client) URL() string {
	return c.url
}

// CurrentWind retrieves the first reading of the station response
func (c *Client) CurrentWind(ctx context.Context) (*models.WindReading, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.url, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected response: %s", string(body))}
	}

	return decodeFirst(body)
}

// decodeFirst decodes a JSON array of readings and returns the first one
func decodeFirst(body []byte) (*models.WindReading, error) {
	var readings []windResponse
	if err := json.Unmarshal(body, &readings); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if len(readings) == 0 {
		return nil, ErrEmptyPayload
	}

	first := readings[0]
	if err := first.validate(); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &models.WindReading{
		ObservedAt: *first.Date,
		Direction:  *first.Direction,
		Average:    *first.Avg,
		Gust:       *first.Gust,
	}, nil
}

// Internal type for the station response. Pointers detect missing fields.

type windResponse struct {
	Date      *string  `json:"date"`
	Direction *string  `json:"direction"`
	Avg       *float64 `json:"avg"`
	Gust      *float64 `json:"gust"`
}

func (r windResponse) validate() error {
	var missing []error
	if r.Date == nil {
		missing = append(missing, errors.New(`missing field "date"`))
	}
	if r.Direction == nil {
		missing = append(missing, errors.New(`missing field "direction"`))
	}
	if r.Avg == nil {
		missing = append(missing, errors.New(`missing field "avg"`))
	}
	if r.Gust == nil {
		missing = append(missing, errors.New(`missing field "gust"`))
	}
	return errors.Join(missing...)
}
