package windcal

import (
	"context"

	"github.com/ngmaloney/wind-terminal/internal/models"
)

// DefaultURL returns the latest reading only
const DefaultURL = "http://windcal.com/currentWind.php?limit=1"

// WindClient defines the interface for fetching the current wind reading
type WindClient interface {
	// CurrentWind retrieves the most recent reading published by the station
	CurrentWind(ctx context.Context) (*models.WindReading, error)
}
