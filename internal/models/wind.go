package models

import (
	"fmt"
	"strconv"
)

// WindReading is a single wind observation as published by the station.
// Speeds are in knots.
type WindReading struct {
	ObservedAt string  `json:"date"`
	Direction  string  `json:"direction"` // e.g., "NE", "SW"
	Average    float64 `json:"avg"`
	Gust       float64 `json:"gust"`
}

// Tier buckets the average wind speed into a display colour
type Tier string

const (
	TierCalm    Tier = "Calm"
	TierBreezy  Tier = "Breezy"
	TierStrong  Tier = "Strong"
	TierHigh    Tier = "High"
	TierExtreme Tier = "Extreme"
)

// RGB is a normalized colour with components in [0,1]. Alpha is always 1.
type RGB struct {
	R, G, B float64
}

// Hex renders the colour as a #RRGGBB string
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int(v*255 + 0.5)
}

// Reference colours for each tier. Calm has none and keeps the default.
var tierColors = map[Tier]RGB{
	TierBreezy:  {R: 0.294, G: 0.988, B: 0.137},
	TierStrong:  {R: 0.969, G: 0.635, B: 0.133},
	TierHigh:    {R: 0.949, G: 0.333, B: 0.129},
	TierExtreme: {R: 0.957, G: 0.133, B: 0.627},
}

// Color returns the tier colour. ok is false for TierCalm.
func (t Tier) Color() (c RGB, ok bool) {
	c, ok = tierColors[t]
	return c, ok
}

// TierFor picks the tier for an average speed. Ranges are half-open [low, high).
func TierFor(average float64) Tier {
	switch {
	case average < 12:
		return TierCalm
	case average < 18:
		return TierBreezy
	case average < 25:
		return TierStrong
	case average < 30:
		return TierHigh
	default:
		return TierExtreme
	}
}

// Presentation is what the widget shows for a reading
type Presentation struct {
	Title string
	Tier  Tier
}

// Color is a shortcut for p.Tier.Color()
func (p Presentation) Color() (RGB, bool) {
	return p.Tier.Color()
}

// Present maps a reading to its label and colour tier.
//
// The label is the direction on the first line and the truncated average on
// the second. The truncated gust is appended as "avg-gust" only when it is
// strictly greater than the truncated average.
func Present(r WindReading) Presentation {
	avg := int(r.Average)
	gust := int(r.Gust)

	speed := strconv.Itoa(avg)
	if gust > avg {
		speed += "-" + strconv.Itoa(gust)
	}

	return Presentation{
		Title: r.Direction + "\n" + speed + " kts",
		Tier:  TierFor(r.Average),
	}
}
