package models

// EarthquakeFeature is one event from the USGS summary feed.
type EarthquakeFeature struct {
	ID           string   `json:"id"`
	Magnitude    *float64 `json:"magnitude"`
	DepthKm      *float64 `json:"depthKm"`
	Longitude    float64  `json:"longitude"`
	Latitude     float64  `json:"latitude"`
	TimeEpochMs  int64    `json:"timeEpochMs"`
	Place        string   `json:"place"`
	TsunamiFlag  int      `json:"tsunamiFlag"`
	Significance int      `json:"significance"`
	URL          string   `json:"url,omitempty"`
}

// MagnitudeValue returns the magnitude, or 0 when the feed omitted it.
func (f EarthquakeFeature) MagnitudeValue() float64 {
	if f.Magnitude == nil {
		return 0
	}
	return *f.Magnitude
}
