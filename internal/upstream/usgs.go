package upstream

import (
	"context"
	"net/http"
	"strings"

	"github.com/windoze95/servicehub-api/internal/models"
)

// DefaultQuakeBaseURL is the USGS summary feed root.
const DefaultQuakeBaseURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary"

// Feed timeframes.
const (
	TimeframeHour  = "all_hour"
	TimeframeDay   = "all_day"
	TimeframeWeek  = "all_week"
	TimeframeMonth = "all_month"
)

// Timeframes lists the supported feeds in display order.
var Timeframes = []string{TimeframeHour, TimeframeDay, TimeframeWeek, TimeframeMonth}

var timeframeLabels = map[string]string{
	TimeframeHour:  "Last Hour",
	TimeframeDay:   "Last 24 Hours",
	TimeframeWeek:  "Last Week",
	TimeframeMonth: "Last Month",
}

// ResolveTimeframe returns tf when supported, else the daily feed.
func ResolveTimeframe(tf string) string {
	if _, ok := timeframeLabels[tf]; ok {
		return tf
	}
	return TimeframeDay
}

// TimeframeLabel returns the human label for a (resolved) timeframe.
func TimeframeLabel(tf string) string {
	return timeframeLabels[ResolveTimeframe(tf)]
}

// USGSProvider implements QuakeProvider.
type USGSProvider struct {
	baseURL string
	fetch   *fetcher
}

// NewUSGSProvider creates an earthquake feed adapter.
func NewUSGSProvider(baseURL string, httpClient *http.Client, rps float64) *USGSProvider {
	if baseURL == "" {
		baseURL = DefaultQuakeBaseURL
	}
	return &USGSProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetch:   newFetcher("usgs", httpClient, rps),
	}
}

type featureCollection struct {
	Features []geoFeature `json:"features"`
}

type geoFeature struct {
	ID         string `json:"id"`
	Properties struct {
		Mag     *float64 `json:"mag"`
		Time    int64    `json:"time"`
		Place   string   `json:"place"`
		Tsunami int      `json:"tsunami"`
		Sig     int      `json:"sig"`
		URL     string   `json:"url"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}

// RecentEarthquakes reads one summary feed. Features without a usable
// position are dropped.
func (p *USGSProvider) RecentEarthquakes(ctx context.Context, timeframe string) ([]models.EarthquakeFeature, error) {
	reqURL := p.baseURL + "/" + ResolveTimeframe(timeframe) + ".geojson"

	var fc featureCollection
	if err := p.fetch.getJSON(ctx, reqURL, &fc); err != nil {
		return nil, err
	}

	features := make([]models.EarthquakeFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		coords := f.Geometry.Coordinates
		if len(coords) < 2 {
			continue
		}
		feature := models.EarthquakeFeature{
			ID:           f.ID,
			Magnitude:    f.Properties.Mag,
			Longitude:    coords[0],
			Latitude:     coords[1],
			TimeEpochMs:  f.Properties.Time,
			Place:        f.Properties.Place,
			TsunamiFlag:  f.Properties.Tsunami,
			Significance: f.Properties.Sig,
			URL:          f.Properties.URL,
		}
		if len(coords) > 2 {
			depth := coords[2]
			feature.DepthKm = &depth
		}
		features = append(features, feature)
	}
	return features, nil
}
