package service

import (
	"context"
	"fmt"
	"time"

	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/format"
	"github.com/windoze95/servicehub-api/internal/geo"
	"github.com/windoze95/servicehub-api/internal/models"
	"github.com/windoze95/servicehub-api/internal/upstream"
)

// topQuakeCount is the length of the highlighted list.
const topQuakeCount = 10

// EarthquakeService is the business logic layer for the earthquake feed.
type EarthquakeService struct {
	Cfg      *config.Config
	Provider upstream.QuakeProvider
	Location *time.Location
}

// QuakeView is a display-ready earthquake.
type QuakeView struct {
	ID           string                `json:"id"`
	Place        string                `json:"place"`
	Latitude     float64               `json:"latitude"`
	Longitude    float64               `json:"longitude"`
	Coordinates  string                `json:"coordinates"`
	Magnitude    string                `json:"magnitude"`
	Class        format.MagnitudeClass `json:"class"`
	Significance int                   `json:"significance"`
	Tier         format.Tier           `json:"tier"`
	Depth        string                `json:"depth"`
	Time         string                `json:"time"`
	TsunamiAlert string                `json:"tsunamiAlert,omitempty"`
	MarkerSize   int                   `json:"markerSize"`
	DistanceKm   string                `json:"distanceKm,omitempty"`
	URL          string                `json:"url,omitempty"`
}

// QuakeFeed is the full earthquake page model.
type QuakeFeed struct {
	Timeframe      string             `json:"timeframe"`
	TimeframeLabel string             `json:"timeframeLabel"`
	Count          int                `json:"count"`
	Earthquakes    []QuakeView        `json:"earthquakes"`
	Top            []QuakeView        `json:"top"`
	Legend         []format.LegendRow `json:"legend"`
}

// NewEarthquakeService is the constructor function for initializing a new EarthquakeService.
func NewEarthquakeService(cfg *config.Config, provider upstream.QuakeProvider) *EarthquakeService {
	return &EarthquakeService{Cfg: cfg, Provider: provider, Location: time.UTC}
}

// Recent loads a feed. When origin is non-nil each event carries its
// distance from origin.
func (s *EarthquakeService) Recent(ctx context.Context, timeframe string, origin *geo.Point) (*QuakeFeed, error) {
	tf := upstream.ResolveTimeframe(timeframe)
	features, err := s.Provider.RecentEarthquakes(ctx, tf)
	if err != nil {
		return nil, err
	}

	views := make([]QuakeView, 0, len(features))
	for _, f := range features {
		views = append(views, s.ToQuakeView(f, origin))
	}

	top := views
	if len(top) > topQuakeCount {
		top = top[:topQuakeCount]
	}

	return &QuakeFeed{
		Timeframe:      tf,
		TimeframeLabel: upstream.TimeframeLabel(tf),
		Count:          len(views),
		Earthquakes:    views,
		Top:            top,
		Legend:         format.MagnitudeLegend(),
	}, nil
}

// ToQuakeView formats one feature.
func (s *EarthquakeService) ToQuakeView(f models.EarthquakeFeature, origin *geo.Point) QuakeView {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	mag := f.MagnitudeValue()
	view := QuakeView{
		ID:           f.ID,
		Place:        f.Place,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		Coordinates:  fmt.Sprintf("%.2f, %.2f", f.Latitude, f.Longitude),
		Magnitude:    format.Magnitude(f.Magnitude),
		Class:        format.ClassifyMagnitude(mag),
		Significance: f.Significance,
		Tier:         format.ClassifySignificance(f.Significance),
		Depth:        format.Depth(f.DepthKm),
		Time:         format.EventTime(f.TimeEpochMs, loc),
		TsunamiAlert: format.TsunamiAlert(f.TsunamiFlag),
		MarkerSize:   format.MarkerSize(mag),
		URL:          f.URL,
	}
	if d, ok := geo.DistanceKm(origin, &geo.Point{Lat: f.Latitude, Lon: f.Longitude}); ok {
		view.DistanceKm = d
	}
	return view
}
