package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/format"
	"github.com/windoze95/servicehub-api/internal/logger"
	"github.com/windoze95/servicehub-api/internal/models"
	"github.com/windoze95/servicehub-api/internal/repository"
	"github.com/windoze95/servicehub-api/internal/upstream"
	"go.uber.org/zap"
)

// WeatherService is the business logic layer for current weather lookups.
type WeatherService struct {
	Cfg      *config.Config
	Provider upstream.WeatherProvider
	History  *repository.HistoryRepository
}

// WeatherLocation describes where a reading was taken.
type WeatherLocation struct {
	Name        string  `json:"name,omitempty"`
	Country     string  `json:"country,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Coordinates string  `json:"coordinates"`
}

// WeatherView is a display-ready current-conditions reading.
type WeatherView struct {
	Location      WeatherLocation         `json:"location"`
	Timezone      string                  `json:"timezone"`
	ObservedAt    string                  `json:"observedAt"`
	Condition     format.WeatherCondition `json:"condition"`
	Temperature   string                  `json:"temperature"`
	FeelsLike     string                  `json:"feelsLike"`
	Humidity      string                  `json:"humidity"`
	Precipitation string                  `json:"precipitation"`
	CloudCover    string                  `json:"cloudCover"`
	WindSpeed     string                  `json:"windSpeed"`
	WindDirection string                  `json:"windDirection"`
	Recent        []string                `json:"recent,omitempty"`
}

// NewWeatherService is the constructor function for initializing a new WeatherService.
func NewWeatherService(cfg *config.Config, provider upstream.WeatherProvider, history *repository.HistoryRepository) *WeatherService {
	return &WeatherService{Cfg: cfg, Provider: provider, History: history}
}

// ByCity looks up a city and records it in the recent list on success.
// A failure to persist history does not fail the lookup.
func (s *WeatherService) ByCity(ctx context.Context, city string) (*WeatherView, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, upstream.ErrEmptyQuery
	}

	reading, err := s.Provider.WeatherByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	view := ToWeatherView(reading)

	if s.History != nil {
		recent, err := s.History.Record(ctx, city)
		if err != nil {
			logger.Get().Warn("failed to record recent search", zap.String("city", city), zap.Error(err))
		} else {
			view.Recent = recent
		}
	}
	return view, nil
}

// ByCoordinates looks up conditions at a position. History is not touched.
func (s *WeatherService) ByCoordinates(ctx context.Context, lat, lon float64) (*WeatherView, error) {
	reading, err := s.Provider.CurrentWeather(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return ToWeatherView(reading), nil
}

// Recent returns the recent city list, most recent first.
func (s *WeatherService) Recent(ctx context.Context) ([]string, error) {
	if s.History == nil {
		return []string{}, nil
	}
	list, err := s.History.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent searches: %w", err)
	}
	return list, nil
}

// ToWeatherView formats a reading for display.
func ToWeatherView(r *models.WeatherReading) *WeatherView {
	loc := WeatherLocation{Latitude: r.Latitude, Longitude: r.Longitude}
	if r.Location != nil {
		loc.Name = r.Location.Name
		loc.Country = r.Location.Country
		loc.Latitude = r.Location.Latitude
		loc.Longitude = r.Location.Longitude
	}
	loc.Coordinates = fmt.Sprintf("%.2f, %.2f", loc.Latitude, loc.Longitude)

	cur := r.Current
	return &WeatherView{
		Location:      loc,
		Timezone:      r.Timezone,
		ObservedAt:    cur.Time,
		Condition:     format.DescribeWeatherCodePtr(cur.WeatherCode),
		Temperature:   format.Temperature(cur.TemperatureC),
		FeelsLike:     format.Temperature(cur.ApparentTemperatureC),
		Humidity:      format.Percent(cur.HumidityPct),
		Precipitation: format.Precipitation(cur.PrecipitationMm),
		CloudCover:    format.Percent(cur.CloudCoverPct),
		WindSpeed:     format.WindSpeed(cur.WindSpeedKmh),
		WindDirection: format.WindDirectionPtr(cur.WindDirectionDeg),
	}
}
