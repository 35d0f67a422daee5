package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/windoze95/servicehub-api/internal/models"
)

const (
	// DefaultWeatherBaseURL is the Open-Meteo forecast endpoint.
	DefaultWeatherBaseURL = "https://api.open-meteo.com/v1/forecast"
	// DefaultGeocodeBaseURL is the Open-Meteo geocoding endpoint.
	DefaultGeocodeBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,cloud_cover,wind_speed_10m,wind_direction_10m"
)

// OpenMeteoProvider implements WeatherProvider.
type OpenMeteoProvider struct {
	weatherURL string
	geocodeURL string
	weather    *fetcher
	geocoding  *fetcher
}

// NewOpenMeteoProvider creates a weather adapter.
func NewOpenMeteoProvider(weatherURL, geocodeURL string, httpClient *http.Client, rps float64) *OpenMeteoProvider {
	if weatherURL == "" {
		weatherURL = DefaultWeatherBaseURL
	}
	if geocodeURL == "" {
		geocodeURL = DefaultGeocodeBaseURL
	}
	return &OpenMeteoProvider{
		weatherURL: weatherURL,
		geocodeURL: geocodeURL,
		weather:    newFetcher("weather", httpClient, rps),
		geocoding:  newFetcher("geocoding", httpClient, rps),
	}
}

type forecastResponse struct {
	Latitude  float64                  `json:"latitude"`
	Longitude float64                  `json:"longitude"`
	Timezone  string                   `json:"timezone"`
	Current   models.CurrentConditions `json:"current"`
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// CurrentWeather fetches current conditions at a coordinate.
func (p *OpenMeteoProvider) CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherReading, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", currentFields)
	params.Set("timezone", "auto")

	var resp forecastResponse
	if err := p.weather.getJSON(ctx, p.weatherURL+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &models.WeatherReading{
		Latitude:  resp.Latitude,
		Longitude: resp.Longitude,
		Timezone:  resp.Timezone,
		Current:   resp.Current,
	}, nil
}

// Geocode resolves a city name to its best match.
func (p *OpenMeteoProvider) Geocode(ctx context.Context, name string) (*models.GeoLocation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("name", name)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	var resp geocodeResponse
	if err := p.geocoding.getJSON(ctx, p.geocodeURL+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, NotFoundError{Message: "City not found"}
	}

	r := resp.Results[0]
	return &models.GeoLocation{
		Name:      r.Name,
		Country:   r.Country,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}, nil
}

// WeatherByCity geocodes the name, then fetches conditions for the match.
// The second call depends on the first, so they run in sequence.
func (p *OpenMeteoProvider) WeatherByCity(ctx context.Context, name string) (*models.WeatherReading, error) {
	loc, err := p.Geocode(ctx, name)
	if err != nil {
		return nil, err
	}
	reading, err := p.CurrentWeather(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, err
	}
	reading.Location = loc
	return reading, nil
}
