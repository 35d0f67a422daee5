// Package upstream holds one adapter per public data service. Each adapter
// builds the request, checks the status and normalizes the JSON body into
// internal models, or fails with a typed error.
package upstream

import (
	"context"

	"github.com/windoze95/servicehub-api/internal/models"
)

// BookProvider searches books (Open Library).
type BookProvider interface {
	SearchBooks(ctx context.Context, query string, page, limit int) (*models.BookSearchResult, error)
}

// WeatherProvider looks up current conditions (Open-Meteo).
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherReading, error)
	Geocode(ctx context.Context, name string) (*models.GeoLocation, error)
	WeatherByCity(ctx context.Context, name string) (*models.WeatherReading, error)
}

// RecipeProvider discovers recipes (TheMealDB).
type RecipeProvider interface {
	SearchByIngredient(ctx context.Context, ingredient string) ([]models.Meal, error)
	SearchByName(ctx context.Context, name string) ([]models.Meal, error)
	Random(ctx context.Context) (*models.Meal, error)
	Lookup(ctx context.Context, id string) (*models.Meal, error)
	ByCategory(ctx context.Context, category string) ([]models.Meal, error)
	ByArea(ctx context.Context, area string) ([]models.Meal, error)
}

// QuakeProvider reads the recent earthquake feed (USGS).
type QuakeProvider interface {
	RecentEarthquakes(ctx context.Context, timeframe string) ([]models.EarthquakeFeature, error)
}
