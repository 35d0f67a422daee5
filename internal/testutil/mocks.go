package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/windoze95/servicehub-api/internal/models"
)

// --- MockBookProvider ---

// MockBookProvider is a mock implementation of upstream.BookProvider.
type MockBookProvider struct {
	SearchBooksFunc func(ctx context.Context, query string, page, limit int) (*models.BookSearchResult, error)

	mu    sync.Mutex
	Calls int
}

func (m *MockBookProvider) SearchBooks(ctx context.Context, query string, page, limit int) (*models.BookSearchResult, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.SearchBooksFunc != nil {
		return m.SearchBooksFunc(ctx, query, page, limit)
	}
	return nil, fmt.Errorf("SearchBooks not configured")
}

// CallCount returns the number of SearchBooks calls.
func (m *MockBookProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// --- MockWeatherProvider ---

// MockWeatherProvider is a mock implementation of upstream.WeatherProvider.
type MockWeatherProvider struct {
	CurrentWeatherFunc func(ctx context.Context, lat, lon float64) (*models.WeatherReading, error)
	GeocodeFunc        func(ctx context.Context, name string) (*models.GeoLocation, error)
	WeatherByCityFunc  func(ctx context.Context, name string) (*models.WeatherReading, error)
}

func (m *MockWeatherProvider) CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherReading, error) {
	if m.CurrentWeatherFunc != nil {
		return m.CurrentWeatherFunc(ctx, lat, lon)
	}
	return nil, fmt.Errorf("CurrentWeather not configured")
}

func (m *MockWeatherProvider) Geocode(ctx context.Context, name string) (*models.GeoLocation, error) {
	if m.GeocodeFunc != nil {
		return m.GeocodeFunc(ctx, name)
	}
	return nil, fmt.Errorf("Geocode not configured")
}

func (m *MockWeatherProvider) WeatherByCity(ctx context.Context, name string) (*models.WeatherReading, error) {
	if m.WeatherByCityFunc != nil {
		return m.WeatherByCityFunc(ctx, name)
	}
	return nil, fmt.Errorf("WeatherByCity not configured")
}

// --- MockRecipeProvider ---

// MockRecipeProvider is a mock implementation of upstream.RecipeProvider.
type MockRecipeProvider struct {
	SearchByIngredientFunc func(ctx context.Context, ingredient string) ([]models.Meal, error)
	SearchByNameFunc       func(ctx context.Context, name string) ([]models.Meal, error)
	RandomFunc             func(ctx context.Context) (*models.Meal, error)
	LookupFunc             func(ctx context.Context, id string) (*models.Meal, error)
	ByCategoryFunc         func(ctx context.Context, category string) ([]models.Meal, error)
	ByAreaFunc             func(ctx context.Context, area string) ([]models.Meal, error)
}

func (m *MockRecipeProvider) SearchByIngredient(ctx context.Context, ingredient string) ([]models.Meal, error) {
	if m.SearchByIngredientFunc != nil {
		return m.SearchByIngredientFunc(ctx, ingredient)
	}
	return nil, fmt.Errorf("SearchByIngredient not configured")
}

func (m *MockRecipeProvider) SearchByName(ctx context.Context, name string) ([]models.Meal, error) {
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, name)
	}
	return nil, fmt.Errorf("SearchByName not configured")
}

func (m *MockRecipeProvider) Random(ctx context.Context) (*models.Meal, error) {
	if m.RandomFunc != nil {
		return m.RandomFunc(ctx)
	}
	return nil, fmt.Errorf("Random not configured")
}

func (m *MockRecipeProvider) Lookup(ctx context.Context, id string) (*models.Meal, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, id)
	}
	return nil, fmt.Errorf("Lookup not configured")
}

func (m *MockRecipeProvider) ByCategory(ctx context.Context, category string) ([]models.Meal, error) {
	if m.ByCategoryFunc != nil {
		return m.ByCategoryFunc(ctx, category)
	}
	return nil, fmt.Errorf("ByCategory not configured")
}

func (m *MockRecipeProvider) ByArea(ctx context.Context, area string) ([]models.Meal, error) {
	if m.ByAreaFunc != nil {
		return m.ByAreaFunc(ctx, area)
	}
	return nil, fmt.Errorf("ByArea not configured")
}

// --- MockQuakeProvider ---

// MockQuakeProvider is a mock implementation of upstream.QuakeProvider.
type MockQuakeProvider struct {
	RecentEarthquakesFunc func(ctx context.Context, timeframe string) ([]models.EarthquakeFeature, error)
}

func (m *MockQuakeProvider) RecentEarthquakes(ctx context.Context, timeframe string) ([]models.EarthquakeFeature, error) {
	if m.RecentEarthquakesFunc != nil {
		return m.RecentEarthquakesFunc(ctx, timeframe)
	}
	return nil, fmt.Errorf("RecentEarthquakes not configured")
}
