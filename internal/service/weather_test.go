package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/models"
	"github.com/windoze95/servicehub-api/internal/repository"
	"github.com/windoze95/servicehub-api/internal/testutil"
	"github.com/windoze95/servicehub-api/internal/upstream"
)

func newTestWeatherService(provider upstream.WeatherProvider) *WeatherService {
	history := repository.NewHistoryRepository(repository.NewMemoryStore(), "", 0)
	return NewWeatherService(&config.Config{}, provider, history)
}

func TestWeatherByCity_FormatsAndRecords(t *testing.T) {
	provider := &testutil.MockWeatherProvider{
		WeatherByCityFunc: func(ctx context.Context, name string) (*models.WeatherReading, error) {
			r := testutil.TestWeatherReading()
			r.Location = testutil.TestGeoLocation()
			return r, nil
		},
	}
	svc := newTestWeatherService(provider)

	view, err := svc.ByCity(context.Background(), " Paris ")
	if err != nil {
		t.Fatalf("ByCity error: %v", err)
	}
	if view.Location.Name != "Paris" || view.Location.Coordinates != "48.85, 2.35" {
		t.Errorf("Location = %+v", view.Location)
	}
	if view.Temperature != "19°C" {
		t.Errorf("Temperature = %q, want '19°C'", view.Temperature)
	}
	if view.Condition.Description != "Overcast" {
		t.Errorf("Condition = %+v", view.Condition)
	}
	if view.WindDirection != "SW" {
		t.Errorf("WindDirection = %q, want 'SW'", view.WindDirection)
	}
	if !reflect.DeepEqual(view.Recent, []string{"Paris"}) {
		t.Errorf("Recent = %v, want [Paris]", view.Recent)
	}
}

func TestWeatherByCity_FailureDoesNotRecord(t *testing.T) {
	provider := &testutil.MockWeatherProvider{
		WeatherByCityFunc: func(ctx context.Context, name string) (*models.WeatherReading, error) {
			return nil, upstream.NotFoundError{Message: "City not found"}
		},
	}
	svc := newTestWeatherService(provider)

	_, err := svc.ByCity(context.Background(), "Atlantis")
	var nf upstream.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}

	recent, err := svc.Recent(context.Background())
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Recent = %v, want empty", recent)
	}
}

func TestWeatherByCity_EmptyCity(t *testing.T) {
	svc := newTestWeatherService(&testutil.MockWeatherProvider{})
	if _, err := svc.ByCity(context.Background(), ""); !errors.Is(err, upstream.ErrEmptyQuery) {
		t.Errorf("error = %v, want ErrEmptyQuery", err)
	}
}

func TestWeatherByCoordinates_DoesNotRecord(t *testing.T) {
	provider := &testutil.MockWeatherProvider{
		CurrentWeatherFunc: func(ctx context.Context, lat, lon float64) (*models.WeatherReading, error) {
			return testutil.TestWeatherReading(), nil
		},
	}
	svc := newTestWeatherService(provider)

	view, err := svc.ByCoordinates(context.Background(), 48.86, 2.35)
	if err != nil {
		t.Fatalf("ByCoordinates error: %v", err)
	}
	if view.Location.Name != "" {
		t.Errorf("Location.Name = %q, want ''", view.Location.Name)
	}
	recent, _ := svc.Recent(context.Background())
	if len(recent) != 0 {
		t.Errorf("Recent = %v, want empty", recent)
	}
}

func TestToWeatherView_MissingValues(t *testing.T) {
	view := ToWeatherView(&models.WeatherReading{})
	if view.Temperature != "N/A" || view.WindDirection != "N/A" || view.Humidity != "N/A" {
		t.Errorf("view = %+v", view)
	}
	if view.Condition.Description != "Unknown" {
		t.Errorf("Condition = %+v", view.Condition)
	}
}
