package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastBody = `{
	"latitude": 48.86,
	"longitude": 2.35,
	"timezone": "Europe/Paris",
	"current": {
		"time": "2024-05-01T12:00",
		"temperature_2m": 18.4,
		"relative_humidity_2m": 62,
		"apparent_temperature": 17.9,
		"precipitation": 0,
		"weather_code": 2,
		"cloud_cover": 40,
		"wind_speed_10m": 11.2,
		"wind_direction_10m": 225
	}
}`

func TestCurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "48.86", q.Get("latitude"))
		assert.Equal(t, "2.35", q.Get("longitude"))
		assert.Equal(t, "auto", q.Get("timezone"))
		assert.Equal(t, currentFields, q.Get("current"))
		w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.URL, srv.URL, srv.Client(), 0)
	reading, err := p.CurrentWeather(context.Background(), 48.86, 2.35)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Paris", reading.Timezone)
	assert.Nil(t, reading.Location)
	require.NotNil(t, reading.Current.TemperatureC)
	assert.InDelta(t, 18.4, *reading.Current.TemperatureC, 1e-9)
	require.NotNil(t, reading.Current.WeatherCode)
	assert.Equal(t, 2, *reading.Current.WeatherCode)
	require.NotNil(t, reading.Current.PrecipitationMm)
	assert.Zero(t, *reading.Current.PrecipitationMm)
}

func TestGeocode_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.URL, srv.URL, srv.Client(), 0)
	_, err := p.Geocode(context.Background(), "Atlantis")

	var nf NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "City not found", nf.Error())
}

func TestWeatherByCity_GeocodesThenFetches(t *testing.T) {
	var forecastCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/geo", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Paris", q.Get("name"))
		assert.Equal(t, "1", q.Get("count"))
		assert.Equal(t, "en", q.Get("language"))
		w.Write([]byte(`{"results":[{"name":"Paris","country":"France","latitude":48.86,"longitude":2.35}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&forecastCalls, 1)
		w.Write([]byte(forecastBody))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.URL+"/forecast", srv.URL+"/geo", srv.Client(), 0)
	reading, err := p.WeatherByCity(context.Background(), "Paris")
	require.NoError(t, err)

	require.NotNil(t, reading.Location)
	assert.Equal(t, "Paris", reading.Location.Name)
	assert.Equal(t, "France", reading.Location.Country)
	assert.EqualValues(t, 1, atomic.LoadInt32(&forecastCalls))
}

func TestWeatherByCity_UnknownCitySkipsForecast(t *testing.T) {
	var forecastCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/geo", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&forecastCalls, 1)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.URL+"/forecast", srv.URL+"/geo", srv.Client(), 0)
	_, err := p.WeatherByCity(context.Background(), "Nowhere")

	var nf NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Zero(t, atomic.LoadInt32(&forecastCalls))
}

func TestGeocode_EmptyName(t *testing.T) {
	p := NewOpenMeteoProvider("", "", nil, 0)
	_, err := p.Geocode(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}
