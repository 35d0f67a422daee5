package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	EnvVars  EnvVars         `json:"env"`
	Services *ServiceCatalog `json:"-"`
}

// EnvVars holds environment variables read by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port string `env:"PORT" envDefault:"8080"`

	BooksBaseURL   string `env:"OPEN_LIBRARY_URL" envDefault:"https://openlibrary.org/search.json"`
	WeatherBaseURL string `env:"OPEN_METEO_URL" envDefault:"https://api.open-meteo.com/v1/forecast"`
	GeocodeBaseURL string `env:"OPEN_METEO_GEOCODE_URL" envDefault:"https://geocoding-api.open-meteo.com/v1/search"`
	RecipeBaseURL  string `env:"MEALDB_URL" envDefault:"https://www.themealdb.com/api/json/v1/1"`
	QuakeBaseURL   string `env:"USGS_FEED_URL" envDefault:"https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary"`

	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	UpstreamRPS   float64       `env:"UPSTREAM_RPS" envDefault:"5"`
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY" envDefault:"400ms"`
	PageSize      int           `env:"PAGE_SIZE" envDefault:"20"`

	HistoryKey   string `env:"HISTORY_KEY" envDefault:"weatherRecentSearches"`
	HistoryLimit int    `env:"HISTORY_LIMIT" envDefault:"5"`
	RedisUrl     string `env:"REDIS_URL" optional:"true"`
	DatabaseUrl  string `env:"DATABASE_URL" optional:"true"`

	ServicesFile   string   `env:"SERVICES_FILE" envDefault:"configs/services.yaml"`
	ClientRPS      int      `env:"CLIENT_RPS" envDefault:"10"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," optional:"true"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	return checkFieldsRecursive(reflect.ValueOf(c.EnvVars))
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if field.IsZero() {
			return fmt.Errorf("$%s must be set", fieldType.Tag.Get("env"))
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}
