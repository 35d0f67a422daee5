package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ServiceEntry is one card on the landing page.
type ServiceEntry struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Color       string `yaml:"color" json:"color"`
	User        string `yaml:"user" json:"user"`
	Link        string `yaml:"link" json:"link"`
}

// ServiceCatalog is the landing-page catalog loaded from YAML.
type ServiceCatalog struct {
	Services []ServiceEntry `yaml:"services" json:"services"`
}

// DefaultServiceCatalog returns the built-in catalog.
func DefaultServiceCatalog() *ServiceCatalog {
	return &ServiceCatalog{Services: []ServiceEntry{
		{
			ID:          "book-finder",
			Title:       "Book Finder",
			Description: "Discover millions of books from around the world. Search by title, author, or ISBN to find your next great read.",
			Icon:        "📚",
			Color:       "from-blue-500 to-purple-600",
			User:        "Alex - College Student",
			Link:        "/book-finder",
		},
		{
			ID:          "weather-now",
			Title:       "Weather Now",
			Description: "Get real-time weather conditions for any city worldwide. Perfect for outdoor enthusiasts and travelers.",
			Icon:        "🌤️",
			Color:       "from-yellow-400 to-orange-500",
			User:        "Jamie - Outdoor Enthusiast",
			Link:        "/weather-now",
		},
		{
			ID:          "recipe-ideas",
			Title:       "Recipe Ideas",
			Description: "Find delicious recipes based on ingredients you have, cooking time, or your mood. Perfect for busy professionals.",
			Icon:        "🍳",
			Color:       "from-green-500 to-teal-600",
			User:        "Taylor - Busy Professional",
			Link:        "/recipe-ideas",
		},
		{
			ID:          "earthquake-visualizer",
			Title:       "Earthquake Visualizer",
			Description: "Visualize recent earthquake activity around the world with interactive maps to understand seismic patterns.",
			Icon:        "🌍",
			Color:       "from-red-500 to-pink-600",
			User:        "Casey - Geography Student",
			Link:        "/earthquake-visualizer",
		},
	}}
}

// LoadServiceCatalog reads the catalog from path. A missing file yields the
// built-in catalog; a malformed one is an error.
func LoadServiceCatalog(path string) (*ServiceCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultServiceCatalog(), nil
		}
		return nil, fmt.Errorf("failed to read services file: %w", err)
	}

	var catalog ServiceCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse services YAML: %w", err)
	}
	if len(catalog.Services) == 0 {
		return DefaultServiceCatalog(), nil
	}

	return &catalog, nil
}
