package testutil

import (
	"fmt"

	"github.com/windoze95/servicehub-api/internal/models"
)

func intPtr(v int) *int { return &v }

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 { return &v }

// TestBookSearchResult returns a two-book result out of numFound total.
func TestBookSearchResult(numFound int) *models.BookSearchResult {
	return &models.BookSearchResult{
		NumFound: numFound,
		Docs: []models.BookDoc{
			{
				Key:              "/works/OL893415W",
				Title:            "Dune",
				AuthorNames:      []string{"Frank Herbert"},
				CoverID:          intPtr(11481354),
				FirstPublishYear: intPtr(1965),
				Languages:        []string{"eng", "spa"},
				Subjects:         []string{"Science fiction", "Deserts"},
			},
			{
				Key:         "/works/OL27448W",
				Title:       "The Lord of the Rings",
				AuthorNames: []string{"J.R.R. Tolkien", "Alan Lee"},
			},
		},
	}
}

// TestGeoLocation returns a geocoded Paris.
func TestGeoLocation() *models.GeoLocation {
	return &models.GeoLocation{Name: "Paris", Country: "France", Latitude: 48.85341, Longitude: 2.3488}
}

// TestWeatherReading returns a complete current-conditions reading.
func TestWeatherReading() *models.WeatherReading {
	code := 3
	return &models.WeatherReading{
		Latitude:  48.86,
		Longitude: 2.35,
		Timezone:  "Europe/Paris",
		Current: models.CurrentConditions{
			Time:                 "2024-05-01T12:00",
			TemperatureC:         Float64Ptr(18.6),
			HumidityPct:          Float64Ptr(62),
			ApparentTemperatureC: Float64Ptr(17.4),
			PrecipitationMm:      Float64Ptr(0),
			WeatherCode:          &code,
			CloudCoverPct:        Float64Ptr(85),
			WindSpeedKmh:         Float64Ptr(11.2),
			WindDirectionDeg:     Float64Ptr(225),
		},
	}
}

// TestMeal returns a fully populated meal with three ingredients.
func TestMeal() *models.Meal {
	m := &models.Meal{
		ID:           "52772",
		Name:         "Teriyaki Chicken Casserole",
		Thumbnail:    "https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg",
		Category:     "Chicken",
		Area:         "Japanese",
		Instructions: "Preheat oven to 350F.\r\n\r\nCombine soy sauce and water.\r\n Bake for 15 minutes. ",
		Tags:         "Meat,Casserole",
		YouTube:      "https://www.youtube.com/watch?v=4aZr5hZXP_s",
	}
	m.Ingredients[0], m.Measures[0] = "soy sauce", "3/4 cup"
	m.Ingredients[1], m.Measures[1] = "water", "1/2 cup "
	m.Ingredients[2], m.Measures[2] = " brown sugar", ""
	return m
}

// TestMeals returns n filter-style meals (ID, name, thumbnail only).
func TestMeals(n int) []models.Meal {
	meals := make([]models.Meal, n)
	for i := range meals {
		meals[i] = models.Meal{
			ID:        fmt.Sprintf("%d", 52000+i),
			Name:      fmt.Sprintf("Meal %d", i+1),
			Thumbnail: fmt.Sprintf("https://img.example/%d.jpg", i),
		}
	}
	return meals
}

// TestEarthquakes returns n features with descending magnitude starting at 7.5.
func TestEarthquakes(n int) []models.EarthquakeFeature {
	features := make([]models.EarthquakeFeature, n)
	for i := range features {
		features[i] = models.EarthquakeFeature{
			ID:           fmt.Sprintf("us%04d", i),
			Magnitude:    Float64Ptr(7.5 - float64(i)*0.5),
			DepthKm:      Float64Ptr(10 + float64(i)),
			Longitude:    2.35,
			Latitude:     48.86,
			TimeEpochMs:  1714564800000,
			Place:        fmt.Sprintf("%d km N of Somewhere", i+1),
			Significance: 1000 - i*100,
		}
	}
	return features
}
