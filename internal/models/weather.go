package models

// GeoLocation is a geocoded place.
type GeoLocation struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentConditions mirrors the "current" block of the forecast API.
// Every value is optional; missing values render as placeholders.
type CurrentConditions struct {
	Time                 string   `json:"time"`
	TemperatureC         *float64 `json:"temperature_2m"`
	HumidityPct          *float64 `json:"relative_humidity_2m"`
	ApparentTemperatureC *float64 `json:"apparent_temperature"`
	PrecipitationMm      *float64 `json:"precipitation"`
	WeatherCode          *int     `json:"weather_code"`
	CloudCoverPct        *float64 `json:"cloud_cover"`
	WindSpeedKmh         *float64 `json:"wind_speed_10m"`
	WindDirectionDeg     *float64 `json:"wind_direction_10m"`
}

// WeatherReading is a current-conditions reading, optionally tied to a
// geocoded location.
type WeatherReading struct {
	Location  *GeoLocation      `json:"location,omitempty"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Current   CurrentConditions `json:"current"`
}
