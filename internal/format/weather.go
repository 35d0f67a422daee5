package format

import "math"

// WeatherCondition is the description and icon for a WMO weather code.
type WeatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// DefaultWeatherIcon is shown for codes outside the table.
const DefaultWeatherIcon = "🌤️"

var wmoConditions = map[int]WeatherCondition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	71: {"Slight snow fall", "❄️"},
	73: {"Moderate snow fall", "❄️"},
	75: {"Heavy snow fall", "❄️"},
	77: {"Snow grains", "❄️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌦️"},
	82: {"Violent rain showers", "🌧️"},
	85: {"Slight snow showers", "🌨️"},
	86: {"Heavy snow showers", "🌨️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with slight hail", "⛈️"},
	99: {"Thunderstorm with heavy hail", "⛈️"},
}

// DescribeWeatherCode looks up a WMO code. Unknown codes map to "Unknown".
func DescribeWeatherCode(code int) WeatherCondition {
	if c, ok := wmoConditions[code]; ok {
		return c
	}
	return WeatherCondition{Description: "Unknown", Icon: DefaultWeatherIcon}
}

// DescribeWeatherCodePtr is DescribeWeatherCode for an optional code.
func DescribeWeatherCodePtr(code *int) WeatherCondition {
	if code == nil {
		return WeatherCondition{Description: "Unknown", Icon: DefaultWeatherIcon}
	}
	return DescribeWeatherCode(*code)
}

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection converts degrees to a 16-point compass label.
func WindDirection(deg float64) string {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return NotAvailable
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Round(deg/22.5)) % 16
	return compassPoints[idx]
}

// WindDirectionPtr is WindDirection for an optional value.
func WindDirectionPtr(deg *float64) string {
	if deg == nil {
		return NotAvailable
	}
	return WindDirection(*deg)
}
