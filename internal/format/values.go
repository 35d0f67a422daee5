package format

import (
	"fmt"
	"math"
)

// NotAvailable is the placeholder for absent values.
const NotAvailable = "N/A"

// Magnitude renders a magnitude with one decimal.
func Magnitude(m *float64) string {
	if m == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", *m)
}

// Depth renders a depth in kilometres.
func Depth(km *float64) string {
	if km == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f km", *km)
}

// Temperature renders a rounded Celsius temperature.
func Temperature(c *float64) string {
	if c == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d°C", roundInt(*c))
}

// WindSpeed renders a rounded wind speed.
func WindSpeed(kmh *float64) string {
	if kmh == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d km/h", roundInt(*kmh))
}

// Percent renders a rounded percentage.
func Percent(p *float64) string {
	if p == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d%%", roundInt(*p))
}

// Precipitation renders millimetres of precipitation.
func Precipitation(mm *float64) string {
	if mm == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f mm", *mm)
}

// roundInt rounds half up, so -2.5 becomes -2.
func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}
