// Package format maps raw upstream values to display labels, colors and icons.
// Every function here is pure and total.
package format

import "time"

// MagnitudeClass is the display bucket for an earthquake magnitude.
type MagnitudeClass struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Tier is a significance level with its color.
type Tier struct {
	Level string `json:"level"`
	Color string `json:"color"`
}

// ClassifyMagnitude buckets a magnitude. Thresholds are inclusive.
func ClassifyMagnitude(m float64) MagnitudeClass {
	switch {
	case m >= 7:
		return MagnitudeClass{Label: "Major", Color: "#8B0000", Icon: "🔴"}
	case m >= 6:
		return MagnitudeClass{Label: "Strong", Color: "#FF0000", Icon: "🟠"}
	case m >= 5:
		return MagnitudeClass{Label: "Moderate", Color: "#FF8C00", Icon: "🟡"}
	case m >= 4:
		return MagnitudeClass{Label: "Light", Color: "#FFD700", Icon: "🟢"}
	case m >= 3:
		return MagnitudeClass{Label: "Minor", Color: "#ADFF2F", Icon: "🔵"}
	default:
		return MagnitudeClass{Label: "Micro", Color: "#00CED1", Icon: "⚪"}
	}
}

// ClassifySignificance buckets the USGS significance score.
func ClassifySignificance(sig int) Tier {
	switch {
	case sig >= 1000:
		return Tier{Level: "High", Color: "#8B0000"}
	case sig >= 600:
		return Tier{Level: "Medium", Color: "#FF8C00"}
	case sig >= 300:
		return Tier{Level: "Low", Color: "#FFD700"}
	default:
		return Tier{Level: "Very Low", Color: "#ADFF2F"}
	}
}

// MarkerSize returns the map marker radius for a magnitude.
func MarkerSize(m float64) int {
	switch {
	case m >= 7:
		return 20
	case m >= 6:
		return 16
	case m >= 5:
		return 12
	case m >= 4:
		return 8
	default:
		return 6
	}
}

// TsunamiAlert returns the alert text for a raised tsunami flag, or "".
func TsunamiAlert(flag int) string {
	if flag == 1 {
		return "🌊 Tsunami Alert"
	}
	return ""
}

const eventTimeLayout = "Jan 2, 2006, 03:04 PM MST"

// EventTime renders an epoch-millisecond timestamp in loc (UTC when nil).
func EventTime(ms int64, loc *time.Location) string {
	if ms <= 0 {
		return NotAvailable
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc).Format(eventTimeLayout)
}

// LegendRow is one entry of the magnitude legend.
type LegendRow struct {
	MagnitudeClass
	Range string  `json:"range"`
	Min   float64 `json:"min"`
}

// MagnitudeLegend lists the magnitude buckets from strongest to weakest.
func MagnitudeLegend() []LegendRow {
	rows := []LegendRow{
		{Min: 7, Range: "7.0+"},
		{Min: 6, Range: "6.0-6.9"},
		{Min: 5, Range: "5.0-5.9"},
		{Min: 4, Range: "4.0-4.9"},
		{Min: 3, Range: "3.0-3.9"},
		{Min: 0, Range: "< 3.0"},
	}
	for i := range rows {
		rows[i].MagnitudeClass = ClassifyMagnitude(rows[i].Min)
	}
	return rows
}
