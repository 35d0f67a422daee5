// Package geo holds great-circle helpers.
package geo

import (
	"math"
	"strconv"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Haversine returns the great-circle distance in kilometres.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// DistanceKm formats the distance between two points with one decimal.
// The boolean is false when either point is unknown.
func DistanceKm(from, to *Point) (string, bool) {
	if from == nil || to == nil {
		return "", false
	}
	d := Haversine(from.Lat, from.Lon, to.Lat, to.Lon)
	return strconv.FormatFloat(d, 'f', 1, 64), true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
