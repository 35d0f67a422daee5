package geo

import (
	"math"
	"testing"
)

func TestHaversine_KnownDistance(t *testing.T) {
	// Paris to London is roughly 344 km.
	d := Haversine(48.8566, 2.3522, 51.5074, -0.1278)
	if math.Abs(d-343.5) > 2 {
		t.Errorf("Haversine(Paris, London) = %.1f, want ~343.5", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][2]Point{
		{{48.8566, 2.3522}, {35.6762, 139.6503}},
		{{-33.8688, 151.2093}, {40.7128, -74.0060}},
		{{10, 10}, {-10, -170}},
	}
	for _, p := range pairs {
		ab, okAB := DistanceKm(&p[0], &p[1])
		ba, okBA := DistanceKm(&p[1], &p[0])
		if !okAB || !okBA {
			t.Fatalf("DistanceKm(%v, %v) reported unknown", p[0], p[1])
		}
		if ab != ba {
			t.Errorf("DistanceKm not symmetric: %s vs %s", ab, ba)
		}
	}
}

func TestDistanceKm_ZeroPoints(t *testing.T) {
	got, ok := DistanceKm(&Point{}, &Point{})
	if !ok {
		t.Fatal("DistanceKm at the origin should be known")
	}
	if got != "0.0" {
		t.Errorf("DistanceKm(origin, origin) = %q, want 0.0", got)
	}
}

func TestDistanceKm_Unknown(t *testing.T) {
	p := &Point{Lat: 1, Lon: 2}
	if _, ok := DistanceKm(nil, p); ok {
		t.Error("DistanceKm(nil, p) should be unknown")
	}
	if _, ok := DistanceKm(p, nil); ok {
		t.Error("DistanceKm(p, nil) should be unknown")
	}
}
