package format

import "testing"

func TestDescribeWeatherCode_Known(t *testing.T) {
	tests := map[int]string{
		0:  "Clear sky",
		3:  "Overcast",
		45: "Fog",
		65: "Heavy rain",
		86: "Heavy snow showers",
		99: "Thunderstorm with heavy hail",
	}
	for code, want := range tests {
		if got := DescribeWeatherCode(code).Description; got != want {
			t.Errorf("DescribeWeatherCode(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestDescribeWeatherCode_Unknown(t *testing.T) {
	got := DescribeWeatherCode(999)
	if got.Description != "Unknown" {
		t.Errorf("Description = %q, want Unknown", got.Description)
	}
	if got.Icon != DefaultWeatherIcon {
		t.Errorf("Icon = %q, want default icon", got.Icon)
	}
	if got := DescribeWeatherCodePtr(nil); got.Description != "Unknown" {
		t.Errorf("DescribeWeatherCodePtr(nil) = %q, want Unknown", got.Description)
	}
}

func TestWindDirection(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{11, "N"},
		{11.25, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{348.75, "N"},
		{359, "N"},
		{360, "N"},
		{-90, "W"},
	}
	for _, tt := range tests {
		if got := WindDirection(tt.deg); got != tt.want {
			t.Errorf("WindDirection(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
	if got := WindDirectionPtr(nil); got != NotAvailable {
		t.Errorf("WindDirectionPtr(nil) = %q", got)
	}
}
