package format

import "testing"

func TestClassifyCookingTime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "Quick"},
		{15, "Quick"},
		{16, "Fast"},
		{30, "Fast"},
		{31, "Moderate"},
		{60, "Moderate"},
		{61, "Slow"},
		{240, "Slow"},
	}
	for _, tt := range tests {
		if got := ClassifyCookingTime(tt.minutes).Label; got != tt.want {
			t.Errorf("ClassifyCookingTime(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestClassifyDifficulty(t *testing.T) {
	tests := []struct {
		count int
		label string
		color string
	}{
		{0, "Easy", "green"},
		{5, "Easy", "green"},
		{6, "Medium", "yellow"},
		{10, "Medium", "yellow"},
		{11, "Hard", "red"},
	}
	for _, tt := range tests {
		got := ClassifyDifficulty(tt.count)
		if got.Label != tt.label || got.Color != tt.color {
			t.Errorf("ClassifyDifficulty(%d) = %+v, want %s/%s", tt.count, got, tt.label, tt.color)
		}
	}
}
