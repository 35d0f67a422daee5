package service

import "testing"

func TestCatalogServices_Defaults(t *testing.T) {
	svc := NewCatalogService(nil)
	services := svc.Services()
	if len(services) != 4 {
		t.Fatalf("services = %d, want 4", len(services))
	}
	if services[0].ID != "book-finder" || services[3].ID != "earthquake-visualizer" {
		t.Errorf("order = %s ... %s", services[0].ID, services[3].ID)
	}
}

func TestCatalogLegend(t *testing.T) {
	legend := NewCatalogService(nil).Legend()
	if len(legend.Magnitude) != 6 {
		t.Errorf("Magnitude rows = %d, want 6", len(legend.Magnitude))
	}
	if legend.Significance[0].Level != "High" || legend.Significance[3].Level != "Very Low" {
		t.Errorf("Significance = %+v", legend.Significance)
	}
	if legend.CookingTime[0].Label != "Quick" || legend.CookingTime[3].Label != "Slow" {
		t.Errorf("CookingTime = %+v", legend.CookingTime)
	}
	if legend.Difficulty[2].Label != "Hard" {
		t.Errorf("Difficulty = %+v", legend.Difficulty)
	}
}
