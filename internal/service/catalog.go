package service

import (
	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/format"
)

// CatalogService serves the landing-page catalog and the shared legends.
type CatalogService struct {
	Catalog *config.ServiceCatalog
}

// LegendTier is a significance legend row.
type LegendTier struct {
	format.Tier
	Range string `json:"range"`
}

// LegendBadge is a cooking-time or difficulty legend row.
type LegendBadge struct {
	format.Badge
	Range string `json:"range"`
}

// Legend collects every classifier's tiers.
type Legend struct {
	Magnitude    []format.LegendRow `json:"magnitude"`
	Significance []LegendTier       `json:"significance"`
	CookingTime  []LegendBadge      `json:"cookingTime"`
	Difficulty   []LegendBadge      `json:"difficulty"`
}

// NewCatalogService is the constructor function for initializing a new CatalogService.
func NewCatalogService(catalog *config.ServiceCatalog) *CatalogService {
	if catalog == nil {
		catalog = config.DefaultServiceCatalog()
	}
	return &CatalogService{Catalog: catalog}
}

// Services returns the catalog entries in display order.
func (s *CatalogService) Services() []config.ServiceEntry {
	return s.Catalog.Services
}

// Legend builds every legend from the classifiers themselves.
func (s *CatalogService) Legend() Legend {
	return Legend{
		Magnitude: format.MagnitudeLegend(),
		Significance: []LegendTier{
			{format.ClassifySignificance(1000), "1000+"},
			{format.ClassifySignificance(600), "600-999"},
			{format.ClassifySignificance(300), "300-599"},
			{format.ClassifySignificance(0), "< 300"},
		},
		CookingTime: []LegendBadge{
			{format.ClassifyCookingTime(15), "≤ 15 min"},
			{format.ClassifyCookingTime(30), "16-30 min"},
			{format.ClassifyCookingTime(60), "31-60 min"},
			{format.ClassifyCookingTime(61), "> 60 min"},
		},
		Difficulty: []LegendBadge{
			{format.ClassifyDifficulty(5), "≤ 5 ingredients"},
			{format.ClassifyDifficulty(10), "6-10 ingredients"},
			{format.ClassifyDifficulty(11), "> 10 ingredients"},
		},
	}
}
