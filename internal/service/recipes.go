package service

import (
	"context"
	"strings"

	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/format"
	"github.com/windoze95/servicehub-api/internal/models"
	"github.com/windoze95/servicehub-api/internal/parser"
	"github.com/windoze95/servicehub-api/internal/upstream"
)

// Recipe search modes.
const (
	SearchByIngredient = "ingredient"
	SearchByName       = "name"
)

// RecipeService is the business logic layer for recipe discovery.
type RecipeService struct {
	Cfg      *config.Config
	Provider upstream.RecipeProvider
}

// RecipeCard is a meal as shown in a result grid.
type RecipeCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category,omitempty"`
	Area      string `json:"area,omitempty"`
}

// RecipeDetail is a fully parsed meal.
type RecipeDetail struct {
	RecipeCard
	Ingredients []models.IngredientLine `json:"ingredients"`
	Steps       []models.Step           `json:"steps"`
	Difficulty  format.Badge            `json:"difficulty"`
	Tags        []string                `json:"tags"`
	YouTube     string                  `json:"youtube,omitempty"`
	Source      string                  `json:"source,omitempty"`
}

// NewRecipeService is the constructor function for initializing a new RecipeService.
func NewRecipeService(cfg *config.Config, provider upstream.RecipeProvider) *RecipeService {
	return &RecipeService{Cfg: cfg, Provider: provider}
}

// Search finds meals by ingredient (the default) or by name.
func (s *RecipeService) Search(ctx context.Context, query, searchType string) ([]RecipeCard, error) {
	var meals []models.Meal
	var err error
	switch searchType {
	case SearchByName:
		meals, err = s.Provider.SearchByName(ctx, query)
	default:
		meals, err = s.Provider.SearchByIngredient(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	return toRecipeCards(meals), nil
}

// ByCategory lists meals in a category.
func (s *RecipeService) ByCategory(ctx context.Context, category string) ([]RecipeCard, error) {
	meals, err := s.Provider.ByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toRecipeCards(meals), nil
}

// ByArea lists meals from an area.
func (s *RecipeService) ByArea(ctx context.Context, area string) ([]RecipeCard, error) {
	meals, err := s.Provider.ByArea(ctx, area)
	if err != nil {
		return nil, err
	}
	return toRecipeCards(meals), nil
}

// Random returns a random meal, fully parsed.
func (s *RecipeService) Random(ctx context.Context) (*RecipeDetail, error) {
	meal, err := s.Provider.Random(ctx)
	if err != nil {
		return nil, err
	}
	return ToRecipeDetail(meal), nil
}

// Detail returns a meal by ID, fully parsed.
func (s *RecipeService) Detail(ctx context.Context, id string) (*RecipeDetail, error) {
	meal, err := s.Provider.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRecipeDetail(meal), nil
}

// ToRecipeDetail parses ingredient slots and instructions.
func ToRecipeDetail(m *models.Meal) *RecipeDetail {
	ingredients := parser.ParseIngredients(*m)
	return &RecipeDetail{
		RecipeCard:  toRecipeCard(*m),
		Ingredients: ingredients,
		Steps:       parser.ParseInstructions(m.Instructions),
		Difficulty:  format.ClassifyDifficulty(len(ingredients)),
		Tags:        splitTags(m.Tags),
		YouTube:     m.YouTube,
		Source:      m.Source,
	}
}

func toRecipeCard(m models.Meal) RecipeCard {
	return RecipeCard{
		ID:        m.ID,
		Name:      m.Name,
		Thumbnail: m.Thumbnail,
		Category:  m.Category,
		Area:      m.Area,
	}
}

func toRecipeCards(meals []models.Meal) []RecipeCard {
	cards := make([]RecipeCard, 0, len(meals))
	for _, m := range meals {
		cards = append(cards, toRecipeCard(m))
	}
	return cards
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
