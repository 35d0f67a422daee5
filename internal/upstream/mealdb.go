package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/windoze95/servicehub-api/internal/models"
)

// DefaultRecipeBaseURL is the TheMealDB API root.
const DefaultRecipeBaseURL = "https://www.themealdb.com/api/json/v1/1"

// MealDBProvider implements RecipeProvider.
type MealDBProvider struct {
	baseURL string
	fetch   *fetcher
}

// NewMealDBProvider creates a recipe adapter.
func NewMealDBProvider(baseURL string, httpClient *http.Client, rps float64) *MealDBProvider {
	if baseURL == "" {
		baseURL = DefaultRecipeBaseURL
	}
	return &MealDBProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetch:   newFetcher("mealdb", httpClient, rps),
	}
}

// mealsResponse accepts "meals" as an array, null, or a bare string
// (the API answers some misses with a message instead of null).
type mealsResponse struct {
	Meals json.RawMessage `json:"meals"`
}

func (r mealsResponse) list() ([]models.Meal, error) {
	raw := bytes.TrimSpace(r.Meals)
	if len(raw) == 0 || raw[0] != '[' {
		return []models.Meal{}, nil
	}
	var meals []models.Meal
	if err := json.Unmarshal(raw, &meals); err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	return meals, nil
}

func (p *MealDBProvider) query(ctx context.Context, path, key, value string) ([]models.Meal, error) {
	reqURL := p.baseURL + path
	if key != "" {
		params := url.Values{}
		params.Set(key, value)
		reqURL += "?" + params.Encode()
	}

	var resp mealsResponse
	if err := p.fetch.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, err
	}
	return resp.list()
}

func (p *MealDBProvider) filter(ctx context.Context, path, key, value string) ([]models.Meal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrEmptyQuery
	}
	return p.query(ctx, path, key, value)
}

// SearchByIngredient lists meals that use an ingredient.
func (p *MealDBProvider) SearchByIngredient(ctx context.Context, ingredient string) ([]models.Meal, error) {
	return p.filter(ctx, "/filter.php", "i", ingredient)
}

// SearchByName lists meals whose name matches.
func (p *MealDBProvider) SearchByName(ctx context.Context, name string) ([]models.Meal, error) {
	return p.filter(ctx, "/search.php", "s", name)
}

// ByCategory lists meals in a category.
func (p *MealDBProvider) ByCategory(ctx context.Context, category string) ([]models.Meal, error) {
	return p.filter(ctx, "/filter.php", "c", category)
}

// ByArea lists meals from an area (cuisine).
func (p *MealDBProvider) ByArea(ctx context.Context, area string) ([]models.Meal, error) {
	return p.filter(ctx, "/filter.php", "a", area)
}

// Random returns one random meal.
func (p *MealDBProvider) Random(ctx context.Context) (*models.Meal, error) {
	meals, err := p.query(ctx, "/random.php", "", "")
	if err != nil {
		return nil, err
	}
	return first(meals)
}

// Lookup returns the full record for a meal ID.
func (p *MealDBProvider) Lookup(ctx context.Context, id string) (*models.Meal, error) {
	meals, err := p.filter(ctx, "/lookup.php", "i", id)
	if err != nil {
		return nil, err
	}
	return first(meals)
}

func first(meals []models.Meal) (*models.Meal, error) {
	if len(meals) == 0 {
		return nil, NotFoundError{Message: "Recipe not found"}
	}
	return &meals[0], nil
}
