package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/models"
	"github.com/windoze95/servicehub-api/internal/testutil"
	"github.com/windoze95/servicehub-api/internal/upstream"
)

func TestRecipeSearch_DispatchesByType(t *testing.T) {
	var byIngredient, byName int
	provider := &testutil.MockRecipeProvider{
		SearchByIngredientFunc: func(ctx context.Context, ingredient string) ([]models.Meal, error) {
			byIngredient++
			return testutil.TestMeals(3), nil
		},
		SearchByNameFunc: func(ctx context.Context, name string) ([]models.Meal, error) {
			byName++
			return testutil.TestMeals(1), nil
		},
	}
	svc := NewRecipeService(&config.Config{}, provider)

	cards, err := svc.Search(context.Background(), "chicken", "")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(cards) != 3 || byIngredient != 1 {
		t.Errorf("ingredient search: cards=%d calls=%d", len(cards), byIngredient)
	}

	cards, err = svc.Search(context.Background(), "Arrabiata", SearchByName)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(cards) != 1 || byName != 1 {
		t.Errorf("name search: cards=%d calls=%d", len(cards), byName)
	}
}

func TestRecipeDetail_ParsesMeal(t *testing.T) {
	provider := &testutil.MockRecipeProvider{
		LookupFunc: func(ctx context.Context, id string) (*models.Meal, error) {
			return testutil.TestMeal(), nil
		},
	}
	svc := NewRecipeService(&config.Config{}, provider)

	detail, err := svc.Detail(context.Background(), "52772")
	if err != nil {
		t.Fatalf("Detail error: %v", err)
	}

	wantIngredients := []models.IngredientLine{
		{Ingredient: "soy sauce", Measure: "3/4 cup"},
		{Ingredient: "water", Measure: "1/2 cup"},
		{Ingredient: "brown sugar", Measure: ""},
	}
	if !reflect.DeepEqual(detail.Ingredients, wantIngredients) {
		t.Errorf("Ingredients = %+v", detail.Ingredients)
	}
	if len(detail.Steps) != 3 || detail.Steps[2].Step != 3 || detail.Steps[2].Instruction != "Bake for 15 minutes." {
		t.Errorf("Steps = %+v", detail.Steps)
	}
	if detail.Difficulty.Label != "Easy" {
		t.Errorf("Difficulty = %+v, want Easy", detail.Difficulty)
	}
	if !reflect.DeepEqual(detail.Tags, []string{"Meat", "Casserole"}) {
		t.Errorf("Tags = %v", detail.Tags)
	}
	if detail.Area != "Japanese" {
		t.Errorf("Area = %q", detail.Area)
	}
}

func TestRecipeRandom_NotFound(t *testing.T) {
	provider := &testutil.MockRecipeProvider{
		RandomFunc: func(ctx context.Context) (*models.Meal, error) {
			return nil, upstream.NotFoundError{Message: "Recipe not found"}
		},
	}
	svc := NewRecipeService(&config.Config{}, provider)

	_, err := svc.Random(context.Background())
	var nf upstream.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestRecipeByCategoryAndArea(t *testing.T) {
	provider := &testutil.MockRecipeProvider{
		ByCategoryFunc: func(ctx context.Context, category string) ([]models.Meal, error) {
			return []models.Meal{}, nil
		},
		ByAreaFunc: func(ctx context.Context, area string) ([]models.Meal, error) {
			return testutil.TestMeals(2), nil
		},
	}
	svc := NewRecipeService(&config.Config{}, provider)

	cards, err := svc.ByCategory(context.Background(), "Nothing")
	if err != nil || cards == nil || len(cards) != 0 {
		t.Errorf("ByCategory = %v, %v; want empty non-nil", cards, err)
	}
	cards, err = svc.ByArea(context.Background(), "Italian")
	if err != nil || len(cards) != 2 {
		t.Errorf("ByArea = %v, %v; want 2 cards", cards, err)
	}
}
