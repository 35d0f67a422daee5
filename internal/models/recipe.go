package models

import (
	"encoding/json"
	"strconv"
)

// IngredientSlots is the fixed number of ingredient/measure pairs a meal record carries.
const IngredientSlots = 20

// Meal is a TheMealDB meal record. Filter endpoints only populate ID, Name
// and Thumbnail; search and lookup populate everything.
type Meal struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Thumbnail    string                  `json:"thumbnail"`
	Category     string                  `json:"category,omitempty"`
	Area         string                  `json:"area,omitempty"`
	Instructions string                  `json:"instructions,omitempty"`
	Tags         string                  `json:"tags,omitempty"`
	YouTube      string                  `json:"youtube,omitempty"`
	Source       string                  `json:"source,omitempty"`
	Ingredients  [IngredientSlots]string `json:"-"`
	Measures     [IngredientSlots]string `json:"-"`
}

// UnmarshalJSON decodes the flat upstream shape (strMeal, strIngredient1..20, ...).
// Values that are null or not strings are treated as empty.
func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	str := func(key string) string {
		if v, ok := raw[key].(string); ok {
			return v
		}
		return ""
	}

	*m = Meal{
		ID:           str("idMeal"),
		Name:         str("strMeal"),
		Thumbnail:    str("strMealThumb"),
		Category:     str("strCategory"),
		Area:         str("strArea"),
		Instructions: str("strInstructions"),
		Tags:         str("strTags"),
		YouTube:      str("strYoutube"),
		Source:       str("strSource"),
	}
	for i := 0; i < IngredientSlots; i++ {
		n := strconv.Itoa(i + 1)
		m.Ingredients[i] = str("strIngredient" + n)
		m.Measures[i] = str("strMeasure" + n)
	}
	return nil
}

// IngredientLine is one parsed ingredient with its measure.
type IngredientLine struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// Step is one numbered instruction.
type Step struct {
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
}
