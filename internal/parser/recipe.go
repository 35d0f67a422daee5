// Package parser turns flat meal records into ingredient lists and numbered steps.
package parser

import (
	"strings"

	"github.com/windoze95/servicehub-api/internal/models"
)

// ParseIngredients pairs the fixed ingredient/measure slots of a meal.
// Slots with a blank ingredient are skipped; order follows the slot number.
func ParseIngredients(m models.Meal) []models.IngredientLine {
	lines := make([]models.IngredientLine, 0, models.IngredientSlots)
	for i := 0; i < models.IngredientSlots; i++ {
		name := strings.TrimSpace(m.Ingredients[i])
		if name == "" {
			continue
		}
		lines = append(lines, models.IngredientLine{
			Ingredient: name,
			Measure:    strings.TrimSpace(m.Measures[i]),
		})
	}
	return lines
}

// ParseInstructions splits CRLF-delimited instructions into numbered steps,
// dropping blank lines.
func ParseInstructions(text string) []models.Step {
	if text == "" {
		return []models.Step{}
	}
	parts := strings.Split(text, "\r\n")
	steps := make([]models.Step, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		steps = append(steps, models.Step{Step: len(steps) + 1, Instruction: p})
	}
	return steps
}
