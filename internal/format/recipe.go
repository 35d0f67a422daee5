package format

// Badge is a labelled, colored indicator with an icon.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// ClassifyCookingTime buckets a cooking time in minutes.
func ClassifyCookingTime(minutes int) Badge {
	switch {
	case minutes <= 15:
		return Badge{Label: "Quick", Color: "green", Icon: "⚡"}
	case minutes <= 30:
		return Badge{Label: "Fast", Color: "blue", Icon: "🏃"}
	case minutes <= 60:
		return Badge{Label: "Moderate", Color: "yellow", Icon: "⏰"}
	default:
		return Badge{Label: "Slow", Color: "red", Icon: "🐌"}
	}
}

// ClassifyDifficulty buckets a recipe by how many ingredients it needs.
func ClassifyDifficulty(ingredientCount int) Badge {
	switch {
	case ingredientCount <= 5:
		return Badge{Label: "Easy", Color: "green", Icon: "😊"}
	case ingredientCount <= 10:
		return Badge{Label: "Medium", Color: "yellow", Icon: "🤔"}
	default:
		return Badge{Label: "Hard", Color: "red", Icon: "😅"}
	}
}
