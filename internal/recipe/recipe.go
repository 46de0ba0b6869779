package recipe

import "context"

// Nutrients holds per-recipe macro totals in grams. Pointers distinguish
// "not reported by the source" from zero.
type Nutrients struct {
	Protein *int `json:"protein"`
	Carbs   *int `json:"carbs"`
	Fat     *int `json:"fat"`
	Fiber   *int `json:"fiber"`
}

// Recipe is a recipe as stored inside a meal plan document.
type Recipe struct {
	ID           string    `json:"id"`
	URI          string    `json:"uri,omitempty"`
	MealType     string    `json:"mealType"`
	Label        string    `json:"label"`
	Image        string    `json:"image,omitempty"`
	URL          string    `json:"url"`
	Calories     int       `json:"calories"`
	Servings     float64   `json:"servings"`
	Ingredients  []string  `json:"ingredients"`
	CookTime     int       `json:"cookTime"`
	Nutrients    Nutrients `json:"nutrients"`
	DietLabels   []string  `json:"dietLabels,omitempty"`
	HealthLabels []string  `json:"healthLabels,omitempty"`
}

// SearchRequest describes a single recipe search against the nutrition API.
type SearchRequest struct {
	Query    string
	Diet     string
	Health   string
	Calories string // "min-max" per-meal range, empty for none
	Cuisine  string
	From     int
	To       int
}

// Source is any provider of recipe search results.
type Source interface {
	Search(ctx context.Context, req SearchRequest) ([]Recipe, error)
}
