package grocery

import "time"

// Item is a single entry on a grocery list. Name is the cleaned ingredient,
// Original preserves the raw line it was derived from.
type Item struct {
	Name     string `json:"name"`
	Original string `json:"original"`
	Checked  bool   `json:"checked"`
}

// List is the grocery list document persisted per meal plan.
// TotalItems is a snapshot taken at derivation time; it is not maintained
// under mutation. Use Stats for live counts.
type List struct {
	Categories  map[string][]Item `json:"categories"`
	TotalItems  int               `json:"totalItems"`
	GeneratedAt time.Time         `json:"generatedAt"`
}

// ListStats holds counts recomputed from the current list state.
type ListStats struct {
	TotalItems      int `json:"total_items"`
	CheckedItems    int `json:"checked_items"`
	CategoriesCount int `json:"categories_count"`
}

// CategoryOrder is the fixed declaration order of the grocery categories.
// Categorize tests keyword lists in this order, so it doubles as the
// tie-break when an ingredient matches more than one category.
var CategoryOrder = []string{
	CategoryProteins,
	CategoryVegetables,
	CategoryFruits,
	CategoryGrains,
	CategoryDairy,
	CategoryPantry,
	CategoryHerbs,
	CategoryNuts,
	CategoryOther,
}

const (
	CategoryProteins   = "Proteins"
	CategoryVegetables = "Vegetables"
	CategoryFruits     = "Fruits"
	CategoryGrains     = "Grains & Carbs"
	CategoryDairy      = "Dairy"
	CategoryPantry     = "Pantry Staples"
	CategoryHerbs      = "Herbs & Spices"
	CategoryNuts       = "Nuts & Seeds"
	CategoryOther      = "Other"
)
