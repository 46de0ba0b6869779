package mealplan

import (
	"fmt"
	"sort"
	"time"

	"nutriplan/internal/recipe"
)

// Meal slot names in the order they occur within a day.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnack     = "snack"
)

// SlotOrder is the canonical iteration order for meal slots within a day.
var SlotOrder = []string{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// Day holds the recipes planned for a single day, keyed by meal slot. A slot
// with no recipe is simply absent (or nil).
type Day struct {
	Day   int                       `json:"day"`
	Date  string                    `json:"date"`
	Meals map[string]*recipe.Recipe `json:"meals"`
}

// MealNames returns the day's slot names in canonical order: the standard
// slots first, then any non-standard keys sorted alphabetically. Iterating
// a map directly would make downstream derivations non-deterministic.
func (d Day) MealNames() []string {
	names := make([]string, 0, len(d.Meals))
	seen := make(map[string]bool, len(d.Meals))
	for _, slot := range SlotOrder {
		if _, ok := d.Meals[slot]; ok {
			names = append(names, slot)
			seen[slot] = true
		}
	}

	var extra []string
	for slot := range d.Meals {
		if !seen[slot] {
			extra = append(extra, slot)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Plan is a generated meal plan document.
type Plan struct {
	Days        []Day     `json:"days"`
	TotalDays   int       `json:"totalDays"`
	MealsPerDay int       `json:"mealsPerDay"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Preferences captures the dietary preferences a plan is generated from.
type Preferences struct {
	DietType     string `json:"diet_type"`
	HealthLabels string `json:"health_labels"`
	MealsPerDay  int    `json:"meals_per_day"`
	PlanType     string `json:"plan_type"`
	Calories     int    `json:"calories"`
	Cuisine      string `json:"cuisine"`
}

// Validate checks preference fields before a plan is generated from them.
func (p Preferences) Validate() error {
	if p.DietType == "" {
		return fmt.Errorf("diet preference is required")
	}
	if p.MealsPerDay < 1 || p.MealsPerDay > 4 {
		return fmt.Errorf("meals per day must be between 1 and 4, got %d", p.MealsPerDay)
	}
	if p.PlanType != "daily" && p.PlanType != "weekly" {
		return fmt.Errorf("plan type must be daily or weekly, got %q", p.PlanType)
	}
	if p.Calories != 0 && (p.Calories < 1000 || p.Calories > 5000) {
		return fmt.Errorf("calorie target must be between 1000 and 5000, got %d", p.Calories)
	}
	return nil
}

// MealSlots returns the meal slots to fill for the given meals-per-day
// setting.
func MealSlots(mealsPerDay int) []string {
	switch {
	case mealsPerDay <= 1:
		return []string{SlotDinner}
	case mealsPerDay == 2:
		return []string{SlotBreakfast, SlotDinner}
	case mealsPerDay == 3:
		return []string{SlotBreakfast, SlotLunch, SlotDinner}
	default:
		return []string{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}
	}
}
