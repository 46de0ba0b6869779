package grocery

import (
	"errors"
	"strings"
	"time"

	"nutriplan/internal/mealplan"
)

// ErrIndexOutOfRange is returned by ToggleItem and RemoveItem when the
// (category, index) pair does not identify an existing item.
var ErrIndexOutOfRange = errors.New("grocery: category or index out of range")

// Engine derives grocery lists from meal plans. It performs no I/O; loading
// and saving lists is the caller's responsibility.
type Engine struct {
	now func() time.Time
}

// NewEngine creates an Engine using the wall clock for GeneratedAt stamps.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// DeriveFromPlan walks every day and meal slot of the plan in order and
// builds a categorized, deduplicated grocery list from the ingredient lines.
// Duplicate names within a category keep the first occurrence. Cleaned names
// of two characters or fewer are treated as noise and skipped. A plan with no
// ingredients yields a valid list with no categories.
//
// Apart from GeneratedAt the result is a pure function of the plan content:
// deriving twice from the same plan produces identical categories.
func (e *Engine) DeriveFromPlan(plan *mealplan.Plan) *List {
	list := &List{Categories: make(map[string][]Item)}

	if plan != nil {
		for _, day := range plan.Days {
			for _, slot := range day.MealNames() {
				meal := day.Meals[slot]
				if meal == nil {
					continue
				}
				for _, raw := range meal.Ingredients {
					addIngredient(list, raw)
				}
			}
		}
	}

	list.GeneratedAt = e.now().UTC()
	return list
}

func addIngredient(list *List, raw string) {
	name := Clean(raw)
	if len(name) <= 2 {
		return
	}

	category := Categorize(raw)
	for _, existing := range list.Categories[category] {
		if strings.EqualFold(existing.Name, name) {
			return
		}
	}

	list.Categories[category] = append(list.Categories[category], Item{
		Name:     name,
		Original: raw,
		Checked:  false,
	})
	list.TotalItems++
}

// ToggleItem flips the checked state of a single item.
func ToggleItem(list *List, category string, index int) error {
	items, ok := list.Categories[category]
	if !ok || index < 0 || index >= len(items) {
		return ErrIndexOutOfRange
	}
	items[index].Checked = !items[index].Checked
	return nil
}

// ToggleAll sets the checked state of every item in a category. An absent
// category is a no-op, not an error.
func ToggleAll(list *List, category string, checked bool) {
	items := list.Categories[category]
	for i := range items {
		items[i].Checked = checked
	}
}

// RemoveItem deletes a single item. A category emptied by the removal is
// deleted from the list entirely; no category key ever maps to an empty
// slice.
func RemoveItem(list *List, category string, index int) error {
	items, ok := list.Categories[category]
	if !ok || index < 0 || index >= len(items) {
		return ErrIndexOutOfRange
	}

	list.Categories[category] = append(items[:index], items[index+1:]...)
	if len(list.Categories[category]) == 0 {
		delete(list.Categories, category)
	}
	return nil
}

// Stats recomputes item counts from the current list state. The stored
// TotalItems field is a derivation-time snapshot and goes stale under
// mutation, so callers wanting live numbers go through here.
func Stats(list *List) ListStats {
	var stats ListStats
	for _, items := range list.Categories {
		stats.CategoriesCount++
		stats.TotalItems += len(items)
		for _, item := range items {
			if item.Checked {
				stats.CheckedItems++
			}
		}
	}
	return stats
}
