package grocery

import (
	"reflect"
	"testing"
	"time"

	"nutriplan/internal/mealplan"
	"nutriplan/internal/recipe"
)

func planWithMeals(days ...map[string][]string) *mealplan.Plan {
	plan := &mealplan.Plan{TotalDays: len(days)}
	for i, meals := range days {
		day := mealplan.Day{Day: i + 1, Meals: make(map[string]*recipe.Recipe)}
		for slot, ingredients := range meals {
			day.Meals[slot] = &recipe.Recipe{MealType: slot, Ingredients: ingredients}
		}
		plan.Days = append(plan.Days, day)
	}
	return plan
}

func TestDeriveFromPlan(t *testing.T) {
	engine := NewEngine()
	engine.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	plan := planWithMeals(map[string][]string{
		"breakfast": {"2 cups rolled oats", "1 banana, sliced", "1 banana, sliced"},
	})

	list := engine.DeriveFromPlan(plan)

	grains := list.Categories[CategoryGrains]
	if len(grains) != 1 || grains[0].Name != "rolled oats" {
		t.Fatalf("Expected Grains & Carbs to contain 'rolled oats', got %+v", grains)
	}
	if grains[0].Checked {
		t.Error("Expected new items to be unchecked")
	}

	fruits := list.Categories[CategoryFruits]
	if len(fruits) != 1 {
		t.Fatalf("Expected duplicate banana lines to dedupe to 1 item, got %d", len(fruits))
	}
	if fruits[0].Name != "banana" {
		t.Errorf("Expected cleaned name 'banana', got '%s'", fruits[0].Name)
	}
	if fruits[0].Original != "1 banana, sliced" {
		t.Errorf("Expected original of first occurrence to be kept, got '%s'", fruits[0].Original)
	}

	if list.TotalItems != 2 {
		t.Errorf("Expected totalItems = 2, got %d", list.TotalItems)
	}
	if !list.GeneratedAt.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected GeneratedAt from the engine clock, got %v", list.GeneratedAt)
	}
}

func TestDeriveFromPlanDeterminism(t *testing.T) {
	engine := NewEngine()
	plan := planWithMeals(
		map[string][]string{
			"breakfast": {"2 eggs", "1 cup greek yogurt", "1/4 cup mixed berries"},
			"lunch":     {"4 oz grilled chicken breast", "2 cups mixed greens", "1 tablespoon olive oil"},
			"dinner":    {"6 oz salmon fillet", "1 cup broccoli florets", "2 eggs"},
		},
		map[string][]string{
			"breakfast": {"2 slices whole grain bread", "1 ripe avocado"},
			"dinner":    {"1 cup brown rice, cooked", "2 tablespoons soy sauce"},
		},
	)

	first := engine.DeriveFromPlan(plan)
	second := engine.DeriveFromPlan(plan)

	if !reflect.DeepEqual(first.Categories, second.Categories) {
		t.Errorf("Expected identical categories across derivations:\nfirst:  %+v\nsecond: %+v",
			first.Categories, second.Categories)
	}
	if first.TotalItems != second.TotalItems {
		t.Errorf("Expected identical totals, got %d and %d", first.TotalItems, second.TotalItems)
	}
}

func TestDeriveFromPlanEmpty(t *testing.T) {
	engine := NewEngine()

	t.Run("NilPlan", func(t *testing.T) {
		list := engine.DeriveFromPlan(nil)
		if list == nil {
			t.Fatal("Expected a valid empty list, got nil")
		}
		if len(list.Categories) != 0 || list.TotalItems != 0 {
			t.Errorf("Expected empty list, got %+v", list)
		}
	})

	t.Run("PlanWithoutIngredients", func(t *testing.T) {
		plan := planWithMeals(map[string][]string{"breakfast": {}})
		list := engine.DeriveFromPlan(plan)
		if len(list.Categories) != 0 || list.TotalItems != 0 {
			t.Errorf("Expected empty list, got %+v", list)
		}
	})
}

func TestDeriveFromPlanNoiseFiltering(t *testing.T) {
	engine := NewEngine()
	// "1 oz" cleans to the empty string, "2" to nothing at all; both are noise.
	plan := planWithMeals(map[string][]string{
		"lunch": {"1 oz", "2", "1 cup rice"},
	})

	list := engine.DeriveFromPlan(plan)
	if list.TotalItems != 1 {
		t.Fatalf("Expected only 'rice' to survive noise filtering, got %d items", list.TotalItems)
	}
	if list.Categories[CategoryGrains][0].Name != "rice" {
		t.Errorf("Expected 'rice', got '%s'", list.Categories[CategoryGrains][0].Name)
	}
}

func TestDeriveFromPlanCategoryExhaustiveness(t *testing.T) {
	engine := NewEngine()
	plan := planWithMeals(map[string][]string{
		"breakfast": {"2 eggs", "1 cup milk", "1 banana", "durian custard", "star anise pods"},
		"dinner":    {"6 oz salmon fillet", "1 cup rice", "1 tablespoon olive oil", "2 cups spinach"},
	})

	valid := make(map[string]bool, len(CategoryOrder))
	for _, c := range CategoryOrder {
		valid[c] = true
	}

	list := engine.DeriveFromPlan(plan)
	for category := range list.Categories {
		if !valid[category] {
			t.Errorf("Item categorized outside the fixed set: %q", category)
		}
	}
	if len(list.Categories[CategoryOther]) == 0 {
		t.Error("Expected unmatched ingredients to land in Other")
	}
}

func TestToggleItem(t *testing.T) {
	list := &List{Categories: map[string][]Item{
		CategoryProteins: {{Name: "chicken"}, {Name: "tofu"}},
	}}

	t.Run("Flip", func(t *testing.T) {
		if err := ToggleItem(list, CategoryProteins, 0); err != nil {
			t.Fatalf("ToggleItem failed: %v", err)
		}
		if !list.Categories[CategoryProteins][0].Checked {
			t.Error("Expected item to be checked after toggle")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		before := list.Categories[CategoryProteins][1].Checked
		_ = ToggleItem(list, CategoryProteins, 1)
		_ = ToggleItem(list, CategoryProteins, 1)
		if list.Categories[CategoryProteins][1].Checked != before {
			t.Error("Expected double toggle to restore the original state")
		}
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		if err := ToggleItem(list, CategoryProteins, 5); err != ErrIndexOutOfRange {
			t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
		}
	})

	t.Run("AbsentCategory", func(t *testing.T) {
		if err := ToggleItem(list, CategoryDairy, 0); err != ErrIndexOutOfRange {
			t.Errorf("Expected ErrIndexOutOfRange for absent category, got %v", err)
		}
	})
}

func TestToggleAll(t *testing.T) {
	list := &List{Categories: map[string][]Item{
		CategoryFruits: {{Name: "apple"}, {Name: "banana"}, {Name: "mango"}},
	}}

	before := Stats(list).CheckedItems
	ToggleAll(list, CategoryFruits, true)
	after := Stats(list)

	if after.CheckedItems != before+3 {
		t.Errorf("Expected checked count to increase by 3, got %d -> %d", before, after.CheckedItems)
	}
	for i, item := range list.Categories[CategoryFruits] {
		if !item.Checked {
			t.Errorf("Expected item %d to be checked", i)
		}
	}

	// Absent category is a no-op, not an error.
	ToggleAll(list, CategoryDairy, true)
}

func TestRemoveItem(t *testing.T) {
	t.Run("RemovesEmptiedCategory", func(t *testing.T) {
		list := &List{Categories: map[string][]Item{
			CategoryDairy: {{Name: "milk"}},
		}}

		if err := RemoveItem(list, CategoryDairy, 0); err != nil {
			t.Fatalf("RemoveItem failed: %v", err)
		}
		if _, ok := list.Categories[CategoryDairy]; ok {
			t.Error("Expected emptied Dairy category to be deleted")
		}
	})

	t.Run("KeepsNonEmptyCategory", func(t *testing.T) {
		list := &List{Categories: map[string][]Item{
			CategoryFruits: {{Name: "apple"}, {Name: "banana"}},
		}}

		if err := RemoveItem(list, CategoryFruits, 0); err != nil {
			t.Fatalf("RemoveItem failed: %v", err)
		}
		fruits := list.Categories[CategoryFruits]
		if len(fruits) != 1 || fruits[0].Name != "banana" {
			t.Errorf("Expected only 'banana' to remain, got %+v", fruits)
		}
	})

	t.Run("NoEmptyCategoriesAfterRemovals", func(t *testing.T) {
		list := &List{Categories: map[string][]Item{
			CategoryFruits:   {{Name: "apple"}, {Name: "banana"}},
			CategoryProteins: {{Name: "tofu"}},
		}}

		_ = RemoveItem(list, CategoryFruits, 1)
		_ = RemoveItem(list, CategoryFruits, 0)
		_ = RemoveItem(list, CategoryProteins, 0)

		for category, items := range list.Categories {
			if len(items) == 0 {
				t.Errorf("Category %q maps to an empty slice", category)
			}
		}
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		list := &List{Categories: map[string][]Item{
			CategoryFruits: {{Name: "apple"}},
		}}
		if err := RemoveItem(list, CategoryFruits, 3); err != ErrIndexOutOfRange {
			t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestStatsRecomputesLiveState(t *testing.T) {
	engine := NewEngine()
	plan := planWithMeals(map[string][]string{
		"dinner": {"6 oz salmon fillet", "1 cup broccoli florets", "1 cup rice"},
	})

	list := engine.DeriveFromPlan(plan)
	if err := RemoveItem(list, CategoryGrains, 0); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	_ = ToggleItem(list, CategoryProteins, 0)

	stats := Stats(list)
	if stats.TotalItems != 2 {
		t.Errorf("Expected live total of 2, got %d", stats.TotalItems)
	}
	if stats.CheckedItems != 1 {
		t.Errorf("Expected 1 checked item, got %d", stats.CheckedItems)
	}
	if stats.CategoriesCount != 2 {
		t.Errorf("Expected 2 categories, got %d", stats.CategoriesCount)
	}
	// The stored snapshot is deliberately stale.
	if list.TotalItems != 3 {
		t.Errorf("Expected stored snapshot to remain 3, got %d", list.TotalItems)
	}
}
