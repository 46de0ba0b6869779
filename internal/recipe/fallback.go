package recipe

// Built-in recipes served when the search API is unavailable, rotated by day
// so consecutive days do not repeat.
var fallbackRecipes = map[string][]Recipe{
	"breakfast": {
		{
			MealType: "breakfast",
			Label:    "Healthy Oatmeal Bowl",
			Calories: 320,
			Servings: 1,
			CookTime: 10,
			Ingredients: []string{
				"1 cup rolled oats",
				"1.5 cups milk or plant-based milk",
				"1 banana, sliced",
				"2 tablespoons honey or maple syrup",
				"1/4 cup mixed berries",
				"2 tablespoons chopped nuts",
			},
			Nutrients: Nutrients{Protein: intPtr(12), Carbs: intPtr(54), Fat: intPtr(8), Fiber: intPtr(8)},
		},
		{
			MealType: "breakfast",
			Label:    "Avocado Toast with Eggs",
			Calories: 380,
			Servings: 1,
			CookTime: 15,
			Ingredients: []string{
				"2 slices whole grain bread",
				"1 ripe avocado",
				"2 eggs",
				"1 tablespoon olive oil",
				"Salt and pepper to taste",
				"Red pepper flakes (optional)",
			},
			Nutrients: Nutrients{Protein: intPtr(18), Carbs: intPtr(32), Fat: intPtr(22), Fiber: intPtr(12)},
		},
	},
	"lunch": {
		{
			MealType: "lunch",
			Label:    "Mediterranean Power Bowl",
			Calories: 380,
			Servings: 1,
			CookTime: 15,
			Ingredients: []string{
				"2 cups mixed greens",
				"1/2 cup quinoa, cooked",
				"1/2 cucumber, diced",
				"1 medium tomato, diced",
				"1/4 cup feta cheese",
				"2 tablespoons olive oil",
				"1 tablespoon lemon juice",
				"2 tablespoons hummus",
			},
			Nutrients: Nutrients{Protein: intPtr(15), Carbs: intPtr(32), Fat: intPtr(18), Fiber: intPtr(8)},
		},
		{
			MealType: "lunch",
			Label:    "Chicken Avocado Wrap",
			Calories: 420,
			Servings: 1,
			CookTime: 10,
			Ingredients: []string{
				"1 whole wheat tortilla",
				"4 oz grilled chicken breast",
				"1/2 avocado",
				"1 cup shredded lettuce",
				"1 medium tomato, sliced",
				"2 tablespoons greek yogurt",
			},
			Nutrients: Nutrients{Protein: intPtr(32), Carbs: intPtr(28), Fat: intPtr(16), Fiber: intPtr(9)},
		},
	},
	"dinner": {
		{
			MealType: "dinner",
			Label:    "Baked Salmon with Vegetables",
			Calories: 450,
			Servings: 1,
			CookTime: 25,
			Ingredients: []string{
				"6 oz salmon fillet",
				"1 cup broccoli florets",
				"1 medium sweet potato",
				"1 tablespoon olive oil",
				"1 clove garlic, minced",
				"Salt and pepper to taste",
				"1 lemon, sliced",
			},
			Nutrients: Nutrients{Protein: intPtr(38), Carbs: intPtr(30), Fat: intPtr(20), Fiber: intPtr(7)},
		},
		{
			MealType: "dinner",
			Label:    "Vegetable Stir Fry with Tofu",
			Calories: 390,
			Servings: 1,
			CookTime: 20,
			Ingredients: []string{
				"6 oz firm tofu, cubed",
				"1 cup brown rice, cooked",
				"1 bell pepper, sliced",
				"1 cup snap peas",
				"1 carrot, sliced",
				"2 tablespoons soy sauce",
				"1 tablespoon sesame oil",
				"1 teaspoon ginger, minced",
			},
			Nutrients: Nutrients{Protein: intPtr(20), Carbs: intPtr(48), Fat: intPtr(14), Fiber: intPtr(8)},
		},
	},
	"snack": {
		{
			MealType: "snack",
			Label:    "Greek Yogurt Parfait",
			Calories: 220,
			Servings: 1,
			CookTime: 5,
			Ingredients: []string{
				"1 cup greek yogurt",
				"1/4 cup granola",
				"1/2 cup mixed berries",
				"1 teaspoon honey",
			},
			Nutrients: Nutrients{Protein: intPtr(18), Carbs: intPtr(30), Fat: intPtr(5), Fiber: intPtr(4)},
		},
		{
			MealType: "snack",
			Label:    "Apple with Almond Butter",
			Calories: 190,
			Servings: 1,
			CookTime: 2,
			Ingredients: []string{
				"1 apple, sliced",
				"2 tablespoons almond butter",
				"1 pinch cinnamon",
			},
			Nutrients: Nutrients{Protein: intPtr(5), Carbs: intPtr(25), Fat: intPtr(10), Fiber: intPtr(6)},
		},
	},
}

// Fallback returns the built-in recipe for a meal slot on a given day. The
// returned value is a copy; callers may assign IDs without affecting the
// table.
func Fallback(mealType string, day int) Recipe {
	options, ok := fallbackRecipes[mealType]
	if !ok {
		options = fallbackRecipes["lunch"]
	}
	idx := (day - 1) % len(options)
	if idx < 0 {
		idx = 0
	}
	r := options[idx]
	r.Ingredients = append([]string(nil), r.Ingredients...)
	return r
}

func intPtr(v int) *int { return &v }
