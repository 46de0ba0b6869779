package recipe

// Rotating search queries per meal slot. The generator picks a different
// query per day so a weekly plan does not serve the same seven dinners.
var mealQueries = map[string][]string{
	"breakfast": {
		"breakfast omelette", "pancakes", "oatmeal bowl", "cereal", "avocado toast",
		"smoothie bowl", "breakfast burrito", "yogurt parfait", "french toast",
		"breakfast sandwich", "chia pudding", "granola", "breakfast quinoa", "muffins",
	},
	"lunch": {
		"healthy salad", "chicken sandwich", "soup bowl", "wrap", "grain bowl",
		"quinoa salad", "pasta salad", "buddha bowl", "poke bowl", "burrito bowl",
		"noodle soup", "rice bowl", "mediterranean bowl", "veggie wrap",
	},
	"dinner": {
		"grilled chicken", "pasta dinner", "rice bowl", "salmon dinner", "beef stir fry",
		"vegetable curry", "roasted vegetables", "fish tacos", "pork chops",
		"lamb dinner", "seafood pasta", "chicken curry", "beef steak", "tofu stir fry",
	},
	"snack": {
		"healthy snack", "fruit bowl", "nuts mix", "yogurt parfait",
		"smoothie", "energy bars", "trail mix", "protein smoothie",
		"cheese crackers", "hummus dip", "vegetable chips", "fruit smoothie",
	},
}

// QueryFor selects the search query for a meal slot on a given day, suffixed
// with diet-specific terms. offset shifts the rotation so two plans generated
// back to back do not pick identical queries.
func QueryFor(mealType, dietType, healthLabels string, day, offset int) string {
	queries, ok := mealQueries[mealType]
	if !ok {
		return "healthy meal"
	}

	idx := ((day-1)*2 + offset) % len(queries)
	if idx < 0 {
		idx = 0
	}
	query := queries[idx]

	switch {
	case dietType == "vegetarian" || healthLabels == "vegetarian":
		query += " vegetarian"
	case dietType == "vegan" || healthLabels == "vegan":
		query += " vegan"
	case dietType == "low-carb":
		query += " low carb"
	case dietType == "keto-friendly":
		query += " keto"
	}
	return query
}
