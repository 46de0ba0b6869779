package grocery

import "strings"

// categoryKeywords pairs a category with its keyword list. Order matters:
// Categorize returns the first category whose keyword list produces a
// substring match, so the slice must stay in CategoryOrder.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryProteins, []string{
		"chicken", "beef", "pork", "fish", "salmon", "tuna", "turkey", "eggs",
		"tofu", "tempeh", "beans", "lentils", "chickpeas", "quinoa", "shrimp",
		"cod", "lamb", "bacon", "ham", "sausage",
	}},
	{CategoryVegetables, []string{
		"tomato", "onion", "carrot", "broccoli", "spinach", "lettuce", "cucumber",
		"bell pepper", "garlic", "celery", "mushroom", "zucchini",
		"cauliflower", "kale", "cabbage", "potato", "sweet potato", "asparagus",
		"green beans", "corn", "peas", "eggplant", "radish", "beets",
	}},
	{CategoryFruits, []string{
		"apple", "banana", "orange", "berries", "strawberry", "blueberry",
		"lemon", "lime", "grapes", "mango", "pineapple", "avocado", "peach",
		"pear", "kiwi", "watermelon", "cantaloupe", "cherries", "plums",
	}},
	{CategoryGrains, []string{
		"rice", "pasta", "bread", "oats", "flour", "cereal", "quinoa",
		"barley", "bulgur", "couscous", "noodles", "crackers", "tortilla",
		"bagel", "muffin", "granola",
	}},
	{CategoryDairy, []string{
		"milk", "cheese", "yogurt", "butter", "cream", "feta", "mozzarella",
		"parmesan", "cottage cheese", "sour cream", "greek yogurt", "cheddar",
	}},
	{CategoryPantry, []string{
		"oil", "olive oil", "vinegar", "salt", "pepper", "honey", "sugar",
		"maple syrup", "vanilla", "baking powder", "flour", "soy sauce",
		"hot sauce", "ketchup", "mustard", "mayo", "coconut oil",
	}},
	{CategoryHerbs, []string{
		"basil", "oregano", "thyme", "rosemary", "parsley", "cilantro",
		"cinnamon", "paprika", "cumin", "turmeric", "ginger", "bay leaves",
		"chili powder", "garlic powder", "onion powder", "black pepper",
	}},
	{CategoryNuts, []string{
		"almonds", "walnuts", "pecans", "cashews", "peanuts", "seeds",
		"chia seeds", "flax seeds", "sunflower seeds", "pumpkin seeds",
		"pine nuts", "pistachios", "hazelnuts",
	}},
}

// Categorize classifies an ingredient line into one of the fixed grocery
// categories by case-insensitive substring match. The first matching
// category in declaration order wins; "Other" is the fallback.
func Categorize(ingredient string) string {
	lower := strings.ToLower(ingredient)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return CategoryOther
}
