package telegram

import (
	"strings"
	"testing"
	"time"

	"nutriplan/internal/grocery"
	"nutriplan/internal/mealplan"
	"nutriplan/internal/recipe"
)

func TestFormatPlanMarkdown(t *testing.T) {
	plan := &mealplan.Plan{
		TotalDays:   7,
		MealsPerDay: 2,
		Days: []mealplan.Day{
			{
				Day:  1,
				Date: "Mon Jun 02 2025",
				Meals: map[string]*recipe.Recipe{
					"breakfast": {Label: "Overnight Oats", Calories: 420},
					"dinner":    {Label: "Grilled Salmon"},
				},
			},
		},
	}

	output := formatPlanMarkdown(plan)

	if !strings.Contains(output, "📅 *Weekly Meal Plan*") {
		t.Error("Missing plan header")
	}
	if !strings.Contains(output, "*Mon Jun 02 2025*") {
		t.Error("Missing day date")
	}
	if !strings.Contains(output, "• Breakfast: Overnight Oats (420 kcal)") {
		t.Error("Missing breakfast line with calories")
	}
	if !strings.Contains(output, "• Dinner: Grilled Salmon\n") {
		t.Error("Missing dinner line without calories")
	}

	// Breakfast renders before dinner regardless of map iteration order.
	if strings.Index(output, "Breakfast") > strings.Index(output, "Dinner") {
		t.Error("Expected breakfast before dinner")
	}
}

func TestFormatPlanMarkdownDaily(t *testing.T) {
	plan := &mealplan.Plan{TotalDays: 1, MealsPerDay: 1}
	if !strings.Contains(formatPlanMarkdown(plan), "📅 *Daily Meal Plan*") {
		t.Error("Missing daily plan header")
	}
}

func testGroceryList() *grocery.List {
	return &grocery.List{
		Categories: map[string][]grocery.Item{
			grocery.CategoryProteins: {
				{Name: "chicken breast", Checked: false},
				{Name: "tofu", Checked: true},
			},
			grocery.CategoryFruits: {
				{Name: "banana", Checked: false},
			},
		},
		TotalItems:  3,
		GeneratedAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestFormatGroceryMarkdown(t *testing.T) {
	output := formatGroceryMarkdown(testGroceryList())

	if !strings.Contains(output, "🛒 *Grocery List*") {
		t.Error("Missing grocery header")
	}
	if !strings.Contains(output, "_1 of 3 picked up_") {
		t.Error("Missing progress line")
	}
	if !strings.Contains(output, "⬜ chicken breast") {
		t.Error("Missing unchecked item")
	}
	if !strings.Contains(output, "✅ tofu") {
		t.Error("Missing checked item")
	}

	// Categories render in the fixed order.
	if strings.Index(output, "*Proteins*") > strings.Index(output, "*Fruits*") {
		t.Error("Expected Proteins before Fruits")
	}
}

func TestGroceryKeyboard(t *testing.T) {
	keyboard := groceryKeyboard(testGroceryList())

	var buttons int
	for _, row := range keyboard.InlineKeyboard {
		buttons += len(row)
	}
	if buttons != 3 {
		t.Fatalf("Expected 3 buttons, got %d", buttons)
	}

	first := keyboard.InlineKeyboard[0][0]
	if first.CallbackData == nil || *first.CallbackData != "tgl|0|0" {
		t.Errorf("Expected callback data tgl|0|0, got %v", first.CallbackData)
	}
	if len(*first.CallbackData) > 64 {
		t.Errorf("Callback data exceeds telegram limit: %d bytes", len(*first.CallbackData))
	}

	second := keyboard.InlineKeyboard[0][1]
	if !strings.HasPrefix(second.Text, "✅ ") {
		t.Errorf("Expected checked marker on button label, got %q", second.Text)
	}
}

func TestParsePlanArgs(t *testing.T) {
	tests := []struct {
		name string
		args string
		want mealplan.Preferences
	}{
		{
			name: "DietOnly",
			args: "vegan",
			want: mealplan.Preferences{DietType: "vegan", PlanType: "weekly", MealsPerDay: 3},
		},
		{
			name: "FullArgs",
			args: "keto daily 4 2200",
			want: mealplan.Preferences{DietType: "keto", PlanType: "daily", MealsPerDay: 4, Calories: 2200},
		},
		{
			name: "OrderIndependent",
			args: "vegetarian 1800 2 weekly",
			want: mealplan.Preferences{DietType: "vegetarian", PlanType: "weekly", MealsPerDay: 2, Calories: 1800},
		},
		{
			name: "UppercaseNormalized",
			args: "Balanced WEEKLY",
			want: mealplan.Preferences{DietType: "balanced", PlanType: "weekly", MealsPerDay: 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parsePlanArgs(tc.args)
			if got != tc.want {
				t.Errorf("Expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
