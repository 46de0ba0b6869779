package mealplan

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"nutriplan/internal/recipe"
)

// Generator builds meal plans from recipe search results. A failed or empty
// search never fails the plan; the slot falls back to a built-in recipe so
// users always get a complete plan.
type Generator struct {
	source      recipe.Source
	now         func() time.Time
	queryOffset func() int
}

// NewGenerator creates a plan generator backed by the given recipe source.
func NewGenerator(source recipe.Source) *Generator {
	return &Generator{
		source: source,
		now:    time.Now,
		queryOffset: func() int {
			// Shifts the query rotation so back-to-back plans differ.
			return rand.IntN(2)
		},
	}
}

// Generate builds a plan for the given preferences: one day for a daily plan,
// seven for a weekly one, each day filled slot by slot.
func (g *Generator) Generate(ctx context.Context, prefs Preferences) (*Plan, error) {
	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preferences: %w", err)
	}

	daysCount := 1
	if prefs.PlanType == "weekly" {
		daysCount = 7
	}
	slots := MealSlots(prefs.MealsPerDay)
	start := g.now()

	plan := &Plan{
		TotalDays:   daysCount,
		MealsPerDay: prefs.MealsPerDay,
		CreatedAt:   start.UTC(),
	}

	usedURIs := make(map[string]bool)
	for day := 1; day <= daysCount; day++ {
		d := Day{
			Day:   day,
			Date:  start.AddDate(0, 0, day-1).Format("Mon Jan 02 2006"),
			Meals: make(map[string]*recipe.Recipe, len(slots)),
		}
		for _, slot := range slots {
			d.Meals[slot] = g.recipeFor(ctx, slot, prefs, day, usedURIs)
		}
		plan.Days = append(plan.Days, d)
	}

	return plan, nil
}

func (g *Generator) recipeFor(ctx context.Context, slot string, prefs Preferences, day int, usedURIs map[string]bool) *recipe.Recipe {
	req := recipe.SearchRequest{
		Query:   recipe.QueryFor(slot, prefs.DietType, prefs.HealthLabels, day, g.queryOffset()),
		Health:  prefs.HealthLabels,
		Cuisine: prefs.Cuisine,
		// Paging windows differ per day so a weekly plan sees fresh results.
		From: (day - 1) * 3,
		To:   day*15 + 5,
	}
	if prefs.DietType != "" && prefs.DietType != "balanced" {
		req.Diet = prefs.DietType
	}
	if prefs.Calories > 0 {
		perMeal := prefs.Calories / prefs.MealsPerDay
		minCal := perMeal - 200
		if minCal < 50 {
			minCal = 50
		}
		req.Calories = fmt.Sprintf("%d-%d", minCal, perMeal+200)
	}

	hits, err := g.source.Search(ctx, req)
	if err != nil || len(hits) == 0 {
		if err != nil {
			log.Printf("Recipe search failed for %s on day %d, using fallback: %v", slot, day, err)
		}
		fallback := recipe.Fallback(slot, day)
		return &fallback
	}

	var available []recipe.Recipe
	for _, hit := range hits {
		if hit.URI == "" || !usedURIs[hit.URI] {
			available = append(available, hit)
		}
	}
	// All results already used: allow repeats rather than falling back.
	if len(available) == 0 {
		available = hits
	}

	idx := (day - 1) % 5
	if idx > len(available)-1 {
		idx = len(available) - 1
	}
	selected := available[idx]
	if selected.URI != "" {
		usedURIs[selected.URI] = true
	}
	selected.MealType = slot
	return &selected
}
