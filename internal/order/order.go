package order

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"nutriplan/internal/grocery"
)

// Item is a grocery item prepared for ordering, with quantity and price
// estimates extracted from the original ingredient line.
type Item struct {
	Name           string  `json:"name"`
	Original       string  `json:"original"`
	Quantity       string  `json:"quantity"`
	Unit           string  `json:"unit"`
	EstimatedPrice float64 `json:"estimated_price"`
	Priority       string  `json:"priority"`
}

// DeliveryPreferences describes how the prepared order should be fulfilled.
type DeliveryPreferences struct {
	Type     string `json:"type"` // pickup or delivery
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

// Order is a shopping order prepared from the unchecked items of a grocery
// list.
type Order struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	Items         map[string][]Item   `json:"items"`
	TotalItems    int                 `json:"total_items"`
	EstimatedCost float64             `json:"estimated_cost"`
	Notes         string              `json:"notes"`
	Delivery      DeliveryPreferences `json:"delivery_preferences"`
	CreatedAt     time.Time           `json:"created_at"`
}

// Average shelf price per category, used for cost estimates.
var categoryPrices = map[string]float64{
	grocery.CategoryProteins:   7,
	grocery.CategoryVegetables: 2.5,
	grocery.CategoryFruits:     3,
	grocery.CategoryGrains:     2,
	grocery.CategoryDairy:      4,
	grocery.CategoryPantry:     3,
	grocery.CategoryHerbs:      2,
	grocery.CategoryNuts:       5,
}

const defaultItemPrice = 3

var highPriorityItems = []string{"milk", "bread", "eggs", "chicken", "rice", "pasta"}

var quantityRe = regexp.MustCompile(`^(\d+(?:\.\d+)?(?:\s*\d+/\d+)?)`)

var knownUnits = []string{
	"cup", "cups", "tbsp", "tsp", "oz", "lb", "lbs",
	"piece", "pieces", "can", "jar", "package",
}

// Prepare builds an order from the unchecked items of a grocery list. Checked
// items are already in the pantry and excluded.
func Prepare(userID string, list *grocery.List, now time.Time) *Order {
	order := &Order{
		ID:     "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		UserID: userID,
		Items:  make(map[string][]Item),
		Delivery: DeliveryPreferences{
			Type:     "pickup",
			Date:     now.AddDate(0, 0, 1).Format("2006-01-02"),
			TimeSlot: "flexible",
		},
		CreatedAt: now.UTC(),
	}

	for _, category := range grocery.CategoryOrder {
		var items []Item
		for _, src := range list.Categories[category] {
			if src.Checked {
				continue
			}
			item := Item{
				Name:           src.Name,
				Original:       src.Original,
				Quantity:       ExtractQuantity(src.Original),
				Unit:           ExtractUnit(src.Original),
				EstimatedPrice: estimatePrice(category),
				Priority:       itemPriority(src.Name),
			}
			items = append(items, item)
			order.TotalItems++
			order.EstimatedCost += item.EstimatedPrice
		}
		if len(items) > 0 {
			order.Items[category] = items
		}
	}

	return order
}

// ExtractQuantity pulls the leading quantity expression out of an ingredient
// line, defaulting to "1" when there is none.
func ExtractQuantity(ingredient string) string {
	if m := quantityRe.FindStringSubmatch(ingredient); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "1"
}

// ExtractUnit finds the first known unit mentioned in an ingredient line,
// defaulting to "item".
func ExtractUnit(ingredient string) string {
	lower := strings.ToLower(ingredient)
	for _, unit := range knownUnits {
		if strings.Contains(lower, unit) {
			return unit
		}
	}
	return "item"
}

func estimatePrice(category string) float64 {
	if price, ok := categoryPrices[category]; ok {
		return price
	}
	return defaultItemPrice
}

func itemPriority(name string) string {
	lower := strings.ToLower(name)
	for _, staple := range highPriorityItems {
		if strings.Contains(lower, staple) {
			return "high"
		}
	}
	return "normal"
}
