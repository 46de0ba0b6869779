package order

import (
	"fmt"
	"strings"

	"nutriplan/internal/grocery"
)

// SimpleList renders the order as a flat shopping list grouped by category.
func SimpleList(o *Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shopping List - %s\n\n", o.CreatedAt.Format("2006-01-02"))

	for _, category := range grocery.CategoryOrder {
		items := o.Items[category]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s:\n", category)
		for _, item := range items {
			fmt.Fprintf(&sb, "  - %s\n", displayName(item))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Total Items: %d\n", o.TotalItems)
	fmt.Fprintf(&sb, "Estimated Cost: $%.2f\n", o.EstimatedCost)
	return sb.String()
}

// Checklist renders the order as a checkbox list with per-category counts and
// high-priority markers.
func Checklist(o *Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shopping Checklist (%s)\n", o.ID)
	fmt.Fprintf(&sb, "Items: %d | Est. Cost: $%.2f\n\n", o.TotalItems, o.EstimatedCost)

	for _, category := range grocery.CategoryOrder {
		items := o.Items[category]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s (%d items):\n", category, len(items))
		for _, item := range items {
			marker := ""
			if item.Priority == "high" {
				marker = " *"
			}
			fmt.Fprintf(&sb, "  [ ] %s%s\n", displayName(item), marker)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Email renders the order as a plain-text email body with quantities and
// per-item price estimates.
func Email(o *Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Subject: Grocery Order %s\n\n", o.ID)
	fmt.Fprintf(&sb, "Hello,\n\nPlease prepare the following order for %s (%s):\n\n",
		o.Delivery.Type, o.Delivery.Date)

	for _, category := range grocery.CategoryOrder {
		items := o.Items[category]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s:\n", category)
		for _, item := range items {
			fmt.Fprintf(&sb, "  - %s %s %s ($%.2f)\n", item.Quantity, item.Unit, item.Name, item.EstimatedPrice)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Estimated Total: $%.2f\n\nThank you.\n", o.EstimatedCost)
	return sb.String()
}

func displayName(item Item) string {
	if item.Original != "" {
		return item.Original
	}
	return item.Name
}
