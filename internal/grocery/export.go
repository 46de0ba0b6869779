package grocery

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// Text renders the list as a printable shopping list: categories in the
// fixed order, unchecked items only, with a small summary header.
func Text(list *List) string {
	stats := Stats(list)
	remaining := stats.TotalItems - stats.CheckedItems

	var sb strings.Builder
	fmt.Fprintf(&sb, "Grocery Shopping List - %s\n", list.GeneratedAt.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Items to shop: %d of %d\n\n", remaining, stats.TotalItems)

	for _, category := range CategoryOrder {
		items := list.Categories[category]
		var unchecked []Item
		for _, item := range items {
			if !item.Checked {
				unchecked = append(unchecked, item)
			}
		}
		if len(unchecked) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "%s (%d items)\n", category, len(unchecked))
		for _, item := range unchecked {
			fmt.Fprintf(&sb, "  [ ] %s\n", item.Name)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// CSV renders every item as Category,Item,Status rows with a header line.
func CSV(list *List) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Category", "Item", "Status"}); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, category := range CategoryOrder {
		for _, item := range list.Categories[category] {
			status := "Unchecked"
			if item.Checked {
				status = "Checked"
			}
			if err := w.Write([]string{category, item.Name, status}); err != nil {
				return "", fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}
