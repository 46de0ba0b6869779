package grocery

import (
	"strings"
	"testing"
	"time"
)

func exportList() *List {
	return &List{
		Categories: map[string][]Item{
			CategoryProteins: {
				{Name: "chicken breast", Checked: false},
				{Name: "tofu", Checked: true},
			},
			CategoryFruits: {
				{Name: "banana", Checked: false},
			},
		},
		TotalItems:  3,
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestText(t *testing.T) {
	out := Text(exportList())

	if !strings.Contains(out, "2025-06-01") {
		t.Errorf("Expected the generation date in the header:\n%s", out)
	}
	if !strings.Contains(out, "Items to shop: 2 of 3") {
		t.Errorf("Expected the remaining count in the header:\n%s", out)
	}
	if !strings.Contains(out, "[ ] chicken breast") {
		t.Errorf("Expected unchecked items as checkboxes:\n%s", out)
	}
	if strings.Contains(out, "tofu") {
		t.Errorf("Expected checked items to be omitted:\n%s", out)
	}

	// Proteins come before Fruits in the category order.
	if strings.Index(out, "Proteins") > strings.Index(out, "Fruits") {
		t.Errorf("Expected categories in the fixed order:\n%s", out)
	}
}

func TestCSV(t *testing.T) {
	out, err := CSV(exportList())
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "Category,Item,Status" {
		t.Errorf("Expected a header row, got %q", lines[0])
	}
	// Header plus three items, checked ones included.
	if len(lines) != 4 {
		t.Errorf("Expected 4 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "Proteins,tofu,Checked") {
		t.Errorf("Expected checked status column:\n%s", out)
	}
}
