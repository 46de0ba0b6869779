package order

import (
	"strings"
	"testing"
	"time"

	"nutriplan/internal/grocery"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func testList() *grocery.List {
	return &grocery.List{
		Categories: map[string][]grocery.Item{
			grocery.CategoryProteins: {
				{Name: "chicken breast", Original: "4 oz grilled chicken breast"},
				{Name: "salmon", Original: "6 oz salmon fillet", Checked: true},
			},
			grocery.CategoryDairy: {
				{Name: "milk", Original: "1 cup milk"},
			},
		},
		TotalItems: 3,
	}
}

func TestPrepare(t *testing.T) {
	order := Prepare("user-1", testList(), testNow)

	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Errorf("Expected order ID with ORD- prefix, got %q", order.ID)
	}
	if order.TotalItems != 2 {
		t.Errorf("Expected 2 unchecked items in the order, got %d", order.TotalItems)
	}
	if len(order.Items[grocery.CategoryProteins]) != 1 {
		t.Fatalf("Expected checked salmon to be excluded, got %+v", order.Items[grocery.CategoryProteins])
	}

	item := order.Items[grocery.CategoryProteins][0]
	if item.Quantity != "4" {
		t.Errorf("Expected quantity '4', got %q", item.Quantity)
	}
	if item.Unit != "oz" {
		t.Errorf("Expected unit 'oz', got %q", item.Unit)
	}
	if item.Priority != "high" {
		t.Errorf("Expected chicken to be high priority, got %q", item.Priority)
	}

	// 7 for proteins + 4 for dairy.
	if order.EstimatedCost != 11 {
		t.Errorf("Expected estimated cost 11, got %.2f", order.EstimatedCost)
	}
	if order.Delivery.Date != "2025-06-02" {
		t.Errorf("Expected next-day delivery date, got %q", order.Delivery.Date)
	}
}

func TestPrepareEmptyList(t *testing.T) {
	order := Prepare("user-1", &grocery.List{Categories: map[string][]grocery.Item{}}, testNow)
	if order.TotalItems != 0 || len(order.Items) != 0 {
		t.Errorf("Expected an empty order, got %+v", order)
	}
}

func TestExtractQuantity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 cups rolled oats", "2"},
		{"1.5 lbs chicken", "1.5"},
		{"1 1/2 cups flour", "1 1/2"},
		{"salt to taste", "1"},
	}
	for _, tt := range tests {
		if got := ExtractQuantity(tt.input); got != tt.expected {
			t.Errorf("ExtractQuantity(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtractUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 cups rolled oats", "cup"},
		{"1 tbsp olive oil", "tbsp"},
		{"3 bananas", "item"},
	}
	for _, tt := range tests {
		if got := ExtractUnit(tt.input); got != tt.expected {
			t.Errorf("ExtractUnit(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormats(t *testing.T) {
	order := Prepare("user-1", testList(), testNow)

	t.Run("SimpleList", func(t *testing.T) {
		out := SimpleList(order)
		if !strings.Contains(out, "4 oz grilled chicken breast") {
			t.Errorf("Expected original line in simple list:\n%s", out)
		}
		if !strings.Contains(out, "Total Items: 2") {
			t.Errorf("Expected item count in simple list:\n%s", out)
		}
	})

	t.Run("Checklist", func(t *testing.T) {
		out := Checklist(order)
		if !strings.Contains(out, "[ ] 4 oz grilled chicken breast *") {
			t.Errorf("Expected high-priority marker in checklist:\n%s", out)
		}
	})

	t.Run("Email", func(t *testing.T) {
		out := Email(order)
		if !strings.Contains(out, "4 oz chicken breast ($7.00)") {
			t.Errorf("Expected quantity, unit and price in email format:\n%s", out)
		}
		if !strings.Contains(out, "Estimated Total: $11.00") {
			t.Errorf("Expected estimated total in email format:\n%s", out)
		}
	})
}
